// Package controllers holds the HTTP handlers. Dependencies arrive
// through constructors as small interfaces, so tests swap in fakes and
// the route table stays the only place that knows the concrete wiring.
package controllers

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/turboost/store/app/models"
	"github.com/turboost/store/app/repositories"
	"github.com/turboost/store/pkg/bind"
	"github.com/turboost/store/pkg/logger"
	"github.com/turboost/store/pkg/response"
	"github.com/turboost/store/pkg/session"
)

// AdminStore is the persistence surface the auth routes need.
type AdminStore interface {
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, admin models.Admin) error
	FindByUsername(ctx context.Context, username string) (models.Admin, error)
}

type AuthController struct {
	admins AdminStore
}

func NewAuthController(admins AdminStore) *AuthController {
	return &AuthController{admins: admins}
}

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CheckAdmin reports whether the one-time registration has happened.
func (c *AuthController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	exists, err := c.admins.Exists(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("check admin", "error", err)
		response.Internal(w, "Erro ao verificar admin.")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"adminExists": exists})
}

// Register creates the first and only admin account.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body credentials
	errs, err := bind.JSON(r, &body)
	if err != nil || errs != nil {
		response.BadRequest(w, "Utilizador e senha são obrigatórios.")
		return
	}

	exists, err := c.admins.Exists(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("register admin", "error", err)
		response.Internal(w, "Erro ao registar administrador.")
		return
	}
	if exists {
		response.Conflict(w, "Um administrador já existe.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithCtx(r.Context()).Error("hash password", "error", err)
		response.Internal(w, "Erro ao registar administrador.")
		return
	}

	err = c.admins.Create(r.Context(), models.Admin{
		Username:     body.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAdminExists) {
			response.Conflict(w, "Um administrador já existe.")
			return
		}
		logger.WithCtx(r.Context()).Error("register admin", "error", err)
		response.Internal(w, "Erro ao registar administrador.")
		return
	}

	response.Message(w, http.StatusCreated, "Administrador registado com sucesso.")
}

// Login verifies the password hash and marks the session authenticated.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller; neither touches the session flag.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body credentials
	errs, err := bind.JSON(r, &body)
	if err != nil || errs != nil {
		response.BadRequest(w, "Utilizador e senha são obrigatórios.")
		return
	}

	admin, err := c.admins.FindByUsername(r.Context(), body.Username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.WithCtx(r.Context()).Error("login lookup", "error", err)
		}
		response.Message(w, http.StatusUnauthorized, "Utilizador ou senha inválidos.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(body.Password)) != nil {
		response.Message(w, http.StatusUnauthorized, "Utilizador ou senha inválidos.")
		return
	}

	sess := session.FromCtx(r)
	sess.Set(session.AdminLoggedIn, true)
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("save session", "error", err)
		response.Internal(w, "Erro ao iniciar sessão.")
		return
	}

	response.Message(w, http.StatusOK, "Login bem-sucedido.")
}

// Logout clears the session.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("save session", "error", err)
	}
	response.Message(w, http.StatusOK, "Logout bem-sucedido.")
}
