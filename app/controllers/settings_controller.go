package controllers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/turboost/store/app/models"
	"github.com/turboost/store/config"
	"github.com/turboost/store/pkg/logger"
	"github.com/turboost/store/pkg/response"
)

// SettingsStore is the persistence surface for the singleton store config.
type SettingsStore interface {
	Get(ctx context.Context) (models.StoreConfig, error)
	Merge(ctx context.Context, fields bson.M) error
}

type SettingsController struct {
	settings SettingsStore
	uploader MediaUploader
}

func NewSettingsController(settings SettingsStore, uploader MediaUploader) *SettingsController {
	return &SettingsController{settings: settings, uploader: uploader}
}

// Show returns the store configuration; an unconfigured store reads as {}.
func (c *SettingsController) Show(w http.ResponseWriter, r *http.Request) {
	cfg, err := c.settings.Get(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("get settings", "error", err)
		response.Internal(w, "Erro ao buscar configurações.")
		return
	}
	response.JSON(w, http.StatusOK, cfg)
}

// Save merges the submitted branding fields into the config, uploading a
// new logo/favicon when one was attached.
func (c *SettingsController) Save(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProductRequestSize)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.BadRequest(w, "Formulário inválido.")
		return
	}

	fields := bson.M{}
	for key, vals := range r.MultipartForm.Value {
		if len(vals) > 0 {
			fields[key] = vals[0]
		}
	}

	uploads := map[string]string{
		"logoFile":    "logoUrl",
		"faviconFile": "faviconUrl",
	}
	for fileKey, urlKey := range uploads {
		mediaURL, err := c.uploader.Upload(r.Context(), formFile(r, fileKey), "branding")
		if err != nil {
			logger.WithCtx(r.Context()).Error("upload branding", "field", fileKey, "error", err)
			response.Internal(w, "Erro ao enviar ficheiro.")
			return
		}
		if mediaURL != "" {
			fields[urlKey] = mediaURL
		}
	}

	if err := c.settings.Merge(r.Context(), fields); err != nil {
		logger.WithCtx(r.Context()).Error("save settings", "error", err)
		response.Internal(w, "Erro ao guardar configurações.")
		return
	}

	response.Message(w, http.StatusOK, "Configurações guardadas com sucesso.")
}

// ClientConfig exposes the browser-side service configuration. All keys
// come from the environment; any missing one is a deployment error.
func (c *SettingsController) ClientConfig(w http.ResponseWriter, r *http.Request) {
	cfg, ok := config.WebClientConfig()
	if !ok {
		logger.WithCtx(r.Context()).Error("client config incomplete")
		response.Internal(w, "Configuração do cliente incompleta no servidor.")
		return
	}
	response.JSON(w, http.StatusOK, cfg)
}
