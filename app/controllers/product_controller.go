package controllers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/turboost/store/app/models"
	"github.com/turboost/store/app/repositories"
	"github.com/turboost/store/pkg/logger"
	"github.com/turboost/store/pkg/response"
)

const (
	// Product forms carry up to six media files.
	maxProductRequestSize = 64 << 20
	maxMultipartMemory    = 16 << 20
)

// ProductStore is the persistence surface the product routes need.
type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, doc bson.M) (string, error)
	Update(ctx context.Context, id string, doc bson.M) error
	Delete(ctx context.Context, id string) error
}

// MediaUploader stores one uploaded file and returns its public URL, or
// ("", nil) for an empty form slot.
type MediaUploader interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error)
}

type ProductController struct {
	products ProductStore
	uploader MediaUploader
}

func NewProductController(products ProductStore, uploader MediaUploader) *ProductController {
	return &ProductController{products: products, uploader: uploader}
}

// Index lists the whole catalogue. Public: the storefront renders from it.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products", "error", err)
		response.Internal(w, "Erro interno ao buscar produtos.")
		return
	}
	response.JSON(w, http.StatusOK, products)
}

// Store creates a product from the admin multipart form.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	doc, err := c.parseForm(w, r)
	if err != nil {
		response.BadRequest(w, "Formulário inválido.")
		return
	}

	if !c.attachMedia(w, r, doc) {
		return
	}

	id, err := c.products.Create(r.Context(), models.ApplyCreateDefaults(doc))
	if err != nil {
		logger.WithCtx(r.Context()).Error("create product", "error", err)
		response.Internal(w, "Erro ao adicionar produto.")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{
		"message": "Produto adicionado com sucesso",
		"id":      id,
	})
}

// Update merges the submitted fields into the product. Media slots with
// no new file are left out of the merge, so the stored URLs survive.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	doc, err := c.parseForm(w, r)
	if err != nil {
		response.BadRequest(w, "Formulário inválido.")
		return
	}

	if !c.attachMedia(w, r, doc) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := c.products.Update(r.Context(), id, doc); err != nil {
		switch {
		case errors.Is(err, repositories.ErrInvalidID):
			response.BadRequest(w, "ID de produto inválido.")
		case errors.Is(err, repositories.ErrNotFound):
			response.Message(w, http.StatusNotFound, "Produto não encontrado.")
		default:
			logger.WithCtx(r.Context()).Error("update product", "id", id, "error", err)
			response.Internal(w, "Erro ao atualizar produto.")
		}
		return
	}

	response.Message(w, http.StatusOK, "Produto atualizado com sucesso.")
}

// Destroy deletes a product. Deleting an already-deleted product is a 200,
// matching the idempotent delete underneath.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := c.products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrInvalidID) {
			response.BadRequest(w, "ID de produto inválido.")
			return
		}
		logger.WithCtx(r.Context()).Error("delete product", "id", id, "error", err)
		response.Internal(w, "Erro ao eliminar produto.")
		return
	}
	response.Message(w, http.StatusOK, "Produto eliminado com sucesso.")
}

func (c *ProductController) parseForm(w http.ResponseWriter, r *http.Request) (bson.M, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProductRequestSize)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, err
	}
	return models.ParseProductForm(url.Values(r.MultipartForm.Value)), nil
}

// attachMedia uploads each submitted media slot and writes its URL into
// doc. Returns false after responding when an upload fails.
func (c *ProductController) attachMedia(w http.ResponseWriter, r *http.Request, doc bson.M) bool {
	slots := map[string]string{}
	for _, key := range models.ImageFields {
		slots[key] = "products"
	}
	for _, key := range models.SoundFields {
		slots[key] = "sounds"
	}

	for key, folder := range slots {
		fh := formFile(r, key)
		mediaURL, err := c.uploader.Upload(r.Context(), fh, folder)
		if err != nil {
			logger.WithCtx(r.Context()).Error("upload media", "field", key, "error", err)
			response.Internal(w, "Erro ao enviar ficheiro.")
			return false
		}
		if mediaURL != "" {
			doc[key] = mediaURL
		}
	}
	return true
}

// formFile returns the first file submitted under key, nil when absent.
func formFile(r *http.Request, key string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[key]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}
