package controllers_test

import (
	"context"
	"mime/multipart"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/turboost/store/app/models"
	"github.com/turboost/store/app/repositories"
	"github.com/turboost/store/app/services"
)

type fakeAdminStore struct {
	admin      *models.Admin
	existsErr  error
	createErr  error
	createdOne bool
}

func (f *fakeAdminStore) Exists(ctx context.Context) (bool, error) {
	return f.admin != nil, f.existsErr
}

func (f *fakeAdminStore) Create(ctx context.Context, admin models.Admin) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.admin = &admin
	f.createdOne = true
	return nil
}

func (f *fakeAdminStore) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	if f.admin != nil && f.admin.Username == username {
		return *f.admin, nil
	}
	return models.Admin{}, repositories.ErrNotFound
}

type fakeProductStore struct {
	products  []models.Product
	created   []bson.M
	updated   map[string]bson.M
	deleted   []string
	updateErr error
	deleteErr error
	allErr    error
}

func (f *fakeProductStore) All(ctx context.Context) ([]models.Product, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	if f.products == nil {
		return []models.Product{}, nil
	}
	return f.products, nil
}

func (f *fakeProductStore) Create(ctx context.Context, doc bson.M) (string, error) {
	f.created = append(f.created, doc)
	return "507f1f77bcf86cd799439011", nil
}

func (f *fakeProductStore) Update(ctx context.Context, id string, doc bson.M) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = map[string]bson.M{}
	}
	f.updated[id] = doc
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSettingsStore struct {
	config   models.StoreConfig
	merged   bson.M
	mergeErr error
}

func (f *fakeSettingsStore) Get(ctx context.Context) (models.StoreConfig, error) {
	if f.config == nil {
		return models.StoreConfig{}, nil
	}
	return f.config, nil
}

func (f *fakeSettingsStore) Merge(ctx context.Context, fields bson.M) error {
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.merged = fields
	return nil
}

// fakeUploader records uploads and hands back deterministic URLs.
type fakeUploader struct {
	uploads map[string]string // form field -> folder
	err     error
}

func (f *fakeUploader) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	if f.uploads == nil {
		f.uploads = map[string]string{}
	}
	f.uploads[fh.Filename] = folder
	return "https://cdn.test/" + folder + "/" + fh.Filename, nil
}

type fakePreferences struct {
	got *services.CheckoutInput
	err error
}

func (f *fakePreferences) CreatePreference(ctx context.Context, in services.CheckoutInput) (*preference.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.got = &in
	return &preference.Response{ID: "pref-123", InitPoint: "https://mp.test/init"}, nil
}
