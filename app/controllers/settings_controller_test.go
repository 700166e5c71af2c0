package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turboost/store/app/controllers"
	"github.com/turboost/store/app/models"
)

func TestSettingsShowUnconfigured(t *testing.T) {
	c := controllers.NewSettingsController(&fakeSettingsStore{}, &fakeUploader{})

	rec := httptest.NewRecorder()
	c.Show(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestSettingsShow(t *testing.T) {
	store := &fakeSettingsStore{config: models.StoreConfig{
		"storeName": "Turboost",
		"logoUrl":   "https://cdn.test/branding/logo.png",
	}}
	c := controllers.NewSettingsController(store, &fakeUploader{})

	rec := httptest.NewRecorder()
	c.Show(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"storeName":"Turboost","logoUrl":"https://cdn.test/branding/logo.png"}`, rec.Body.String())
}

func TestSettingsSaveMergesFieldsAndBranding(t *testing.T) {
	store := &fakeSettingsStore{}
	uploader := &fakeUploader{}
	c := controllers.NewSettingsController(store, uploader)

	req := multipartRequest(t, http.MethodPost, "/api/settings",
		map[string]string{"storeName": "Turboost", "whatsapp": "+351000000000"},
		map[string]string{"logoFile": "logo.png"})

	rec := httptest.NewRecorder()
	c.Save(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.merged)
	assert.Equal(t, "Turboost", store.merged["storeName"])
	assert.Equal(t, "+351000000000", store.merged["whatsapp"])

	// The file field becomes a URL field; the raw upload never persists.
	assert.Equal(t, "https://cdn.test/branding/logo.png", store.merged["logoUrl"])
	assert.NotContains(t, store.merged, "faviconUrl")
	assert.Equal(t, "branding", uploader.uploads["logo.png"])
}

func TestClientConfigIncomplete(t *testing.T) {
	c := controllers.NewSettingsController(&fakeSettingsStore{}, &fakeUploader{})

	rec := httptest.NewRecorder()
	c.ClientConfig(rec, httptest.NewRequest(http.MethodGet, "/api/firebase-config", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestClientConfigComplete(t *testing.T) {
	t.Setenv("FIREBASE_API_KEY", "key")
	t.Setenv("FIREBASE_AUTH_DOMAIN", "auth.test")
	t.Setenv("FIREBASE_PROJECT_ID", "proj")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "bucket")
	t.Setenv("FIREBASE_MESSAGING_SENDER_ID", "sender")
	t.Setenv("FIREBASE_APP_ID", "app")

	c := controllers.NewSettingsController(&fakeSettingsStore{}, &fakeUploader{})

	rec := httptest.NewRecorder()
	c.ClientConfig(rec, httptest.NewRequest(http.MethodGet, "/api/firebase-config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"apiKey": "key",
		"authDomain": "auth.test",
		"projectId": "proj",
		"storageBucket": "bucket",
		"messagingSenderId": "sender",
		"appId": "app"
	}`, rec.Body.String())
}
