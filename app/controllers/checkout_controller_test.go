package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turboost/store/app/controllers"
)

func TestShippingQuote(t *testing.T) {
	c := controllers.NewCheckoutController(nil)

	rec := httptest.NewRecorder()
	c.Shipping(rec, httptest.NewRequest(http.MethodPost, "/api/shipping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"Codigo":"04510","Valor":"25,50","PrazoEntrega":"5"},
		{"Codigo":"04014","Valor":"45,80","PrazoEntrega":"2"}
	]`, rec.Body.String())
}

func TestCreatePaymentWithoutGateway(t *testing.T) {
	c := controllers.NewCheckoutController(nil)

	rec := httptest.NewRecorder()
	c.CreatePayment(rec, postJSON("/api/create-payment", `{"cartItems":[{"nomeProduto":"Escape","quantity":1,"preco":100}]}`))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreatePaymentEmptyCart(t *testing.T) {
	c := controllers.NewCheckoutController(&fakePreferences{})

	rec := httptest.NewRecorder()
	c.CreatePayment(rec, postJSON("/api/create-payment", `{"cartItems":[]}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePayment(t *testing.T) {
	gateway := &fakePreferences{}
	c := controllers.NewCheckoutController(gateway)

	req := postJSON("/api/create-payment", `{
		"cartItems": [
			{"nomeProduto": "Escape Esportivo", "quantity": 2, "preco": 1299.90},
			{"nomeProduto": "Ponteira", "quantity": "1", "preco": "450.00"}
		],
		"shippingCost": "25.50",
		"customerInfo": {"name": "Ana", "email": "ana@example.com"}
	}`)
	req.Host = "loja.test"

	rec := httptest.NewRecorder()
	c.CreatePayment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gateway.got)

	in := *gateway.got
	require.Len(t, in.Items, 2)
	assert.Equal(t, "Escape Esportivo", in.Items[0].NomeProduto)
	assert.Equal(t, 2, in.Items[0].Quantity)

	// Quantities and prices arrive as strings from the older checkout page.
	assert.Equal(t, 1, in.Items[1].Quantity)
	assert.Equal(t, 450.00, in.Items[1].Preco)
	assert.Equal(t, 25.50, in.ShippingCost)

	assert.Equal(t, "Ana", in.Customer.Name)
	assert.Equal(t, "http://loja.test", in.BaseURL)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pref-123", body["id"])
}

func TestCreatePaymentForwardedProto(t *testing.T) {
	gateway := &fakePreferences{}
	c := controllers.NewCheckoutController(gateway)

	req := postJSON("/api/create-payment", `{"cartItems":[{"nomeProduto":"Escape","quantity":1,"preco":100}]}`)
	req.Host = "loja.test"
	req.Header.Set("X-Forwarded-Proto", "https")

	rec := httptest.NewRecorder()
	c.CreatePayment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gateway.got)
	assert.Equal(t, "https://loja.test", gateway.got.BaseURL)
}
