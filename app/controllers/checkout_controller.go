package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/turboost/store/app/services"
	"github.com/turboost/store/pkg/logger"
	"github.com/turboost/store/pkg/response"
)

// PreferenceCreator creates a checkout preference at the payment gateway.
type PreferenceCreator interface {
	CreatePreference(ctx context.Context, in services.CheckoutInput) (*preference.Response, error)
}

// CheckoutController serves the shipping quote stub and payment creation.
// payments is nil when MERCADOPAGO_ACCESS_TOKEN is not configured; the
// payment route answers 503 in that case.
type CheckoutController struct {
	payments PreferenceCreator
}

func NewCheckoutController(payments PreferenceCreator) *CheckoutController {
	return &CheckoutController{payments: payments}
}

// shippingQuote mirrors the carrier response shape the storefront expects.
type shippingQuote struct {
	Codigo       string `json:"Codigo"`
	Valor        string `json:"Valor"`
	PrazoEntrega string `json:"PrazoEntrega"`
}

// Shipping returns the fixed two-option quote. Not a real computation;
// the storefront only needs the shape until a carrier integration lands.
func (c *CheckoutController) Shipping(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, []shippingQuote{
		{Codigo: "04510", Valor: "25,50", PrazoEntrega: "5"},
		{Codigo: "04014", Valor: "45,80", PrazoEntrega: "2"},
	})
}

// CreatePayment forwards the cart to the payment gateway and returns the
// preference response as-is. Quantity and price fields arrive as either
// JSON numbers or strings depending on the storefront page, so they are
// coerced, not strictly typed.
func (c *CheckoutController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	if c.payments == nil {
		response.Unavailable(w, "O serviço de pagamento não está configurado.")
		return
	}

	var body struct {
		CartItems    []map[string]interface{} `json:"cartItems"`
		ShippingCost interface{}              `json:"shippingCost"`
		CustomerInfo services.CustomerInfo    `json:"customerInfo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Corpo do pedido inválido.")
		return
	}
	if len(body.CartItems) == 0 {
		response.BadRequest(w, "Carrinho vazio.")
		return
	}

	in := services.CheckoutInput{
		ShippingCost: asFloat(body.ShippingCost),
		Customer:     body.CustomerInfo,
		BaseURL:      requestBaseURL(r),
	}
	for _, item := range body.CartItems {
		in.Items = append(in.Items, services.CartItem{
			NomeProduto: asString(item["nomeProduto"]),
			Quantity:    int(asFloat(item["quantity"])),
			Preco:       asFloat(item["preco"]),
		})
	}

	pref, err := c.payments.CreatePreference(r.Context(), in)
	if err != nil {
		logger.WithCtx(r.Context()).Error("create payment", "error", err)
		response.Internal(w, "Erro ao criar pagamento.")
		return
	}

	response.JSON(w, http.StatusOK, pref)
}

// requestBaseURL rebuilds the scheme+host the buyer came from, so the
// gateway redirects back to the right place behind a proxy too.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	case json.Number:
		f, _ := n.Float64()
		return f
	}
	return 0
}
