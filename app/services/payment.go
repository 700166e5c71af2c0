package services

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/turboost/store/pkg/metrics"
)

// CartItem is one checkout line as the storefront submits it.
type CartItem struct {
	NomeProduto string  `json:"nomeProduto"`
	Quantity    int     `json:"quantity"`
	Preco       float64 `json:"preco"`
}

// CustomerInfo identifies the payer.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CheckoutInput is everything the gateway preference is built from.
// BaseURL is the scheme+host the buyer is redirected back to.
type CheckoutInput struct {
	Items        []CartItem
	ShippingCost float64
	Customer     CustomerInfo
	BaseURL      string
}

// PaymentService creates checkout preferences at Mercado Pago. The
// request is forwarded as-is: no total validation and no idempotency key,
// so a retried client request creates a second preference.
type PaymentService struct {
	prefs preference.Client
}

// NewPaymentService configures the gateway SDK with the access token.
func NewPaymentService(accessToken string) (*PaymentService, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payment: sdk config: %w", err)
	}
	return &PaymentService{prefs: preference.NewClient(cfg)}, nil
}

// CreatePreference builds one gateway item per cart line plus a synthetic
// shipping line, and returns the gateway's response unmodified.
func (s *PaymentService) CreatePreference(ctx context.Context, in CheckoutInput) (*preference.Response, error) {
	items := make([]preference.ItemRequest, 0, len(in.Items)+1)
	for _, item := range in.Items {
		items = append(items, preference.ItemRequest{
			Title:      item.NomeProduto,
			Quantity:   item.Quantity,
			UnitPrice:  item.Preco,
			CurrencyID: "BRL",
		})
	}
	items = append(items, preference.ItemRequest{
		Title:      "Frete",
		Quantity:   1,
		UnitPrice:  in.ShippingCost,
		CurrencyID: "BRL",
	})

	req := preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{
			Name:  in.Customer.Name,
			Email: in.Customer.Email,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: in.BaseURL + "/payment-success.html",
			Failure: in.BaseURL + "/payment-failure.html",
			Pending: in.BaseURL + "/payment-pending.html",
		},
		AutoReturn: "approved",
	}

	resp, err := s.prefs.Create(ctx, req)
	if err != nil {
		metrics.PaymentPreferencesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("payment: create preference: %w", err)
	}

	metrics.PaymentPreferencesTotal.WithLabelValues("ok").Inc()
	return resp, nil
}
