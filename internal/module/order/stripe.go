package order

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/reignite/reignite/internal/domain"
)

// NewOfflineProvider returns a PaymentProvider that fabricates intents
// locally. Used in development when no Stripe key is configured.
func NewOfflineProvider() domain.PaymentProvider {
	return offlineProvider{}
}

type offlineProvider struct{}

func (offlineProvider) CreateIntent(_ context.Context, amountCents int64, currency string, _ map[string]string) (*domain.PaymentIntent, error) {
	id := fmt.Sprintf("pi_offline_%d_%s", amountCents, currency)
	return &domain.PaymentIntent{ID: id, ClientSecret: id + "_secret"}, nil
}

// stripeProvider implements domain.PaymentProvider against the Stripe API.
type stripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a PaymentProvider using the given secret key.
func NewStripeProvider(secretKey string) domain.PaymentProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeProvider{api: api}
}

func (p *stripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}
