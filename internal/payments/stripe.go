// Package payments wraps the external payment processor behind a small
// interface so handlers and tests never talk to Stripe directly.
package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Provider creates a payment intent for the given amount in the smallest
// currency unit and returns the client secret the frontend confirms with.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

// StripeProvider charges camp fees in BDT via card.
type StripeProvider struct{}

func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyBDT)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	// Each request gets a fresh idempotency key: retries of the same HTTP
	// request are not deduplicated upstream, matching one intent per call.
	params.IdempotencyKey = stripe.String(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
