package domain

import (
	"context"
	"io"
)

// PaymentIntent is the provider handle returned at checkout. The client
// completes payment against ClientSecret; the server keeps ID on the order.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentProvider creates payment intents for order totals. Stripe in
// production, a fake in tests.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}

// FileStore persists an uploaded object under a category/name pair and
// returns its public URL. Local disk in this repository; the interface keeps
// an object store swappable.
type FileStore interface {
	Save(ctx context.Context, category, name string, contentType string, r io.Reader) (string, error)
}
