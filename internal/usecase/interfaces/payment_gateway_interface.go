package interfaces

import (
	"context"
	"dcs_payments/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment processor (Stripe).
//
// VerifyWebhook checks the signature of a raw webhook payload and parses it
// into a typed event; a failed verification is an error, never a zero event.
// CreateCustomer returns the gateway-side customer reference for a donor.
type IPaymentGateway interface {
	VerifyWebhook(payload []byte, signature string) (entities.WebhookEvent, error)
	CreateCustomer(ctx context.Context, email string, donorID int64) (string, error)
	CreatePaymentIntent(ctx context.Context, data entities.PaymentIntentData) (entities.PaymentIntent, error)
}
