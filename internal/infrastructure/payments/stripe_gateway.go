package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"dcs_payments/internal/domain/entities"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/customer"
	"github.com/stripe/stripe-go/v72/paymentintent"
	"github.com/stripe/stripe-go/v72/webhook"
)

var (
	ErrMissingStripeSecretKey     = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
	ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")
)

// Customer metadata tag linking the gateway customer back to the donor.
const donorIDMetadataKey = "dcs_donor_id"

// StripeGateway implements IPaymentGateway on the Stripe SDK.
//
// Webhook signature verification is delegated entirely to the SDK's
// webhook.ConstructEvent; this service never reimplements the scheme.

type StripeGateway struct {
	webhookSecret string
	mockMode      bool
}

func NewStripeGateway(apiKey, webhookSecret string) (*StripeGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	if webhookSecret == "" {
		log.Printf("[payment][gateway] missing STRIPE_WEBHOOK_SECRET")
		return nil, ErrMissingStripeWebhookSecret
	}

	stripe.Key = apiKey
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{webhookSecret: webhookSecret}, nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (entities.WebhookEvent, error) {
	if g != nil && g.mockMode {
		return parseUnverifiedEvent(payload)
	}
	if g == nil || g.webhookSecret == "" {
		return entities.WebhookEvent{}, ErrStripeGatewayNotConfigured
	}

	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		log.Printf("[payment][gateway] webhook signature verification failed err=%v", err)
		return entities.WebhookEvent{}, err
	}
	// A signed envelope can still omit the data object entirely.
	if event.Data == nil {
		log.Printf("[payment][gateway] webhook event has no data object event_id=%s", event.ID)
		return entities.WebhookEvent{}, fmt.Errorf("webhook event %s has no data object", event.ID)
	}

	objectID, err := extractObjectID(event.Data.Raw)
	if err != nil {
		log.Printf("[payment][gateway] webhook event object parse failed event_id=%s err=%v", event.ID, err)
		return entities.WebhookEvent{}, err
	}

	return entities.WebhookEvent{
		ID:               event.ID,
		Type:             event.Type,
		PaymentIntentRef: objectID,
	}, nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email string, donorID int64) (string, error) {
	if g != nil && g.mockMode {
		id := "cus_mock_" + strconv.FormatInt(donorID, 10)
		log.Printf("[payment][gateway] mock customer created customer_ref=%s", id)
		return id, nil
	}
	if g == nil {
		return "", ErrStripeGatewayNotConfigured
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata(donorIDMetadataKey, strconv.FormatInt(donorID, 10))

	cus, err := customer.New(params)
	if err != nil {
		log.Printf("[payment][gateway] sdk customer creation failed err=%v", err)
		return "", err
	}
	log.Printf("[payment][gateway] customer created customer_ref=%s", cus.ID)
	return cus.ID, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, data entities.PaymentIntentData) (entities.PaymentIntent, error) {
	if g != nil && g.mockMode {
		return mockPaymentIntent(data)
	}
	if g == nil {
		return entities.PaymentIntent{}, ErrStripeGatewayNotConfigured
	}
	log.Printf("[payment][gateway] intent create start customer_ref=%s amount=%d currency=%s", data.CustomerRef, data.Amount, data.Currency)

	params := &stripe.PaymentIntentParams{
		Customer: stripe.String(data.CustomerRef),
		Amount:   stripe.Int64(data.Amount),
		Currency: stripe.String(data.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	// Metadata is attached only when a description was given; an empty
	// metadata object is never sent.
	if data.Description != nil {
		params.AddMetadata("description", *data.Description)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Printf("[payment][gateway] sdk intent creation failed err=%v", err)
		return entities.PaymentIntent{}, err
	}

	log.Printf("[payment][gateway] intent create success pi_ref=%s status=%s", pi.ID, pi.Status)

	customerRef := data.CustomerRef
	if pi.Customer != nil {
		customerRef = pi.Customer.ID
	}
	return entities.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		CustomerRef:  customerRef,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

// parseUnverifiedEvent reads a webhook payload without checking its
// signature. Mock mode only.
func parseUnverifiedEvent(payload []byte) (entities.WebhookEvent, error) {
	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return entities.WebhookEvent{}, fmt.Errorf("parsing webhook payload: %w", err)
	}
	objectID := ""
	if event.Data != nil {
		id, err := extractObjectID(event.Data.Raw)
		if err != nil {
			return entities.WebhookEvent{}, err
		}
		objectID = id
	}
	return entities.WebhookEvent{ID: event.ID, Type: event.Type, PaymentIntentRef: objectID}, nil
}

func extractObjectID(raw json.RawMessage) (string, error) {
	var object struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &object); err != nil {
		return "", fmt.Errorf("parsing webhook event object: %w", err)
	}
	return object.ID, nil
}

func mockPaymentIntent(data entities.PaymentIntentData) (entities.PaymentIntent, error) {
	id := "pi_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	pi := entities.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		CustomerRef:  data.CustomerRef,
		Amount:       data.Amount,
		Currency:     data.Currency,
		Status:       "requires_payment_method",
	}
	log.Printf("[payment][gateway] mock intent created pi_ref=%s", id)
	return pi, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
