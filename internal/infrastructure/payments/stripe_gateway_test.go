package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"dcs_payments/internal/domain/entities"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the way Stripe does: HMAC
// SHA-256 of "<timestamp>.<payload>" with the endpoint secret.
func signPayload(t *testing.T, payload []byte, secret string, ts time.Time) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func newTestGateway(t *testing.T) *StripeGateway {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("STRIPE_MOCK", "")
	g, err := NewStripeGateway("sk_test_key", testWebhookSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestStripeGateway_VerifyWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)

	t.Run("valid signature parses the event", func(t *testing.T) {
		g := newTestGateway(t)

		sig := signPayload(t, payload, testWebhookSecret, time.Now())
		event, err := g.VerifyWebhook(payload, sig)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "evt_1" || event.Type != "payment_intent.succeeded" {
			t.Fatalf("unexpected event: %+v", event)
		}
		if event.PaymentIntentRef != "pi_123" {
			t.Fatalf("unexpected payment intent ref: %q", event.PaymentIntentRef)
		}
	})

	t.Run("signed event without a data object is rejected", func(t *testing.T) {
		g := newTestGateway(t)

		bare := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
		sig := signPayload(t, bare, testWebhookSecret, time.Now())
		if _, err := g.VerifyWebhook(bare, sig); err == nil {
			t.Fatalf("expected error for event without data")
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		g := newTestGateway(t)

		sig := signPayload(t, payload, "whsec_other", time.Now())
		if _, err := g.VerifyWebhook(payload, sig); err == nil {
			t.Fatalf("expected verification error")
		}
	})

	t.Run("garbage header is rejected", func(t *testing.T) {
		g := newTestGateway(t)

		if _, err := g.VerifyWebhook(payload, "not-a-signature"); err == nil {
			t.Fatalf("expected verification error")
		}
	})

	t.Run("stale timestamp is rejected", func(t *testing.T) {
		g := newTestGateway(t)

		sig := signPayload(t, payload, testWebhookSecret, time.Now().Add(-24*time.Hour))
		if _, err := g.VerifyWebhook(payload, sig); err == nil {
			t.Fatalf("expected tolerance error")
		}
	})
}

func TestStripeGateway_MissingConfig(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("STRIPE_MOCK", "")

	if _, err := NewStripeGateway("", "whsec"); !errors.Is(err, ErrMissingStripeSecretKey) {
		t.Fatalf("expected ErrMissingStripeSecretKey, got %v", err)
	}
	if _, err := NewStripeGateway("sk_test", ""); !errors.Is(err, ErrMissingStripeWebhookSecret) {
		t.Fatalf("expected ErrMissingStripeWebhookSecret, got %v", err)
	}
}

func TestStripeGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	g, err := NewStripeGateway("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("webhook parses without a signature", func(t *testing.T) {
		payload := []byte(`{"id":"evt_1","type":"payment_intent.canceled","data":{"object":{"id":"pi_9"}}}`)
		event, err := g.VerifyWebhook(payload, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != "payment_intent.canceled" || event.PaymentIntentRef != "pi_9" {
			t.Fatalf("unexpected event: %+v", event)
		}
	})

	t.Run("webhook still requires valid json", func(t *testing.T) {
		if _, err := g.VerifyWebhook([]byte("{"), ""); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("customer and intent are fabricated", func(t *testing.T) {
		ref, err := g.CreateCustomer(context.Background(), "a@x.com", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ref != "cus_mock_1" {
			t.Fatalf("unexpected customer ref: %q", ref)
		}

		pi, err := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentData{CustomerRef: ref, Amount: 500, Currency: "eur"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pi.ID == "" || pi.ClientSecret == "" || pi.CustomerRef != ref {
			t.Fatalf("unexpected intent: %+v", pi)
		}
		if pi.Amount != 500 || pi.Currency != "eur" {
			t.Fatalf("unexpected intent values: %+v", pi)
		}
	})
}
