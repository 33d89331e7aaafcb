package entities

// Gateway webhook event types this service reacts to. Any other type is
// acknowledged and ignored.
const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentCanceled  = "payment_intent.canceled"
)

// WebhookEvent is a signature-verified gateway notification. The embedded
// object id is the payment intent reference for payment_intent.* events.

type WebhookEvent struct {
	ID               string
	Type             string
	PaymentIntentRef string
}

// PaymentIntentData is the value sent to the gateway when creating a
// payment intent. Description is a pointer on purpose: when nil, no
// metadata at all is attached to the intent.

type PaymentIntentData struct {
	CustomerRef string
	Amount      int64
	Currency    string
	Description *string
}

// PaymentIntent is the gateway's created intent, passed back to the caller
// untransformed.

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	CustomerRef  string `json:"customer"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
