package entities

import "time"

// DonationStatus represents the lifecycle of a donation attempt as driven
// by the payment gateway's webhook events.

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusComplete  DonationStatus = "complete"
	DonationStatusCancelled DonationStatus = "cancelled"
)

// Donation is the donation attempt persisted by the payments service.
//
// Storage model (DynamoDB):
//   - PK: payment_intent_ref (the Stripe payment intent id)
//   - GSI1 (donor_id-index): donor_id
//
// Amount is in minor currency units, currency is stored lowercased.

type Donation struct {
	ID               string         `json:"id"`
	PaymentIntentRef string         `json:"payment_intent_ref"`
	DonorID          int64          `json:"donor_id"`
	Amount           int64          `json:"amount"`
	Currency         string         `json:"currency"`
	Description      string         `json:"description,omitempty"`
	Status           DonationStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
