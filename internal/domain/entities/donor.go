package entities

import "time"

// Donor mirrors an upstream donor record into the payments service.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// GatewayCustomerRef links the donor to its Stripe customer. It is set
// lazily the first time a payment intent is created for the donor and is
// never overwritten afterwards (conditional write at the repository).

type Donor struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name,omitempty"`
	GatewayCustomerRef string    `json:"gateway_customer_ref,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
