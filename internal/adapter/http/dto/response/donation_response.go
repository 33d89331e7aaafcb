package response

import (
	"dcs_payments/internal/domain/entities"
	"time"
)

type DonationResponse struct {
	ID               string    `json:"id"`
	PaymentIntentRef string    `json:"payment_intent_ref"`
	DonorID          int64     `json:"donor_id"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Description      string    `json:"description,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromDonation(d entities.Donation) DonationResponse {
	return DonationResponse{
		ID:               d.ID,
		PaymentIntentRef: d.PaymentIntentRef,
		DonorID:          d.DonorID,
		Amount:           d.Amount,
		Currency:         d.Currency,
		Description:      d.Description,
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func FromDonations(ds []entities.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDonation(d))
	}
	return out
}
