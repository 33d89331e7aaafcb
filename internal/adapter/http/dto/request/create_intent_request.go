package request

import "dcs_payments/internal/usecase"

// CreateIntentRequest is the payload for the "create payment intent" route.
//
// Amount is in minor currency units. Description is optional; when it is
// absent no metadata at all is attached to the gateway intent, so the
// field stays a pointer to distinguish "" from undefined.

type CreateIntentRequest struct {
	DonorID     int64   `json:"donor_id" binding:"required"`
	Amount      int64   `json:"amount" binding:"required"`
	Currency    string  `json:"currency" binding:"required"`
	Description *string `json:"description"`
}

func (r CreateIntentRequest) ToCommand() usecase.CreateIntentCommand {
	return usecase.CreateIntentCommand{
		DonorID:     r.DonorID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: r.Description,
	}
}
