package response

import "dcs_payments/internal/domain/entities"

// PaymentIntentResponse is the gateway intent handed back to the caller.
// client_secret is what the donor-facing client needs to confirm the
// payment with the gateway.

type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Customer     string `json:"customer"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

func FromPaymentIntent(pi entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Customer:     pi.CustomerRef,
		Amount:       pi.Amount,
		Currency:     pi.Currency,
		Status:       pi.Status,
	}
}
