package response

import (
	"dcs_payments/internal/domain/entities"
	"time"
)

type DonorResponse struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name,omitempty"`
	GatewayCustomerRef string    `json:"gateway_customer_ref,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromDonor(d entities.Donor) DonorResponse {
	return DonorResponse{
		ID:                 d.ID,
		Email:              d.Email,
		Name:               d.Name,
		GatewayCustomerRef: d.GatewayCustomerRef,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
