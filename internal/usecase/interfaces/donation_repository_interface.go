package interfaces

import (
	"context"
	"dcs_payments/internal/domain/entities"
)

// IDonationRepository abstracts DynamoDB persistence for Donation.
//
// The payments service must be able to:
//   - create a pending donation when a payment intent is created
//   - update a donation's status by payment intent ref (webhook reconciliation)
//   - read donations back for the API surface

type IDonationRepository interface {
	Create(ctx context.Context, d entities.Donation) (entities.Donation, error)
	GetByPaymentIntentRef(ctx context.Context, ref string) (entities.Donation, error)
	UpdateStatusByPaymentIntentRef(ctx context.Context, ref string, status entities.DonationStatus) (entities.Donation, error)
	ListByDonorID(ctx context.Context, donorID int64) ([]entities.Donation, error)
}
