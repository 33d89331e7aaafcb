package usecase

import (
	"context"
	"errors"
	"strings"

	"dcs_payments/internal/domain/entities"
	"dcs_payments/internal/usecase/interfaces"
)

var (
	ErrDonationNotFound        = errors.New("donation not found")
	ErrInvalidPaymentIntentRef = errors.New("invalid payment_intent_ref")
)

// IDonationUseCase exposes read access to donation records.

type IDonationUseCase interface {
	GetByPaymentIntentRef(ctx context.Context, ref string) (entities.Donation, error)
	ListByDonorID(ctx context.Context, donorID int64) ([]entities.Donation, error)
}

type DonationUseCase struct {
	repo interfaces.IDonationRepository
}

var _ IDonationUseCase = (*DonationUseCase)(nil)

func NewDonationUseCase(repo interfaces.IDonationRepository) *DonationUseCase {
	return &DonationUseCase{repo: repo}
}

func (u *DonationUseCase) GetByPaymentIntentRef(ctx context.Context, ref string) (entities.Donation, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return entities.Donation{}, ErrInvalidPaymentIntentRef
	}

	d, err := u.repo.GetByPaymentIntentRef(ctx, ref)
	if err != nil {
		return entities.Donation{}, err
	}
	if d.PaymentIntentRef == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	return d, nil
}

func (u *DonationUseCase) ListByDonorID(ctx context.Context, donorID int64) ([]entities.Donation, error) {
	if donorID <= 0 {
		return nil, ErrInvalidDonorID
	}
	return u.repo.ListByDonorID(ctx, donorID)
}
