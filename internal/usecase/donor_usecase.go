package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dcs_payments/internal/domain/entities"
	"dcs_payments/internal/usecase/interfaces"
)

var (
	ErrInvalidDonorEmail  = errors.New("invalid donor email")
	ErrDonorAlreadyExists = errors.New("donor already exists")
)

// IDonorUseCase exposes donor mirror operations.
//
// Donor identities are owned by the upstream donor system; this service
// only mirrors them (keeping their numeric ids) so payment requests can be
// resolved locally.

type IDonorUseCase interface {
	Register(ctx context.Context, id int64, email, name string) (entities.Donor, error)
	GetByID(ctx context.Context, id int64) (entities.Donor, error)
}

type DonorUseCase struct {
	repo interfaces.IDonorRepository
}

var _ IDonorUseCase = (*DonorUseCase)(nil)

func NewDonorUseCase(repo interfaces.IDonorRepository) *DonorUseCase {
	return &DonorUseCase{repo: repo}
}

func (u *DonorUseCase) Register(ctx context.Context, id int64, email, name string) (entities.Donor, error) {
	if id <= 0 {
		return entities.Donor{}, ErrInvalidDonorID
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Donor{}, ErrInvalidDonorEmail
	}

	// Enforce: 1 mirror record per upstream donor.
	if existing, err := u.repo.FindByID(ctx, id); err != nil {
		return entities.Donor{}, err
	} else if existing.ID != 0 {
		return entities.Donor{}, ErrDonorAlreadyExists
	}

	now := time.Now().UTC()
	d := entities.Donor{
		ID:        id,
		Email:     email,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		// Two concurrent registrations can both pass the read above; the
		// conditional write decides, and the loser is a conflict too.
		if errors.Is(err, interfaces.ErrDonorConflict) {
			return entities.Donor{}, ErrDonorAlreadyExists
		}
		return entities.Donor{}, err
	}
	return created, nil
}

func (u *DonorUseCase) GetByID(ctx context.Context, id int64) (entities.Donor, error) {
	if id <= 0 {
		return entities.Donor{}, ErrInvalidDonorID
	}

	d, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Donor{}, err
	}
	if d.ID == 0 {
		return entities.Donor{}, ErrDonorNotFound
	}
	return d, nil
}
