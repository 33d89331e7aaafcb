package interfaces

import (
	"context"
	"errors"

	"dcs_payments/internal/domain/entities"
)

// ErrDonorConflict is returned by Create when a donor with the same id is
// already stored. Implementations must translate their store-native
// conditional-write failure into this sentinel.
var ErrDonorConflict = errors.New("donor record already stored")

// IDonorRepository abstracts DynamoDB persistence for Donor.
//
// Create must be conditional on the id not being stored yet, so two
// concurrent registrations cannot both succeed; the loser gets
// ErrDonorConflict.
//
// UpdateGatewayCustomerRef must be conditional: the reference is written
// only when no reference is stored yet. When another writer already linked
// the donor, the stored donor is returned unchanged so callers can adopt
// the winning reference. This is the store-level guard against duplicate
// gateway customers.

type IDonorRepository interface {
	Create(ctx context.Context, d entities.Donor) (entities.Donor, error)
	FindByID(ctx context.Context, id int64) (entities.Donor, error)
	UpdateGatewayCustomerRef(ctx context.Context, id int64, ref string) (entities.Donor, error)
}
