package usecase

import (
	"context"
	"errors"
	"testing"

	"dcs_payments/internal/domain/entities"
	"dcs_payments/internal/usecase/interfaces"
	mock_interfaces "dcs_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDonorUseCase_Register(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDonorUseCase(nil)
		_, err := uc.Register(context.Background(), 0, "a@x.com", "A")
		if !errors.Is(err, ErrInvalidDonorID) {
			t.Fatalf("expected ErrInvalidDonorID, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewDonorUseCase(nil)
		_, err := uc.Register(context.Background(), 1, "   ", "A")
		if !errors.Is(err, ErrInvalidDonorEmail) {
			t.Fatalf("expected ErrInvalidDonorEmail, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonorRepository(ctrl)
		uc := NewDonorUseCase(repo)

		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Donor{ID: 1}, nil)

		_, err := uc.Register(context.Background(), 1, "a@x.com", "A")
		if !errors.Is(err, ErrDonorAlreadyExists) {
			t.Fatalf("expected ErrDonorAlreadyExists, got %v", err)
		}
	})

	t.Run("lost registration race maps to already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonorRepository(ctrl)
		uc := NewDonorUseCase(repo)

		// The pre-check sees nothing, but another registration wins the
		// conditional write in between.
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Donor{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Donor{}, interfaces.ErrDonorConflict)

		_, err := uc.Register(context.Background(), 1, "a@x.com", "A")
		if !errors.Is(err, ErrDonorAlreadyExists) {
			t.Fatalf("expected ErrDonorAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonorRepository(ctrl)
		uc := NewDonorUseCase(repo)

		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Donor{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Donor{})).DoAndReturn(
			func(_ context.Context, d entities.Donor) (entities.Donor, error) {
				if d.ID != 1 || d.Email != "a@x.com" || d.Name != "A" {
					t.Fatalf("unexpected donor: %+v", d)
				}
				if d.GatewayCustomerRef != "" {
					t.Fatalf("new donor must be unlinked")
				}
				if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return d, nil
			},
		)

		d, err := uc.Register(context.Background(), 1, " a@x.com ", " A ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Email != "a@x.com" {
			t.Fatalf("expected trimmed email, got %q", d.Email)
		}
	})
}

func TestDonorUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDonorUseCase(nil)
		_, err := uc.GetByID(context.Background(), -1)
		if !errors.Is(err, ErrInvalidDonorID) {
			t.Fatalf("expected ErrInvalidDonorID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonorRepository(ctrl)
		uc := NewDonorUseCase(repo)

		repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(entities.Donor{}, nil)

		_, err := uc.GetByID(context.Background(), 5)
		if !errors.Is(err, ErrDonorNotFound) {
			t.Fatalf("expected ErrDonorNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonorRepository(ctrl)
		uc := NewDonorUseCase(repo)

		repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(entities.Donor{ID: 5, Email: "a@x.com"}, nil)

		d, err := uc.GetByID(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != 5 {
			t.Fatalf("unexpected donor: %+v", d)
		}
	})
}
