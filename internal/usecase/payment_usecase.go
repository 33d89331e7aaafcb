package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"dcs_payments/internal/domain/entities"
	"dcs_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDonorID      = errors.New("invalid donor_id")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrDonorNotFound       = errors.New("donor not found")
	ErrWebhookVerification = errors.New("webhook verification failed")
)

// CreateIntentCommand is the application-level "create payment" request.
// Amount is in minor currency units; Description, when nil, means no
// metadata is attached to the gateway intent.

type CreateIntentCommand struct {
	DonorID     int64
	Amount      int64
	Currency    string
	Description *string
}

// IPaymentUseCase mediates between inbound webhook events / intent creation
// requests and the donor store, donation store and payment gateway.
//
// Requested behavior:
//   - Translate a verified webhook event into a donation status update.
//   - Translate a create-payment request into a gateway intent, lazily
//     provisioning the gateway customer for the donor.

type IPaymentUseCase interface {
	HandleWebhook(ctx context.Context, signature string, payload []byte) error
	CreateIntent(ctx context.Context, cmd CreateIntentCommand) (entities.PaymentIntent, error)
}

type PaymentUseCase struct {
	donorRepo    interfaces.IDonorRepository
	donationRepo interfaces.IDonationRepository
	gateway      interfaces.IPaymentGateway

	// Per-donor critical section around the lazy customer provisioning,
	// so two concurrent CreateIntent calls for the same unlinked donor
	// cannot both create a gateway customer from this process.
	mu         sync.Mutex
	donorLocks map[int64]*sync.Mutex
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(donorRepo interfaces.IDonorRepository, donationRepo interfaces.IDonationRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{
		donorRepo:    donorRepo,
		donationRepo: donationRepo,
		gateway:      gateway,
		donorLocks:   make(map[int64]*sync.Mutex),
	}
}

// HandleWebhook verifies a gateway webhook and mirrors the state change
// into the donation store. Unrecognized event types are acknowledged
// without any store call; the gateway evolves its event catalog and must
// not be failed for types this service does not consume.
func (u *PaymentUseCase) HandleWebhook(ctx context.Context, signature string, payload []byte) error {
	if u.gateway == nil {
		return errors.New("payment gateway not configured")
	}

	event, err := u.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		log.Printf("[payment][usecase] webhook verification failed err=%v", err)
		return errors.Join(ErrWebhookVerification, err)
	}
	log.Printf("[payment][usecase] webhook verified event_id=%s type=%s", event.ID, event.Type)

	var status entities.DonationStatus
	switch event.Type {
	case entities.EventPaymentIntentSucceeded:
		status = entities.DonationStatusComplete
	case entities.EventPaymentIntentCanceled:
		status = entities.DonationStatusCancelled
	default:
		// Ignored on purpose, but logged so unconsumed types stay visible.
		log.Printf("[payment][usecase] webhook ignored event_id=%s type=%s", event.ID, event.Type)
		return nil
	}

	updated, err := u.donationRepo.UpdateStatusByPaymentIntentRef(ctx, event.PaymentIntentRef, status)
	if err != nil {
		log.Printf("[payment][usecase] webhook donation update failed pi_ref=%s status=%s err=%v", event.PaymentIntentRef, status, err)
		return err
	}
	if updated.PaymentIntentRef == "" {
		log.Printf("[payment][usecase] webhook donation not found pi_ref=%s", event.PaymentIntentRef)
		return ErrDonationNotFound
	}
	log.Printf("[payment][usecase] webhook processed pi_ref=%s status=%s", event.PaymentIntentRef, status)
	return nil
}

// CreateIntent resolves (or lazily creates) the donor's gateway customer,
// creates a payment intent and records a pending donation keyed by the
// intent reference so the webhook has a row to reconcile.
func (u *PaymentUseCase) CreateIntent(ctx context.Context, cmd CreateIntentCommand) (entities.PaymentIntent, error) {
	log.Printf("[payment][usecase] create-intent start donor_id=%d amount=%d currency=%q", cmd.DonorID, cmd.Amount, cmd.Currency)
	if cmd.DonorID <= 0 {
		return entities.PaymentIntent{}, ErrInvalidDonorID
	}
	if cmd.Amount <= 0 {
		return entities.PaymentIntent{}, ErrInvalidAmount
	}
	currency := strings.ToLower(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		return entities.PaymentIntent{}, ErrInvalidCurrency
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, errors.New("payment gateway not configured")
	}

	donor, err := u.resolveOrCreateCustomer(ctx, cmd.DonorID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	data := entities.PaymentIntentData{
		CustomerRef: donor.GatewayCustomerRef,
		Amount:      cmd.Amount,
		Currency:    currency,
		Description: cmd.Description,
	}

	intent, err := u.gateway.CreatePaymentIntent(ctx, data)
	if err != nil {
		log.Printf("[payment][usecase] gateway intent creation failed donor_id=%d err=%v", cmd.DonorID, err)
		return entities.PaymentIntent{}, err
	}
	log.Printf("[payment][usecase] intent created donor_id=%d pi_ref=%s", cmd.DonorID, intent.ID)

	now := time.Now().UTC()
	donation := entities.Donation{
		ID:               uuid.NewString(),
		PaymentIntentRef: intent.ID,
		DonorID:          cmd.DonorID,
		Amount:           cmd.Amount,
		Currency:         currency,
		Status:           entities.DonationStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if cmd.Description != nil {
		donation.Description = *cmd.Description
	}
	if _, err := u.donationRepo.Create(ctx, donation); err != nil {
		// The gateway intent exists at this point; surface the ref so the
		// failure is reconcilable.
		log.Printf("[payment][usecase] donation record creation failed donor_id=%d pi_ref=%s err=%v", cmd.DonorID, intent.ID, err)
		return entities.PaymentIntent{}, fmt.Errorf("recording donation for intent %s: %w", intent.ID, err)
	}
	log.Printf("[payment][usecase] create-intent success donor_id=%d pi_ref=%s", cmd.DonorID, intent.ID)

	return intent, nil
}

// resolveOrCreateCustomer returns the donor with a gateway customer
// reference set, creating the gateway customer on first use.
//
// Linked donors take the fast path with no locking and no gateway call.
// Unlinked donors are provisioned under a per-donor mutex, and the
// reference is persisted with a conditional update: if another instance
// linked the donor first, the stored reference wins and is returned.
func (u *PaymentUseCase) resolveOrCreateCustomer(ctx context.Context, donorID int64) (entities.Donor, error) {
	donor, err := u.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		return entities.Donor{}, err
	}
	if donor.ID == 0 {
		return entities.Donor{}, ErrDonorNotFound
	}
	if donor.GatewayCustomerRef != "" {
		return donor, nil
	}

	lock := u.lockForDonor(donorID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock: another request may have linked the donor
	// while this one waited.
	donor, err = u.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		return entities.Donor{}, err
	}
	if donor.ID == 0 {
		return entities.Donor{}, ErrDonorNotFound
	}
	if donor.GatewayCustomerRef != "" {
		return donor, nil
	}

	ref, err := u.gateway.CreateCustomer(ctx, donor.Email, donor.ID)
	if err != nil {
		log.Printf("[payment][usecase] gateway customer creation failed donor_id=%d err=%v", donorID, err)
		return entities.Donor{}, err
	}
	log.Printf("[payment][usecase] gateway customer created donor_id=%d customer_ref=%s", donorID, ref)

	updated, err := u.donorRepo.UpdateGatewayCustomerRef(ctx, donorID, ref)
	if err != nil {
		return entities.Donor{}, err
	}
	if updated.GatewayCustomerRef != ref {
		log.Printf("[payment][usecase] donor already linked elsewhere donor_id=%d kept_ref=%s discarded_ref=%s", donorID, updated.GatewayCustomerRef, ref)
	}
	return updated, nil
}

func (u *PaymentUseCase) lockForDonor(donorID int64) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	lock, ok := u.donorLocks[donorID]
	if !ok {
		lock = &sync.Mutex{}
		u.donorLocks[donorID] = lock
	}
	return lock
}
