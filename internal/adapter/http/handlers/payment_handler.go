package handlers

import (
	"errors"
	"log"
	"net/http"

	request "dcs_payments/internal/adapter/http/dto/request"
	response "dcs_payments/internal/adapter/http/dto/response"
	"dcs_payments/internal/usecase"
	"dcs_payments/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v72"
)

// PaymentHandler handles HTTP requests for payment intents.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateIntent creates a gateway payment intent for a donor and records the
// pending donation behind it.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var payload request.CreateIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-intent start donor_id=%d", payload.DonorID)

	intent, err := h.usecase.CreateIntent(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[payment][handler] create-intent failed donor_id=%d err=%v", payload.DonorID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-intent success donor_id=%d pi_ref=%s", payload.DonorID, intent.ID)

	c.JSON(http.StatusCreated, response.FromPaymentIntent(intent))
}

func mapPaymentError(err error) *pkg.AppError {
	var stripeErr *stripe.Error
	switch {
	case errors.Is(err, usecase.ErrInvalidDonorID), errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDonorNotFound):
		return pkg.NewDomainErrorSimple("DONOR_NOT_FOUND", "Donor not found", http.StatusNotFound)
	case errors.As(err, &stripeErr):
		if stripeErr.Type == stripe.ErrorTypeCard || stripeErr.Type == stripe.ErrorTypeInvalidRequest {
			return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the request", err, http.StatusBadRequest)
		}
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
