package handlers

import (
	"errors"
	"log"
	"net/http"

	"dcs_payments/internal/usecase"
	"dcs_payments/pkg"

	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

// WebhookHandler receives asynchronous gateway notifications.
//
// A non-2xx answer makes the gateway retry the delivery, so only
// verification failures and processing errors are rejected; event types
// this service does not consume are acknowledged with 200.

type WebhookHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewWebhookHandler(uc usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	signature := c.GetHeader(stripeSignatureHeader)
	if err := h.usecase.HandleWebhook(c.Request.Context(), signature, payload); err != nil {
		log.Printf("[webhook][handler] processing failed err=%v", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWebhookVerification):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDonationNotFound):
		return pkg.NewDomainErrorSimple("DONATION_NOT_FOUND", "Donation not found for payment intent", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
