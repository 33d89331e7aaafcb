package handlers

import (
	"errors"
	"net/http"

	response "dcs_payments/internal/adapter/http/dto/response"
	"dcs_payments/internal/usecase"
	"dcs_payments/pkg"

	"github.com/gin-gonic/gin"
)

// DonationHandler handles HTTP reads over donation records.

type DonationHandler struct {
	usecase usecase.IDonationUseCase
}

func NewDonationHandler(uc usecase.IDonationUseCase) *DonationHandler {
	return &DonationHandler{usecase: uc}
}

func (h *DonationHandler) GetDonationByPaymentIntentRef(c *gin.Context) {
	ref := c.Param("payment_intent_ref")

	donation, err := h.usecase.GetByPaymentIntentRef(c.Request.Context(), ref)
	if err != nil {
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDonation(donation))
}

func mapDonationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentIntentRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDonationNotFound):
		return pkg.NewDomainErrorSimple("DONATION_NOT_FOUND", "Donation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
