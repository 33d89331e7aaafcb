package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "dcs_payments/internal/adapter/http/dto/request"
	response "dcs_payments/internal/adapter/http/dto/response"
	"dcs_payments/internal/usecase"
	"dcs_payments/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDonorPayload = pkg.NewDomainErrorSimple("INVALID_DONOR_INPUT", "Invalid donor payload", http.StatusBadRequest)

// DonorHandler handles HTTP requests for donor mirror records.

type DonorHandler struct {
	donorUseCase    usecase.IDonorUseCase
	donationUseCase usecase.IDonationUseCase
}

func NewDonorHandler(donorUC usecase.IDonorUseCase, donationUC usecase.IDonationUseCase) *DonorHandler {
	return &DonorHandler{donorUseCase: donorUC, donationUseCase: donationUC}
}

func (h *DonorHandler) RegisterDonor(c *gin.Context) {
	var payload request.RegisterDonorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDonorPayload.HTTPStatus, errInvalidDonorPayload.ToHTTPError())
		return
	}

	donor, err := h.donorUseCase.Register(c.Request.Context(), payload.ID, payload.Email, payload.Name)
	if err != nil {
		log.Printf("[donor][handler] register failed donor_id=%d err=%v", payload.ID, err)
		appErr := mapDonorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDonor(donor))
}

func (h *DonorHandler) GetDonorByID(c *gin.Context) {
	id, ok := donorIDParam(c)
	if !ok {
		return
	}

	donor, err := h.donorUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapDonorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDonor(donor))
}

func (h *DonorHandler) ListDonorDonations(c *gin.Context) {
	id, ok := donorIDParam(c)
	if !ok {
		return
	}

	donations, err := h.donationUseCase.ListByDonorID(c.Request.Context(), id)
	if err != nil {
		appErr := mapDonorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDonations(donations))
}

func donorIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapDonorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDonorID), errors.Is(err, usecase.ErrInvalidDonorEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDonorAlreadyExists):
		return pkg.NewDomainErrorSimple("DONOR_ALREADY_EXISTS", "Donor already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrDonorNotFound):
		return pkg.NewDomainErrorSimple("DONOR_NOT_FOUND", "Donor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
