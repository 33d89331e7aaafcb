package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dcs_payments/internal/adapter/http/handlers/mocks"
	"dcs_payments/internal/domain/entities"
	"dcs_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDonorHandler_RegisterDonor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *DonorHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/donors", h.RegisterDonor)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		donorUC := mocks.NewMockIDonorUseCase(ctrl)
		donationUC := mocks.NewMockIDonationUseCase(ctrl)
		r := newRouter(NewDonorHandler(donorUC, donationUC))

		req := httptest.NewRequest(http.MethodPost, "/v1/donors", bytes.NewBufferString(`{"id":1,"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		donorUC := mocks.NewMockIDonorUseCase(ctrl)
		donationUC := mocks.NewMockIDonationUseCase(ctrl)
		r := newRouter(NewDonorHandler(donorUC, donationUC))

		donorUC.EXPECT().Register(gomock.Any(), int64(1), "a@x.com", "A").Return(entities.Donor{}, usecase.ErrDonorAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/donors", bytes.NewBufferString(`{"id":1,"email":"a@x.com","name":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		donorUC := mocks.NewMockIDonorUseCase(ctrl)
		donationUC := mocks.NewMockIDonationUseCase(ctrl)
		r := newRouter(NewDonorHandler(donorUC, donationUC))

		now := time.Now().UTC()
		donorUC.EXPECT().Register(gomock.Any(), int64(1), "a@x.com", "A").
			Return(entities.Donor{ID: 1, Email: "a@x.com", Name: "A", CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/donors", bytes.NewBufferString(`{"id":1,"email":"a@x.com","name":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestDonorHandler_GetDonorByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *DonorHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/donors/:id", h.GetDonorByID)
		return r
	}

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		donorUC := mocks.NewMockIDonorUseCase(ctrl)
		donationUC := mocks.NewMockIDonationUseCase(ctrl)
		r := newRouter(NewDonorHandler(donorUC, donationUC))

		req := httptest.NewRequest(http.MethodGet, "/v1/donors/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		donorUC := mocks.NewMockIDonorUseCase(ctrl)
		donationUC := mocks.NewMockIDonationUseCase(ctrl)
		r := newRouter(NewDonorHandler(donorUC, donationUC))

		donorUC.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Donor{}, usecase.ErrDonorNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/donors/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDonorHandler_ListDonorDonations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	donorUC := mocks.NewMockIDonorUseCase(ctrl)
	donationUC := mocks.NewMockIDonationUseCase(ctrl)
	h := NewDonorHandler(donorUC, donationUC)

	r := gin.New()
	r.GET("/v1/donors/:id/donations", h.ListDonorDonations)

	donationUC.EXPECT().ListByDonorID(gomock.Any(), int64(1)).Return([]entities.Donation{
		{PaymentIntentRef: "pi_1", DonorID: 1, Status: entities.DonationStatusComplete},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/donors/1/donations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
