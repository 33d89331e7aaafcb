package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dcs_payments/internal/adapter/http/handlers/mocks"
	"dcs_payments/internal/domain/entities"
	"dcs_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDonationHandler_GetDonationByPaymentIntentRef(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *DonationHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/donations/:payment_intent_ref", h.GetDonationByPaymentIntentRef)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		r := newRouter(NewDonationHandler(uc))

		uc.EXPECT().GetByPaymentIntentRef(gomock.Any(), "pi_missing").Return(entities.Donation{}, usecase.ErrDonationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/donations/pi_missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		r := newRouter(NewDonationHandler(uc))

		uc.EXPECT().GetByPaymentIntentRef(gomock.Any(), "pi_123").Return(entities.Donation{
			ID: "d-1", PaymentIntentRef: "pi_123", DonorID: 1, Amount: 500, Currency: "eur", Status: entities.DonationStatusComplete,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/donations/pi_123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
