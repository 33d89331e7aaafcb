package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dcs_payments/internal/adapter/http/handlers/mocks"
	"dcs_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleStripeWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *WebhookHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/webhooks/stripe", h.HandleStripeWebhook)
		return r
	}

	t.Run("passes raw body and signature header through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		body := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)
		uc.EXPECT().HandleWebhook(gomock.Any(), "t=1,v1=abc", body).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBuffer(body))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("verification failure is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.Join(usecase.ErrWebhookVerification, errors.New("bad signature")))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing donation maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ErrDonationNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("processing failure maps to 500 so the gateway retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
