package routes

import (
	"dcs_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments  = "/payments"
	PathWebhooks  = "/webhooks"
	PathDonors    = "/donors"
	PathDonations = "/donations"
)

func addPaymentRoutes(
	rg *gin.RouterGroup,
	paymentHandler *handlers.PaymentHandler,
	webhookHandler *handlers.WebhookHandler,
	donorHandler *handlers.DonorHandler,
	donationHandler *handlers.DonationHandler,
) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/intents", paymentHandler.CreateIntent)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Raw body route: signature verification needs the exact bytes.
		webhooks.POST("/stripe", webhookHandler.HandleStripeWebhook)
	}

	donors := rg.Group(PathDonors)
	{
		donors.POST("", donorHandler.RegisterDonor)
		donors.GET("/:id", donorHandler.GetDonorByID)
		donors.GET("/:id/donations", donorHandler.ListDonorDonations)
	}

	donations := rg.Group(PathDonations)
	{
		donations.GET("/:payment_intent_ref", donationHandler.GetDonationByPaymentIntentRef)
	}
}
