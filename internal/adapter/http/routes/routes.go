package routes

import (
	"log"
	"os"

	_ "dcs_payments/docs" // This will be auto-generated
	"dcs_payments/internal/adapter/http/handlers"
	repository2 "dcs_payments/internal/adapter/persistence/repository"
	"dcs_payments/internal/infrastructure/database"
	"dcs_payments/internal/infrastructure/payments"
	"dcs_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	donorRepo := repository2.NewDonorDynamoRepository(ddb)
	donationRepo := repository2.NewDonationDynamoRepository(ddb)

	gateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Fatalf("Stripe gateway not configured: %v", err)
	}

	paymentUseCase := usecase.NewPaymentUseCase(donorRepo, donationRepo, gateway)
	donorUseCase := usecase.NewDonorUseCase(donorRepo)
	donationUseCase := usecase.NewDonationUseCase(donationRepo)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(paymentUseCase)
	donorHandler := handlers.NewDonorHandler(donorUseCase, donationUseCase)
	donationHandler := handlers.NewDonationHandler(donationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler, donorHandler, donationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
