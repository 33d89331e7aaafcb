package main

import (
	_ "dcs_payments/docs"
	"dcs_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Donation Payments API
// @version         1.0
// @description     Donation payment service (Stripe intents + webhooks) backed by DynamoDB.

// @contact.name   API Support
// @contact.email  support@dcs.example.org

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
