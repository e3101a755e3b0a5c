// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v76"

	"github.com/momenul162/Food-pagol-server/controllers"
	"github.com/momenul162/Food-pagol-server/middleware"
	"github.com/momenul162/Food-pagol-server/routes"
	"github.com/momenul162/Food-pagol-server/utils"
)

func main() {
	cfg := utils.LoadConfig()

	// Set the JWT and Stripe secret keys
	utils.JwtKey = []byte(cfg.JwtSecret)
	stripe.Key = cfg.StripeKey

	// Initialize EmailService (nil when no Postmark token is configured)
	emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender)

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize controllers
	tokenController := controllers.NewTokenController()
	menuController := controllers.NewMenuController(client)
	userController := controllers.NewUserController(client)
	cartController := controllers.NewCartController(client)
	paymentController := controllers.NewPaymentController(client, emailService)
	reviewController := controllers.NewReviewController(client)
	statsController := controllers.NewStatsController(client)

	// The admin gate shares the users collection with the user controller
	adminOnly := middleware.AdminMiddleware(userController.Collection)

	// Set up the router
	router := mux.NewRouter()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router.Use(middleware.RequestLogger(logger))

	// Register routes
	routes.RegisterRoutes(router, adminOnly,
		tokenController, menuController, userController,
		cartController, paymentController, reviewController, statsController)

	// CORS for the browser frontend
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE"}),
	)

	// Start the server
	fmt.Printf("Food pagol server running on port: %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(router)))
}
