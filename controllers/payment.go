package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/momenul162/Food-pagol-server/middleware"
	"github.com/momenul162/Food-pagol-server/models"
	"github.com/momenul162/Food-pagol-server/utils"
)

// PaymentController handles payment intents and the payment history
type PaymentController struct {
	PaymentCollection *mongo.Collection
	CartCollection    *mongo.Collection
	EmailService      *utils.EmailService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(client *mongo.Client, emailService *utils.EmailService) *PaymentController {
	paymentCollection := client.Database(utils.DatabaseName).Collection("payments")
	cartCollection := client.Database(utils.DatabaseName).Collection("carts")
	return &PaymentController{
		PaymentCollection: paymentCollection,
		CartCollection:    cartCollection,
		EmailService:      emailService,
	}
}

// amountInCents converts a dollar price to Stripe's minor currency units.
func amountInCents(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreatePaymentIntent requests a card payment intent from Stripe and
// returns its client secret
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents(body.Price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error creating payment intent")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"clientSecret": intent.ClientSecret})
}

// GetPayments retrieves the payment history for the query email. Callers
// may only list their own payments.
func (pc *PaymentController) GetPayments(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}
	if claims.Email != email {
		utils.RespondError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := pc.PaymentCollection.Find(ctx, bson.M{"email": email})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching payments")
		return
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading payments")
		return
	}

	utils.RespondJSON(w, http.StatusOK, payments)
}

// GetPaymentByID retrieves a single payment by ID
func (pc *PaymentController) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var payment models.Payment
	err = pc.PaymentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Payment not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, payment)
}

// RecordPayment inserts the payment audit record and then clears the cart
// items it consumed. The two steps are separate operations; a crash in
// between leaves stale cart items behind.
func (pc *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	err := json.NewDecoder(r.Body).Decode(&payment)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	cartIDs := make([]primitive.ObjectID, 0, len(payment.CartItems))
	for _, raw := range payment.CartItems {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid cart item ID")
			return
		}
		cartIDs = append(cartIDs, id)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	insertedResult, err := pc.PaymentCollection.InsertOne(ctx, payment)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error recording payment")
		return
	}

	deletedResult, err := pc.CartCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error clearing cart")
		return
	}

	if pc.EmailService != nil {
		if err := pc.EmailService.SendPaymentConfirmationEmail(payment.Email, payment); err != nil {
			log.Printf("failed to send payment confirmation to %s: %v", payment.Email, err)
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"insertedResult": insertedResult,
		"deletedCount":   deletedResult.DeletedCount,
	})
}
