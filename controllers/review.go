package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/momenul162/Food-pagol-server/middleware"
	"github.com/momenul162/Food-pagol-server/models"
	"github.com/momenul162/Food-pagol-server/utils"
)

// ReviewController handles review requests
type ReviewController struct {
	Collection *mongo.Collection
}

// NewReviewController creates a new ReviewController
func NewReviewController(client *mongo.Client) *ReviewController {
	collection := client.Database(utils.DatabaseName).Collection("reviews")
	return &ReviewController{
		Collection: collection,
	}
}

// GetReviews retrieves all reviews
func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := rc.Collection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching reviews")
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading reviews")
		return
	}

	utils.RespondJSON(w, http.StatusOK, reviews)
}

// CreateReview records a review for a payment. One review per payment;
// the existence check is not atomic with the insert.
func (rc *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
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

	var review models.Review
	err := json.NewDecoder(r.Body).Decode(&review)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Review
	err = rc.Collection.FindOne(ctx, bson.M{"paymentId": review.PaymentID}).Decode(&existing)
	if err == nil {
		utils.RespondError(w, http.StatusBadRequest, "Already done!")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	result, err := rc.Collection.InsertOne(ctx, review)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error creating review")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
