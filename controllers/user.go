package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/momenul162/Food-pagol-server/middleware"
	"github.com/momenul162/Food-pagol-server/models"
	"github.com/momenul162/Food-pagol-server/utils"
)

// UserController handles user account requests
type UserController struct {
	Collection *mongo.Collection
}

// NewUserController creates a new UserController
func NewUserController(client *mongo.Client) *UserController {
	collection := client.Database(utils.DatabaseName).Collection("users")
	return &UserController{
		Collection: collection,
	}
}

// GetUsers retrieves all users (Admin only)
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := uc.Collection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading users")
		return
	}

	utils.RespondJSON(w, http.StatusOK, users)
}

// CreateUser registers a user unless the email is already taken. The
// check-then-insert pair is not atomic; two concurrent registrations for
// the same email can both pass the check.
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := uc.Collection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		utils.RespondError(w, http.StatusBadRequest, "User already exits")
		return
	}

	if user.Role == "" {
		user.Role = "user"
	}

	result, err := uc.Collection.InsertOne(ctx, user)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// CheckAdmin reports whether the given email belongs to an admin. Callers
// may only ask about their own email.
func (uc *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	params := mux.Vars(r)
	email := params["email"]
	if claims.Email != email {
		utils.RespondError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"admin": user.Role == "admin"})
}

// PromoteToAdmin sets a user's role to admin by ID. There is no demotion
// path.
func (uc *UserController) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"role": "admin",
		},
	}

	result, err := uc.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error updating user")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
