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

// CartController handles cart requests
type CartController struct {
	Collection *mongo.Collection
}

// NewCartController creates a new CartController
func NewCartController(client *mongo.Client) *CartController {
	collection := client.Database(utils.DatabaseName).Collection("carts")
	return &CartController{
		Collection: collection,
	}
}

// GetCartItems retrieves the cart items belonging to the query email.
// Callers may only list their own cart.
func (cc *CartController) GetCartItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondJSON(w, http.StatusOK, []models.CartItem{})
		return
	}
	if claims.Email != email {
		utils.RespondError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := cc.Collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching cart")
		return
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading cart")
		return
	}

	utils.RespondJSON(w, http.StatusOK, items)
}

// AddCartItem adds an item to a cart
func (cc *CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := cc.Collection.InsertOne(ctx, item)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error adding to cart")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// DeleteCartItem removes a single cart item by ID
func (cc *CartController) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := cc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error deleting cart item")
		return
	}

	utils.RespondJSON(w, http.StatusNonAuthoritativeInfo, result)
}
