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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/momenul162/Food-pagol-server/models"
	"github.com/momenul162/Food-pagol-server/utils"
)

// MenuController handles menu catalog requests
type MenuController struct {
	Collection *mongo.Collection
}

// NewMenuController creates a new MenuController
func NewMenuController(client *mongo.Client) *MenuController {
	collection := client.Database(utils.DatabaseName).Collection("menu")
	return &MenuController{
		Collection: collection,
	}
}

// GetMenu retrieves all menu items
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := mc.Collection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching menu")
		return
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading menu")
		return
	}

	utils.RespondJSON(w, http.StatusOK, items)
}

// GetMenuItemByID retrieves a single menu item by ID
func (mc *MenuController) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item models.MenuItem
	err = mc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, item)
}

// CreateMenuItem handles adding a new menu item (Admin only)
func (mc *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := mc.Collection.InsertOne(ctx, item)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error creating menu item")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// UpsertMenuItem replaces a menu item by ID, inserting it when absent
// (Admin only). Only the catalog fields may be written.
func (mc *MenuController) UpsertMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var item models.MenuItem
	err = json.NewDecoder(r.Body).Decode(&item)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	update := bson.M{
		"$set": bson.M{
			"category": item.Category,
			"image":    item.Image,
			"name":     item.Name,
			"price":    item.Price,
			"recipe":   item.Recipe,
		},
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := mc.Collection.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error updating menu item")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// DeleteMenuItem handles deleting a menu item (Admin only)
func (mc *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := mc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error deleting menu item")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
