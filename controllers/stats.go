package controllers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/momenul162/Food-pagol-server/models"
	"github.com/momenul162/Food-pagol-server/utils"
)

// StatsController computes the reporting aggregations
type StatsController struct {
	PaymentCollection *mongo.Collection
	UserCollection    *mongo.Collection
	MenuCollection    *mongo.Collection
}

// NewStatsController creates a new StatsController
func NewStatsController(client *mongo.Client) *StatsController {
	db := client.Database(utils.DatabaseName)
	return &StatsController{
		PaymentCollection: db.Collection("payments"),
		UserCollection:    db.Collection("users"),
		MenuCollection:    db.Collection("menu"),
	}
}

// GetOrderStateByCategory joins each payment's menu item references against
// the menu collection and groups the matches by category (Admin only).
// References with no matching menu document are dropped by the join.
func (sc *StatsController) GetOrderStateByCategory(w http.ResponseWriter, r *http.Request) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "menu",
			"localField":   "menuItems",
			"foreignField": "_id",
			"as":           "menuItemsData",
		}}},
		{{Key: "$unwind", Value: "$menuItemsData"}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$menuItemsData.category",
			"numberOfItems": bson.M{"$sum": 1},
			"price":         bson.M{"$sum": "$menuItemsData.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"category":      "$_id",
			"numberOfItems": 1,
			"totalPrice":    bson.M{"$round": bson.A{"$price", 2}},
		}}},
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := sc.PaymentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error aggregating orders")
		return
	}
	defer cursor.Close(ctx)

	results := []models.CategoryOrderState{}
	if err := cursor.All(ctx, &results); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading order state")
		return
	}

	utils.RespondJSON(w, http.StatusOK, results)
}

// GetAdminState returns storefront-wide counts and total revenue. Counts
// use the collections' estimated cardinality, so they can lag writes.
func (sc *StatsController) GetAdminState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	users, err := sc.UserCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error counting users")
		return
	}

	products, err := sc.MenuCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error counting menu items")
		return
	}

	orders, err := sc.PaymentCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error counting payments")
		return
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}

	cursor, err := sc.PaymentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error aggregating revenue")
		return
	}
	defer cursor.Close(ctx)

	var totals []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading revenue")
		return
	}

	revenue := 0.0
	if len(totals) > 0 {
		revenue = totals[0].Total
	}

	utils.RespondJSON(w, http.StatusOK, models.AdminState{
		Users:    users,
		Products: products,
		Orders:   orders,
		Revenue:  revenue,
	})
}
