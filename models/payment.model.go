package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the audit record of a completed checkout. CartItems holds the
// ids of the cart documents consumed by the purchase; MenuItems is kept for
// the category reporting join.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	Price         float64              `bson:"price" json:"price"`
	Quantity      int                  `bson:"quantity" json:"quantity"`
	Status        string               `bson:"status" json:"status"`
	Date          time.Time            `bson:"date" json:"date"`
	CartItems     []string             `bson:"cartItems" json:"cartItems"`
	MenuItems     []primitive.ObjectID `bson:"menuItems" json:"menuItems"`
}
