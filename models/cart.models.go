package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a menu item placed in a user's cart. The menu fields are a
// denormalized copy taken at add-to-cart time, not a live reference.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Category   string             `bson:"category" json:"category"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price"`
}
