package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem represents a dish on the restaurant menu
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Category string             `bson:"category" json:"category"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image" json:"image"`
	Price    float64            `bson:"price" json:"price"`
	Recipe   string             `bson:"recipe" json:"recipe"`
}
