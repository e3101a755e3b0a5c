package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role" json:"role"` // "user" or "admin"
}
