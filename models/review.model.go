package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is customer feedback tied to a completed payment. At most one
// review may exist per payment.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PaymentID string             `bson:"paymentId" json:"paymentId"`
	Email     string             `bson:"email" json:"email"`
	Review    string             `bson:"review" json:"review"`
}
