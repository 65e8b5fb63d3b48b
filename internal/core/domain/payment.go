package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationPayment records a completed payment against a donation campaign.
// Email is the payer; deletion is only allowed when the caller's email
// matches it.
type DonationPayment struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	DonationID   string             `json:"donId" bson:"donId"`
	DonationName string             `json:"donationName,omitempty" bson:"donationName,omitempty"`
	Amount       int64              `json:"amount" bson:"amount"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}
