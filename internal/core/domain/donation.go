package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation status values.
const (
	DonationActive = "active"
	DonationClosed = "closed"
)

// Donation is a fundraising campaign owned by the user identified by Email.
type Donation struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	MaxDonation      int64              `json:"maxDonation" bson:"maxDonation"`
	LastDate         string             `json:"lastDate,omitempty" bson:"lastDate,omitempty"`
	ShortDescription string             `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	LongDescription  string             `json:"longDescription,omitempty" bson:"longDescription,omitempty"`
	Email            string             `json:"email" bson:"email"`
	DonationStatus   string             `json:"donationStatus" bson:"donationStatus"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}
