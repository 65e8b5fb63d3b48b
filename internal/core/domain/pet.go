package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pet is a single adoption listing. PetID is the public lookup key shown in
// listing URLs; ID is the store-generated primary key used by mutations.
type Pet struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PetID            string             `json:"petId" bson:"petId"`
	Name             string             `json:"name" bson:"name"`
	Age              string             `json:"age,omitempty" bson:"age,omitempty"`
	Category         string             `json:"category" bson:"category"`
	Location         string             `json:"location,omitempty" bson:"location,omitempty"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	ShortDescription string             `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	LongDescription  string             `json:"longDescription,omitempty" bson:"longDescription,omitempty"`
	Email            string             `json:"email" bson:"email"`
	Adopted          bool               `json:"adopted" bson:"adopted"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}
