package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Adoption request status values.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// AdoptionRequest is a user's request to adopt a listed pet. At most one
// request may exist per (PetID, AdoptedReqByEmail) pair; the requests
// collection carries a unique index backing that invariant.
type AdoptionRequest struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PetID             string             `json:"petId" bson:"petId"`
	PetName           string             `json:"petName,omitempty" bson:"petName,omitempty"`
	PetImage          string             `json:"petImage,omitempty" bson:"petImage,omitempty"`
	AdoptedReqByEmail string             `json:"adoptedReqByEmail" bson:"adoptedReqByEmail"`
	RequesterName     string             `json:"requesterName,omitempty" bson:"requesterName,omitempty"`
	Phone             string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address           string             `json:"address,omitempty" bson:"address,omitempty"`
	PetOwnerEmail     string             `json:"petOwnerEmail" bson:"petOwnerEmail"`
	ReqStatus         string             `json:"reqStatus" bson:"reqStatus"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
}
