package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

func TestBuildPetFilter_Empty(t *testing.T) {
	q := buildPetFilter(ports.ListPetsFilter{})
	if len(q) != 0 {
		t.Fatalf("expected empty filter, got %v", q)
	}
}

func TestBuildPetFilter_PublicBrowse(t *testing.T) {
	q := buildPetFilter(ports.ListPetsFilter{
		OnlyUnadopted: true,
		Category:      "cat",
		Search:        "fu",
	})

	want := bson.M{
		"adopted":  false,
		"category": "cat",
		"name":     bson.M{"$regex": "fu", "$options": "i"},
	}
	if !reflect.DeepEqual(q, want) {
		t.Fatalf("filter mismatch:\n got %v\nwant %v", q, want)
	}
}

func TestBuildPetFilter_AbsentParamsOmitted(t *testing.T) {
	q := buildPetFilter(ports.ListPetsFilter{Email: "owner@example.com"})

	if _, ok := q["adopted"]; ok {
		t.Fatalf("adopted key must not appear without OnlyUnadopted")
	}
	if _, ok := q["name"]; ok {
		t.Fatalf("name key must not appear without search")
	}
	if q["email"] != "owner@example.com" {
		t.Fatalf("email filter missing: %v", q)
	}
}

func TestBuildRequestFilter(t *testing.T) {
	q := buildRequestFilter(ports.ListRequestsFilter{OwnerEmail: "o@example.com", Status: "pending"})

	want := bson.M{"petOwnerEmail": "o@example.com", "reqStatus": "pending"}
	if !reflect.DeepEqual(q, want) {
		t.Fatalf("filter mismatch: got %v want %v", q, want)
	}

	if len(buildRequestFilter(ports.ListRequestsFilter{})) != 0 {
		t.Fatalf("empty filter expected for absent params")
	}
}

func TestBuildPaymentFilter(t *testing.T) {
	q := buildPaymentFilter(ports.ListPaymentsFilter{Email: "p@example.com", DonationID: "don-1"})

	want := bson.M{"email": "p@example.com", "donId": "don-1"}
	if !reflect.DeepEqual(q, want) {
		t.Fatalf("filter mismatch: got %v want %v", q, want)
	}
}
