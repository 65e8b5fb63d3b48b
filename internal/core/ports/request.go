package ports

import (
	"context"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

// ListRequestsFilter carries query parameters for adoption requests. The
// email parameter filters by pet owner, not requester: the inbox view shows
// requests made against the caller's listings.
type ListRequestsFilter struct {
	OwnerEmail string
	Status     string
}

// RequestRepository defines persistence operations for adoption requests.
type RequestRepository interface {
	List(ctx context.Context, filter ListRequestsFilter) ([]domain.AdoptionRequest, error)
	ListByPetID(ctx context.Context, petID string) ([]domain.AdoptionRequest, error)
	Exists(ctx context.Context, petID, requesterEmail string) (bool, error)
	// Insert reports domain.ErrRequestExists when the unique index on
	// (petId, adoptedReqByEmail) rejects the document.
	Insert(ctx context.Context, r *domain.AdoptionRequest) (string, error)
	SetStatus(ctx context.Context, id string, status string) (*UpdateResult, error)
}

// RequestService defines use-case operations for adoption requests.
type RequestService interface {
	List(ctx context.Context, filter ListRequestsFilter) ([]domain.AdoptionRequest, error)
	ListByPet(ctx context.Context, petID string) ([]domain.AdoptionRequest, error)
	// Create pre-checks for an existing (petId, requester) pair and returns
	// domain.ErrRequestExists on a duplicate; the store index is authoritative
	// under concurrent submissions.
	Create(ctx context.Context, r *domain.AdoptionRequest) (string, error)
	SetStatus(ctx context.Context, id string, status string) (*UpdateResult, error)
}
