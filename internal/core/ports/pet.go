package ports

import (
	"context"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

// ListPetsFilter carries all recognized query parameters for pet listings.
// Absent parameters are zero values and never become filter keys.
type ListPetsFilter struct {
	Email         string // exact match on owner email
	Search        string // case-insensitive substring match on name
	Category      string // exact match
	OnlyUnadopted bool   // public browse restricts to adopted=false
	Page          int    // 1-based
	Limit         int    // 0 = no pagination
}

// UpdateResult reports the outcome of a store mutation.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// PetPage is one page of listings plus the totals needed by infinite scroll.
type PetPage struct {
	Pets    []domain.Pet
	Total   int64
	HasMore bool
}

// PetRepository defines persistence operations for pet listings.
type PetRepository interface {
	// List returns pets matching filter (sorted createdAt desc) and the total
	// count for the same filter without pagination.
	List(ctx context.Context, filter ListPetsFilter) ([]domain.Pet, int64, error)
	FindByPetID(ctx context.Context, petID string) (*domain.Pet, error)
	Insert(ctx context.Context, pet *domain.Pet) (string, error)
	UpdateByPetID(ctx context.Context, petID string, fields map[string]any) (*UpdateResult, error)
	SetAdopted(ctx context.Context, id string, adopted bool) (*UpdateResult, error)
	// Delete removes the pet by id. A non-empty ownerEmail additionally
	// requires the stored owner email to match. Returns deleted count.
	Delete(ctx context.Context, id string, ownerEmail string) (int64, error)
}

// PetService defines use-case operations for pet listings.
type PetService interface {
	List(ctx context.Context, filter ListPetsFilter) (*PetPage, error)
	ListAll(ctx context.Context, filter ListPetsFilter) ([]domain.Pet, error)
	Get(ctx context.Context, petID string) (*domain.Pet, error)
	Create(ctx context.Context, pet *domain.Pet) (string, error)
	Update(ctx context.Context, petID string, fields map[string]any) (*UpdateResult, error)
	SetAdopted(ctx context.Context, id string, adopted bool) (*UpdateResult, error)
	Adopt(ctx context.Context, id string) (*UpdateResult, error)
	// Delete removes a listing. Admins may delete any pet; everyone else only
	// their own. Zero matches surface as domain.ErrPetNotOwned.
	Delete(ctx context.Context, id string, requesterEmail string) error
}
