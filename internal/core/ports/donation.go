package ports

import (
	"context"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

// ListDonationsFilter carries query parameters for donation campaigns.
type ListDonationsFilter struct {
	Email string
	Page  int
	Limit int // 0 = no pagination
}

// DonationPage is one page of campaigns for the infinite-scroll endpoint.
type DonationPage struct {
	Donations []domain.Donation
	Total     int64
	HasMore   bool
}

// DonationRepository defines persistence operations for donation campaigns.
type DonationRepository interface {
	List(ctx context.Context, filter ListDonationsFilter) ([]domain.Donation, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Donation, error)
	Insert(ctx context.Context, d *domain.Donation) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) (*UpdateResult, error)
	SetStatus(ctx context.Context, id string, status string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// DonationService defines use-case operations for donation campaigns.
type DonationService interface {
	ListInfinite(ctx context.Context, page, limit int) (*DonationPage, error)
	List(ctx context.Context, email string) ([]domain.Donation, error)
	Get(ctx context.Context, id string) (*domain.Donation, error)
	Create(ctx context.Context, d *domain.Donation) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) (*UpdateResult, error)
	SetStatus(ctx context.Context, id string, status string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
