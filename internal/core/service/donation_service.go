package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

type DonationService struct {
	repo   ports.DonationRepository
	logger zerolog.Logger
}

func NewDonationService(repo ports.DonationRepository, logger zerolog.Logger) *DonationService {
	return &DonationService{repo: repo, logger: logger}
}

// ListInfinite serves the infinite-scroll feed: paginated, newest first.
func (s *DonationService) ListInfinite(ctx context.Context, page, limit int) (*ports.DonationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	donations, total, err := s.repo.List(ctx, ports.ListDonationsFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	skip := (page - 1) * limit
	return &ports.DonationPage{
		Donations: donations,
		Total:     total,
		HasMore:   int64(skip+len(donations)) < total,
	}, nil
}

func (s *DonationService) List(ctx context.Context, email string) ([]domain.Donation, error) {
	donations, _, err := s.repo.List(ctx, ports.ListDonationsFilter{Email: email})
	return donations, err
}

func (s *DonationService) Get(ctx context.Context, id string) (*domain.Donation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DonationService) Create(ctx context.Context, d *domain.Donation) (string, error) {
	d.CreatedAt = time.Now().UTC()
	if d.DonationStatus == "" {
		d.DonationStatus = domain.DonationActive
	}

	id, err := s.repo.Insert(ctx, d)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create donation campaign")
		return "", err
	}

	s.logger.Info().Str("id", id).Str("email", d.Email).Msg("donation campaign created")
	return id, nil
}

func (s *DonationService) Update(ctx context.Context, id string, fields map[string]any) (*ports.UpdateResult, error) {
	fields = domain.FilterUpdate(fields, domain.DonationUpdatableFields)
	if len(fields) == 0 {
		return nil, domain.ErrEmptyUpdate
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *DonationService) SetStatus(ctx context.Context, id string, status string) (*ports.UpdateResult, error) {
	return s.repo.SetStatus(ctx, id, status)
}

func (s *DonationService) Delete(ctx context.Context, id string) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err == nil && n > 0 {
		s.logger.Info().Str("id", id).Msg("donation campaign deleted")
	}
	return n, err
}
