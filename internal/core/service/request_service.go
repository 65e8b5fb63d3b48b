package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

type RequestService struct {
	repo   ports.RequestRepository
	logger zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, logger zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, logger: logger}
}

func (s *RequestService) List(ctx context.Context, f ports.ListRequestsFilter) ([]domain.AdoptionRequest, error) {
	return s.repo.List(ctx, f)
}

func (s *RequestService) ListByPet(ctx context.Context, petID string) ([]domain.AdoptionRequest, error) {
	return s.repo.ListByPetID(ctx, petID)
}

// Create rejects a second request for the same (petId, requester) pair. The
// existence pre-check gives the common case a clean answer; the unique index
// behind Insert closes the race between concurrent identical submissions.
func (s *RequestService) Create(ctx context.Context, r *domain.AdoptionRequest) (string, error) {
	exists, err := s.repo.Exists(ctx, r.PetID, r.AdoptedReqByEmail)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrRequestExists
	}

	r.CreatedAt = time.Now().UTC()
	if r.ReqStatus == "" {
		r.ReqStatus = domain.RequestPending
	}

	id, err := s.repo.Insert(ctx, r)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("petId", r.PetID).Str("requester", r.AdoptedReqByEmail).Msg("adoption request recorded")
	return id, nil
}

func (s *RequestService) SetStatus(ctx context.Context, id string, status string) (*ports.UpdateResult, error) {
	return s.repo.SetStatus(ctx, id, status)
}
