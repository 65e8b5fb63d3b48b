package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

type stubRequestRepo struct {
	existing map[string]bool
	inserted []*domain.AdoptionRequest
	insertFn func(ctx context.Context, r *domain.AdoptionRequest) (string, error)
}

func (s *stubRequestRepo) List(context.Context, ports.ListRequestsFilter) ([]domain.AdoptionRequest, error) {
	return nil, nil
}
func (s *stubRequestRepo) ListByPetID(context.Context, string) ([]domain.AdoptionRequest, error) {
	return nil, nil
}
func (s *stubRequestRepo) Exists(_ context.Context, petID, email string) (bool, error) {
	return s.existing[petID+"|"+email], nil
}
func (s *stubRequestRepo) Insert(ctx context.Context, r *domain.AdoptionRequest) (string, error) {
	if s.insertFn != nil {
		return s.insertFn(ctx, r)
	}
	s.inserted = append(s.inserted, r)
	return "64f000000000000000000010", nil
}
func (s *stubRequestRepo) SetStatus(context.Context, string, string) (*ports.UpdateResult, error) {
	return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestRequestService_Create_FirstRequest(t *testing.T) {
	repo := &stubRequestRepo{existing: map[string]bool{}}
	svc := NewRequestService(repo, zerolog.Nop())

	id, err := svc.Create(context.Background(), &domain.AdoptionRequest{
		PetID:             "p1",
		AdoptedReqByEmail: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected inserted id")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.inserted))
	}
	if repo.inserted[0].ReqStatus != domain.RequestPending {
		t.Fatalf("expected default pending status, got %q", repo.inserted[0].ReqStatus)
	}
	if repo.inserted[0].CreatedAt.IsZero() {
		t.Fatalf("createdAt not set")
	}
}

func TestRequestService_Create_DuplicatePreCheck(t *testing.T) {
	repo := &stubRequestRepo{existing: map[string]bool{"p1|alice@example.com": true}}
	svc := NewRequestService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), &domain.AdoptionRequest{
		PetID:             "p1",
		AdoptedReqByEmail: "alice@example.com",
	})
	if !errors.Is(err, domain.ErrRequestExists) {
		t.Fatalf("expected ErrRequestExists, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("duplicate must not insert a second document")
	}
}

func TestRequestService_Create_IndexRaceSurfacesAsDuplicate(t *testing.T) {
	// Pre-check misses but the unique index rejects the insert: the caller
	// still sees the duplicate error, not a 500.
	repo := &stubRequestRepo{
		existing: map[string]bool{},
		insertFn: func(context.Context, *domain.AdoptionRequest) (string, error) {
			return "", domain.ErrRequestExists
		},
	}
	svc := NewRequestService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), &domain.AdoptionRequest{
		PetID:             "p1",
		AdoptedReqByEmail: "alice@example.com",
	})
	if !errors.Is(err, domain.ErrRequestExists) {
		t.Fatalf("expected ErrRequestExists, got %v", err)
	}
}
