package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

const defaultPageLimit = 6

type PetService struct {
	repo   ports.PetRepository
	roles  ports.RoleLookup
	logger zerolog.Logger
}

func NewPetService(repo ports.PetRepository, roles ports.RoleLookup, logger zerolog.Logger) *PetService {
	return &PetService{repo: repo, roles: roles, logger: logger}
}

// List is the public browse view: implicitly restricted to unadopted pets and
// always paginated.
func (s *PetService) List(ctx context.Context, f ports.ListPetsFilter) (*ports.PetPage, error) {
	f.OnlyUnadopted = true
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}

	pets, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	skip := (f.Page - 1) * f.Limit
	return &ports.PetPage{
		Pets:    pets,
		Total:   total,
		HasMore: int64(skip+len(pets)) < total,
	}, nil
}

// ListAll is the authenticated dashboard view: no implicit adopted filter and
// no pagination; explicit filters still apply.
func (s *PetService) ListAll(ctx context.Context, f ports.ListPetsFilter) ([]domain.Pet, error) {
	f.OnlyUnadopted = false
	f.Page, f.Limit = 0, 0

	pets, _, err := s.repo.List(ctx, f)
	return pets, err
}

func (s *PetService) Get(ctx context.Context, petID string) (*domain.Pet, error) {
	return s.repo.FindByPetID(ctx, petID)
}

func (s *PetService) Create(ctx context.Context, pet *domain.Pet) (string, error) {
	pet.Adopted = false
	pet.CreatedAt = time.Now().UTC()
	if pet.PetID == "" {
		pet.PetID = generatePetID()
	}

	id, err := s.repo.Insert(ctx, pet)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create pet")
		return "", err
	}

	s.logger.Info().Str("petId", pet.PetID).Str("email", pet.Email).Msg("pet listed")
	return id, nil
}

// Update merges caller-supplied fields onto the listing after stripping
// everything outside the allowed set.
func (s *PetService) Update(ctx context.Context, petID string, fields map[string]any) (*ports.UpdateResult, error) {
	fields = domain.FilterUpdate(fields, domain.PetUpdatableFields)
	if len(fields) == 0 {
		return nil, domain.ErrEmptyUpdate
	}
	return s.repo.UpdateByPetID(ctx, petID, fields)
}

func (s *PetService) SetAdopted(ctx context.Context, id string, adopted bool) (*ports.UpdateResult, error) {
	return s.repo.SetAdopted(ctx, id, adopted)
}

func (s *PetService) Adopt(ctx context.Context, id string) (*ports.UpdateResult, error) {
	return s.repo.SetAdopted(ctx, id, true)
}

// Delete removes a listing. Admins delete by id alone; everyone else deletes
// through an ownership-scoped filter, so a non-owner cannot tell whether the
// pet existed.
func (s *PetService) Delete(ctx context.Context, id string, requesterEmail string) error {
	// A token without an email claim owns nothing; an empty email must never
	// reach the repository, where it would disable the ownership filter.
	if requesterEmail == "" {
		return domain.ErrPetNotOwned
	}

	role, err := s.roles.RoleByEmail(ctx, requesterEmail)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		role = domain.RoleUser
	}

	ownerEmail := requesterEmail
	if role == domain.RoleAdmin {
		ownerEmail = ""
	}

	n, err := s.repo.Delete(ctx, id, ownerEmail)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPetNotOwned
	}

	s.logger.Info().Str("id", id).Str("email", requesterEmail).Str("role", role).Msg("pet deleted")
	return nil
}

// generatePetID returns a public listing id in the format PET-XXXXXXXX.
func generatePetID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("PET-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("PET-%08X", b)
}
