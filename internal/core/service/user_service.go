package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, email string) ([]domain.User, error) {
	return s.repo.List(ctx, email)
}

// Role resolves the stored role for email. A missing record or missing role
// field is "user", never an error: anonymous role discovery must not reveal
// whether an account exists.
func (s *UserService) Role(ctx context.Context, email string) (string, error) {
	role, err := s.repo.RoleByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.RoleUser, nil
		}
		return "", err
	}
	return role, nil
}

// Register inserts the account unless the email is taken. The pre-check keeps
// the path read-only for repeat calls; the unique email index makes the
// idempotency hold under concurrent registration too.
func (s *UserService) Register(ctx context.Context, u *domain.User) (*ports.RegisterResult, error) {
	if _, err := s.repo.FindByEmail(ctx, u.Email); err == nil {
		return &ports.RegisterResult{Inserted: false}, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	u.CreatedAt = time.Now().UTC()

	id, err := s.repo.Insert(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return &ports.RegisterResult{Inserted: false}, nil
		}
		return nil, err
	}

	s.logger.Info().Str("email", u.Email).Msg("user registered")
	return &ports.RegisterResult{InsertedID: id, Inserted: true}, nil
}

func (s *UserService) SetRole(ctx context.Context, id string, role string) (*ports.UpdateResult, error) {
	res, err := s.repo.SetRole(ctx, id, role)
	if err == nil {
		s.logger.Info().Str("id", id).Str("role", role).Msg("user role updated")
	}
	return res, err
}
