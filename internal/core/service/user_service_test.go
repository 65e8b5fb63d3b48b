package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

type stubUserRepo struct {
	byEmail  map[string]*domain.User
	inserted []*domain.User
}

func (s *stubUserRepo) List(context.Context, string) ([]domain.User, error) { return nil, nil }

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) Insert(_ context.Context, u *domain.User) (string, error) {
	if _, ok := s.byEmail[u.Email]; ok {
		return "", domain.ErrUserExists
	}
	s.byEmail[u.Email] = u
	s.inserted = append(s.inserted, u)
	return "64f000000000000000000020", nil
}

func (s *stubUserRepo) SetRole(context.Context, string, string) (*ports.UpdateResult, error) {
	return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubUserRepo) RoleByEmail(ctx context.Context, email string) (string, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.Role == "" {
		return domain.RoleUser, nil
	}
	return u.Role, nil
}

func TestUserService_Register_Idempotent(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]*domain.User{}}
	svc := NewUserService(repo, zerolog.Nop())

	first, err := svc.Register(context.Background(), &domain.User{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if !first.Inserted || first.InsertedID == "" {
		t.Fatalf("first call must insert, got %+v", first)
	}

	second, err := svc.Register(context.Background(), &domain.User{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if second.Inserted {
		t.Fatalf("second call must be a no-op")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one document, got %d", len(repo.inserted))
	}
}

func TestUserService_Register_DefaultsRole(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]*domain.User{}}
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), &domain.User{Email: "b@example.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if repo.inserted[0].Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %q", repo.inserted[0].Role)
	}
	if repo.inserted[0].CreatedAt.IsZero() {
		t.Fatalf("createdAt not set")
	}
}

func TestUserService_Role_DefaultsWhenAbsent(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]*domain.User{
		"admin@example.com":  {Email: "admin@example.com", Role: domain.RoleAdmin},
		"norole@example.com": {Email: "norole@example.com"},
	}}
	svc := NewUserService(repo, zerolog.Nop())

	cases := []struct {
		email string
		want  string
	}{
		{"admin@example.com", domain.RoleAdmin},
		{"norole@example.com", domain.RoleUser},
		{"missing@example.com", domain.RoleUser},
	}
	for _, tc := range cases {
		role, err := svc.Role(context.Background(), tc.email)
		if err != nil {
			t.Fatalf("role(%s): %v", tc.email, err)
		}
		if role != tc.want {
			t.Fatalf("role(%s) = %q, want %q", tc.email, role, tc.want)
		}
	}
}
