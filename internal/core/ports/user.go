package ports

import (
	"context"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

// RegisterResult reports the outcome of an idempotent registration.
type RegisterResult struct {
	InsertedID string `json:"insertedId,omitempty"`
	Inserted   bool   `json:"inserted"`
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	List(ctx context.Context, email string) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert reports domain.ErrUserExists when the unique email index rejects
	// the document.
	Insert(ctx context.Context, u *domain.User) (string, error)
	SetRole(ctx context.Context, id string, role string) (*UpdateResult, error)
	RoleLookup
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	List(ctx context.Context, email string) ([]domain.User, error)
	// Role returns the stored role for email, defaulting to "user" when the
	// record or the role field is absent.
	Role(ctx context.Context, email string) (string, error)
	// Register inserts the account unless the email is already taken, in
	// which case it reports Inserted=false without mutating anything.
	Register(ctx context.Context, u *domain.User) (*RegisterResult, error)
	SetRole(ctx context.Context, id string, role string) (*UpdateResult, error)
}
