package ports

import (
	"context"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

// TokenVerifier is the boundary to the external identity provider. A single
// verification attempt is made per request; failures map to 403.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Claims, error)
}

// RoleLookup resolves the stored role for an email. The admin gate performs
// this point read on every protected call so role changes apply immediately.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// PaymentProvider is the boundary to the external payment processor.
type PaymentProvider interface {
	// CreateIntent creates a payment intent for amount (currency minor units)
	// and returns its client secret. No idempotency key is attached; repeated
	// calls create distinct intents.
	CreateIntent(ctx context.Context, amount int64) (string, error)
}
