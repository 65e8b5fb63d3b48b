package ports

import (
	"context"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

// ListPaymentsFilter carries query parameters for donation payments.
type ListPaymentsFilter struct {
	Email      string // payer email
	DonationID string // campaign reference (donId)
}

// PaymentRepository defines persistence operations for donation payments.
type PaymentRepository interface {
	List(ctx context.Context, filter ListPaymentsFilter) ([]domain.DonationPayment, error)
	Insert(ctx context.Context, p *domain.DonationPayment) (string, error)
	// DeleteOwned removes the payment only when the stored payer email equals
	// email. Returns deleted count.
	DeleteOwned(ctx context.Context, id string, email string) (int64, error)
}

// PaymentService defines use-case operations for donation payments and the
// payment-intent bridge.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
	List(ctx context.Context, filter ListPaymentsFilter) ([]domain.DonationPayment, error)
	Record(ctx context.Context, p *domain.DonationPayment) (string, error)
	// Delete enforces the ownership invariant; zero matches surface as
	// domain.ErrPaymentNotOwned.
	Delete(ctx context.Context, id string, email string) error
}
