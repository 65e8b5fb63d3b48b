package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

type PaymentService struct {
	repo     ports.PaymentRepository
	provider ports.PaymentProvider
	logger   zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, provider ports.PaymentProvider, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, provider: provider, logger: logger}
}

// CreateIntent delegates to the payment processor. Amount bounds are not
// validated here; the processor is the authority on acceptable amounts.
func (s *PaymentService) CreateIntent(ctx context.Context, amount int64) (string, error) {
	secret, err := s.provider.CreateIntent(ctx, amount)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amount).Msg("payment intent creation failed")
		return "", err
	}
	return secret, nil
}

func (s *PaymentService) List(ctx context.Context, f ports.ListPaymentsFilter) ([]domain.DonationPayment, error) {
	return s.repo.List(ctx, f)
}

func (s *PaymentService) Record(ctx context.Context, p *domain.DonationPayment) (string, error) {
	p.CreatedAt = time.Now().UTC()

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to record donation payment")
		return "", err
	}

	s.logger.Info().Str("id", id).Str("donId", p.DonationID).Int64("amount", p.Amount).Msg("donation payment recorded")
	return id, nil
}

// Delete enforces the payer-ownership invariant through the store filter and
// reports zero matches as a single ambiguous failure.
func (s *PaymentService) Delete(ctx context.Context, id string, email string) error {
	n, err := s.repo.DeleteOwned(ctx, id, email)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPaymentNotOwned
	}

	s.logger.Info().Str("id", id).Str("email", email).Msg("donation payment refund requested")
	return nil
}
