package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

type stubPaymentService struct {
	secret     string
	lastFilter ports.ListPaymentsFilter
	recorded   *domain.DonationPayment
	err        error
}

func (s *stubPaymentService) CreateIntent(context.Context, int64) (string, error) {
	return s.secret, s.err
}

func (s *stubPaymentService) List(_ context.Context, filter ports.ListPaymentsFilter) ([]domain.DonationPayment, error) {
	s.lastFilter = filter
	return nil, s.err
}

func (s *stubPaymentService) Record(_ context.Context, p *domain.DonationPayment) (string, error) {
	s.recorded = p
	return "64f000000000000000000002", s.err
}

func (s *stubPaymentService) Delete(context.Context, string, string) error {
	return s.err
}

func TestCreateIntent_ReturnsClientSecret(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{secret: "pi_123_secret_abc"})

	c, rec := newTestContext(t, http.MethodPost, "/create-payment-intent", `{"amount":2500}`)
	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp createIntentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ClientSecret != "pi_123_secret_abc" {
		t.Fatalf("unexpected secret: %q", resp.ClientSecret)
	}
}

func TestPaymentList_FiltersPassedThrough(t *testing.T) {
	svc := &stubPaymentService{}
	h := NewPaymentHandler(svc)

	c, _ := newTestContext(t, http.MethodGet, "/donation-payments?email=alice@example.com&donId=64f000000000000000000009", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.lastFilter.Email != "alice@example.com" || svc.lastFilter.DonationID != "64f000000000000000000009" {
		t.Fatalf("filter not passed through: %+v", svc.lastFilter)
	}
}

func TestPaymentRecord_Created(t *testing.T) {
	svc := &stubPaymentService{}
	h := NewPaymentHandler(svc)

	body := `{"email":"alice@example.com","donId":"64f000000000000000000009","donationName":"Vet fund","amount":500}`
	c, rec := newTestContext(t, http.MethodPost, "/donation-payments", body)
	if err := h.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp recordPaymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Donation payment recorded successfully" || resp.InsertedID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if svc.recorded == nil || svc.recorded.Amount != 500 {
		t.Fatalf("payment not forwarded to service: %+v", svc.recorded)
	}
}

func TestPaymentRecord_RejectsNonPositiveAmount(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{})

	c, rec := newTestContext(t, http.MethodPost, "/donation-payments", `{"donId":"64f000000000000000000009","amount":0}`)
	if err := h.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPaymentDelete_NotOwned(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{err: domain.ErrPaymentNotOwned})

	c, rec := newTestContext(t, http.MethodDelete, "/donation-payments/64f000000000000000000002?email=mallory@example.com", "")
	c.SetParamNames("id")
	c.SetParamValues("64f000000000000000000002")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Donation not found or not authorized" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestPaymentDelete_Owned(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{})

	c, rec := newTestContext(t, http.MethodDelete, "/donation-payments/64f000000000000000000002?email=alice@example.com", "")
	c.SetParamNames("id")
	c.SetParamValues("64f000000000000000000002")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
