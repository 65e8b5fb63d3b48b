package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

type stubPetService struct {
	lastFilter ports.ListPetsFilter
	page       *ports.PetPage
	pet        *domain.Pet
	err        error
}

func (s *stubPetService) List(_ context.Context, filter ports.ListPetsFilter) (*ports.PetPage, error) {
	s.lastFilter = filter
	return s.page, s.err
}

func (s *stubPetService) ListAll(_ context.Context, filter ports.ListPetsFilter) ([]domain.Pet, error) {
	s.lastFilter = filter
	if s.page == nil {
		return nil, s.err
	}
	return s.page.Pets, s.err
}

func (s *stubPetService) Get(context.Context, string) (*domain.Pet, error) {
	return s.pet, s.err
}

func (s *stubPetService) Create(context.Context, *domain.Pet) (string, error) {
	return "64f000000000000000000001", s.err
}

func (s *stubPetService) Update(context.Context, string, map[string]any) (*ports.UpdateResult, error) {
	return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, s.err
}

func (s *stubPetService) SetAdopted(context.Context, string, bool) (*ports.UpdateResult, error) {
	return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, s.err
}

func (s *stubPetService) Adopt(context.Context, string) (*ports.UpdateResult, error) {
	return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, s.err
}

func (s *stubPetService) Delete(context.Context, string, string) error {
	return s.err
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPetList_QueryParamsPassedThrough(t *testing.T) {
	svc := &stubPetService{page: &ports.PetPage{Pets: []domain.Pet{}, Total: 0}}
	h := NewPetHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/pets?search=bella&category=dog&page=3&limit=12", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastFilter.Search != "bella" || svc.lastFilter.Category != "dog" {
		t.Fatalf("filter not passed through: %+v", svc.lastFilter)
	}
	if svc.lastFilter.Page != 3 || svc.lastFilter.Limit != 12 {
		t.Fatalf("pagination not passed through: %+v", svc.lastFilter)
	}
}

func TestPetList_DefaultsAppliedForBadParams(t *testing.T) {
	svc := &stubPetService{page: &ports.PetPage{}}
	h := NewPetHandler(svc)

	c, _ := newTestContext(t, http.MethodGet, "/pets?page=abc&limit=-2", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if svc.lastFilter.Page != 1 || svc.lastFilter.Limit != 6 {
		t.Fatalf("expected defaults 1/6, got %d/%d", svc.lastFilter.Page, svc.lastFilter.Limit)
	}
}

func TestPetList_ResponseEnvelope(t *testing.T) {
	svc := &stubPetService{page: &ports.PetPage{
		Pets:    []domain.Pet{{PetID: "PET-00000001", Name: "Bella"}},
		Total:   7,
		HasMore: true,
	}}
	h := NewPetHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/pets", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp listPetsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 7 || !resp.HasMore || len(resp.Pets) != 1 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestPetGet_NotFound(t *testing.T) {
	svc := &stubPetService{err: domain.ErrPetNotFound}
	h := NewPetHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/pets/PET-MISSING", "")
	c.SetParamNames("id")
	c.SetParamValues("PET-MISSING")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Pet not found" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestPetDelete_NotOwned(t *testing.T) {
	svc := &stubPetService{err: domain.ErrPetNotOwned}
	h := NewPetHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/pets/64f000000000000000000001", "")
	c.SetParamNames("id")
	c.SetParamValues("64f000000000000000000001")

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
	if resp.Message != "Pet not found or not authorized" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestPetUpdate_EmptyPayloadRejected(t *testing.T) {
	svc := &stubPetService{err: domain.ErrEmptyUpdate}
	h := NewPetHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/pets/PET-00000001", `{"email":"attacker@example.com"}`)
	c.SetParamNames("petId")
	c.SetParamValues("PET-00000001")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
