package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

type stubVerifier struct {
	claims *domain.Claims
	err    error
}

func (s *stubVerifier) Verify(context.Context, string) (*domain.Claims, error) {
	return s.claims, s.err
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(&stubVerifier{claims: &domain.Claims{Email: "alice@example.com"}})
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(ContextEmail) != "alice@example.com" {
			t.Fatalf("email not set in context")
		}
		if _, ok := c.Get(ContextClaims).(*domain.Claims); !ok {
			t.Fatalf("claims not set in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{claims: &domain.Claims{Email: "alice@example.com"}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "Unauthorized: No token provided" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	e := echo.New()
	for _, header := range []string{"Token abc", "bearer abc", "BEARER abc", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := Auth(&stubVerifier{claims: &domain.Claims{Email: "alice@example.com"}})
		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next for %q", header)
			return nil
		})

		err := handler(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{err: domain.ErrInvalidToken})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	if he.Message != "Forbidden: Invalid token" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}
