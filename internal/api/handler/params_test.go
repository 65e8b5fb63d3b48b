package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pets?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 6},
		{"page=3&limit=10", 3, 10},
		{"page=abc&limit=xyz", 1, 6},
		{"page=0&limit=-5", 1, 6},
		{"limit=12", 1, 12},
	}

	for _, tc := range cases {
		page, limit := pageParams(queryContext(t, tc.query))
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("pageParams(%q) = (%d, %d), want (%d, %d)", tc.query, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
