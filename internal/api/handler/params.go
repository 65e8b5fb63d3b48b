package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/api/middleware"
)

const (
	defaultPage  = 1
	defaultLimit = 6
)

// pageParams reads page/limit from the query string. Missing, non-numeric,
// or non-positive values fall back to the defaults instead of failing.
func pageParams(c echo.Context) (page, limit int) {
	return intQuery(c, "page", defaultPage), intQuery(c, "limit", defaultLimit)
}

func intQuery(c echo.Context, name string, def int) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// claimedEmail returns the email injected by the auth middleware, or "" on
// unauthenticated routes.
func claimedEmail(c echo.Context) string {
	email, _ := c.Get(middleware.ContextEmail).(string)
	return email
}
