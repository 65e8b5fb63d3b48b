package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders echo's own errors (middleware rejections, bind failures, 404s
//     from the router) in the {"message": ...} envelope.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Echoes the underlying error on 500s, after logging it.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Domain errors that escaped handler-level mapping.
	switch {
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, errorResponse{Message: "Pet not found"}
	case errors.Is(err, domain.ErrDonationNotFound):
		return http.StatusNotFound, errorResponse{Message: "Donation not found"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Message: "User not found"}
	case errors.Is(err, domain.ErrPetNotOwned):
		return http.StatusNotFound, errorResponse{Message: "Pet not found or not authorized"}
	case errors.Is(err, domain.ErrPaymentNotOwned):
		return http.StatusNotFound, errorResponse{Message: "Donation not found or not authorized"}
	case errors.Is(err, domain.ErrRequestExists):
		return http.StatusConflict, errorResponse{Message: "You've already submitted an adoption request for this pet."}
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, errorResponse{Message: "Invalid id"}
	case errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest, errorResponse{Message: "No updatable fields in payload"}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "Internal server error", Error: err.Error()}
}
