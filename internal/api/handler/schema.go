package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse is the canonical error envelope: a human-readable message
// plus, for 500s, the raw upstream error.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// fail renders a 500 with a per-endpoint message and the underlying error
// echoed verbatim.
func fail(c echo.Context, message string, err error) error {
	return c.JSON(http.StatusInternalServerError, errorResponse{Message: message, Error: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Message: message})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Message: message})
}
