package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/api/metrics"
	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

// RequestHandler handles HTTP requests for adoption requests.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type createRequestRequest struct {
	PetID             string `json:"petId" validate:"required"`
	PetName           string `json:"petName"`
	PetImage          string `json:"petImage"`
	AdoptedReqByEmail string `json:"adoptedReqByEmail"`
	RequesterName     string `json:"requesterName"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	PetOwnerEmail     string `json:"petOwnerEmail"`
}

type createRequestResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}

type setRequestStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /adoption-requests: the owner's inbox, filtered by pet
// owner email and request status.
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.service.List(c.Request().Context(), ports.ListRequestsFilter{
		OwnerEmail: c.QueryParam("email"),
		Status:     c.QueryParam("status"),
	})
	if err != nil {
		return fail(c, "Failed to load adoption requests", err)
	}
	return c.JSON(http.StatusOK, requests)
}

// ListByPet handles GET /adoption-requests/:id, listing all requests made
// against one pet.
func (h *RequestHandler) ListByPet(c echo.Context) error {
	requests, err := h.service.ListByPet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, "Failed to load adoption requests", err)
	}
	return c.JSON(http.StatusOK, requests)
}

// Create handles POST /adoption-requests. A second request for the same
// (petId, requester) pair is a 409.
//
// @Summary      Submit an adoption request
// @Tags         adoption-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  createRequestResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /adoption-requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if req.AdoptedReqByEmail == "" {
		req.AdoptedReqByEmail = claimedEmail(c)
	}

	id, err := h.service.Create(c.Request().Context(), &domain.AdoptionRequest{
		PetID:             req.PetID,
		PetName:           req.PetName,
		PetImage:          req.PetImage,
		AdoptedReqByEmail: req.AdoptedReqByEmail,
		RequesterName:     req.RequesterName,
		Phone:             req.Phone,
		Address:           req.Address,
		PetOwnerEmail:     req.PetOwnerEmail,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRequestExists) {
			metrics.AdoptionRequestsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, errorResponse{
				Message: "You've already submitted an adoption request for this pet.",
			})
		}
		return fail(c, "Failed to record request", err)
	}

	metrics.AdoptionRequestsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, createRequestResponse{
		Message:    "Request recorded successfully",
		InsertedID: id,
	})
}

// SetStatus handles PATCH /adoption-requests/:id.
func (h *RequestHandler) SetStatus(c echo.Context) error {
	var req setRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if req.Status == "" {
		return badRequest(c, "status is required")
	}

	res, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return badRequest(c, "Invalid id")
		}
		return fail(c, "Failed to update request", err)
	}
	return c.JSON(http.StatusOK, res)
}
