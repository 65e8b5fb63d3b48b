package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

// DonationHandler handles HTTP requests for donation campaigns.
type DonationHandler struct {
	service ports.DonationService
}

func NewDonationHandler(service ports.DonationService) *DonationHandler {
	return &DonationHandler{service: service}
}

type createDonationRequest struct {
	Name             string `json:"name" validate:"required"`
	Image            string `json:"image"`
	MaxDonation      int64  `json:"maxDonation" validate:"required,gt=0"`
	LastDate         string `json:"lastDate"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	Email            string `json:"email"`
}

type listDonationsResponse struct {
	Donations []domain.Donation `json:"donations"`
	Total     int64             `json:"total"`
	HasMore   bool              `json:"hasMore"`
}

type setDonationStatusRequest struct {
	DonationStatus string `json:"donationStatus"`
}

// ListInfinite handles GET /donations/infinite, the paginated scroll feed.
//
// @Summary      List donation campaigns (paginated)
// @Tags         donations
// @Produce      json
// @Param        page   query  int  false  "Page (default 1)"
// @Param        limit  query  int  false  "Page size (default 6)"
// @Success      200  {object}  listDonationsResponse
// @Failure      500  {object}  errorResponse
// @Router       /donations/infinite [get]
func (h *DonationHandler) ListInfinite(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.service.ListInfinite(c.Request().Context(), page, limit)
	if err != nil {
		return fail(c, "Failed to fetch donations", err)
	}

	return c.JSON(http.StatusOK, listDonationsResponse{
		Donations: result.Donations,
		Total:     result.Total,
		HasMore:   result.HasMore,
	})
}

// List handles GET /donations with an optional owner email filter.
func (h *DonationHandler) List(c echo.Context) error {
	donations, err := h.service.List(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return fail(c, "Failed to fetch donations", err)
	}
	return c.JSON(http.StatusOK, donations)
}

// Get handles GET /donations/:id.
func (h *DonationHandler) Get(c echo.Context) error {
	donation, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return badRequest(c, "Invalid id")
		case errors.Is(err, domain.ErrDonationNotFound):
			return notFound(c, "Donation not found")
		}
		return fail(c, "Failed to fetch donation", err)
	}
	return c.JSON(http.StatusOK, donation)
}

// Create handles POST /donations.
func (h *DonationHandler) Create(c echo.Context) error {
	var req createDonationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if req.Email == "" {
		req.Email = claimedEmail(c)
	}

	id, err := h.service.Create(c.Request().Context(), &domain.Donation{
		Name:             req.Name,
		Image:            req.Image,
		MaxDonation:      req.MaxDonation,
		LastDate:         req.LastDate,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Email:            req.Email,
	})
	if err != nil {
		return fail(c, "Failed to create donation campaign", err)
	}
	return c.JSON(http.StatusOK, insertResponse{InsertedID: id})
}

// Update handles PUT /donations/:id, a whitelist-restricted merge update.
func (h *DonationHandler) Update(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return badRequest(c, "Invalid payload")
	}

	res, err := h.service.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return badRequest(c, "Invalid id")
		case errors.Is(err, domain.ErrEmptyUpdate):
			return badRequest(c, "No updatable fields in payload")
		}
		return fail(c, "Failed to update donation", err)
	}
	return c.JSON(http.StatusOK, res)
}

// SetStatus handles PATCH /donations/:id to pause or resume a campaign.
func (h *DonationHandler) SetStatus(c echo.Context) error {
	var req setDonationStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if req.DonationStatus == "" {
		return badRequest(c, "donationStatus is required")
	}

	res, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.DonationStatus)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return badRequest(c, "Invalid id")
		}
		return fail(c, "Failed to update donation", err)
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /donations/:id (admin only, enforced by the router).
func (h *DonationHandler) Delete(c echo.Context) error {
	n, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return badRequest(c, "Invalid id")
		}
		return fail(c, "Failed to delete donation", err)
	}
	return c.JSON(http.StatusOK, deleteResponse{DeletedCount: n})
}
