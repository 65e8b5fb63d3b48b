package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/api/metrics"
	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

// PetHandler handles HTTP requests for pet listings.
type PetHandler struct {
	service ports.PetService
}

func NewPetHandler(service ports.PetService) *PetHandler {
	return &PetHandler{service: service}
}

type createPetRequest struct {
	PetID            string `json:"petId"`
	Name             string `json:"name" validate:"required"`
	Age              string `json:"age"`
	Category         string `json:"category" validate:"required"`
	Location         string `json:"location"`
	Image            string `json:"image"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	Email            string `json:"email"`
}

type listPetsResponse struct {
	Pets    []domain.Pet `json:"pets"`
	Total   int64        `json:"total"`
	HasMore bool         `json:"hasMore"`
}

type setAdoptedRequest struct {
	Adopted *bool `json:"adopted"`
}

// List handles GET /pets, the public browse view.
//
// @Summary      Browse unadopted pets
// @Tags         pets
// @Produce      json
// @Param        search    query  string  false  "Substring match on name (case-insensitive)"
// @Param        category  query  string  false  "Exact category"
// @Param        email     query  string  false  "Owner email"
// @Param        page      query  int     false  "Page (default 1)"
// @Param        limit     query  int     false  "Page size (default 6)"
// @Success      200  {object}  listPetsResponse
// @Failure      500  {object}  errorResponse
// @Router       /pets [get]
func (h *PetHandler) List(c echo.Context) error {
	filter := ports.ListPetsFilter{
		Email:    c.QueryParam("email"),
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	filter.Page, filter.Limit = pageParams(c)

	page, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return fail(c, "Failed to fetch pets", err)
	}

	return c.JSON(http.StatusOK, listPetsResponse{
		Pets:    page.Pets,
		Total:   page.Total,
		HasMore: page.HasMore,
	})
}

// ListAll handles GET /allpets, the authenticated unrestricted listing.
func (h *PetHandler) ListAll(c echo.Context) error {
	filter := ports.ListPetsFilter{
		Email:    c.QueryParam("email"),
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}

	pets, err := h.service.ListAll(c.Request().Context(), filter)
	if err != nil {
		return fail(c, "Failed to fetch pets", err)
	}
	return c.JSON(http.StatusOK, pets)
}

// Get handles GET /pets/:id, looking up by the public petId.
//
// @Summary      Get a pet by its public id
// @Tags         pets
// @Produce      json
// @Param        id   path      string  true  "Public pet id (e.g. PET-7A8B9C2D)"
// @Success      200  {object}  domain.Pet
// @Failure      404  {object}  errorResponse
// @Router       /pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	pet, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPetNotFound) {
			return notFound(c, "Pet not found")
		}
		return fail(c, "Failed to fetch pet", err)
	}
	return c.JSON(http.StatusOK, pet)
}

// Create handles POST /pets.
func (h *PetHandler) Create(c echo.Context) error {
	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if req.Email == "" {
		req.Email = claimedEmail(c)
	}

	pet := &domain.Pet{
		PetID:            req.PetID,
		Name:             req.Name,
		Age:              req.Age,
		Category:         req.Category,
		Location:         req.Location,
		Image:            req.Image,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Email:            req.Email,
	}

	id, err := h.service.Create(c.Request().Context(), pet)
	if err != nil {
		return fail(c, "Failed to add pet", err)
	}

	metrics.PetsCreatedTotal.WithLabelValues(pet.Category).Inc()
	return c.JSON(http.StatusOK, insertResponse{InsertedID: id})
}

// Update handles PUT /pets/:petId, a merge update restricted to the allowed
// field set.
func (h *PetHandler) Update(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return badRequest(c, "Invalid payload")
	}

	res, err := h.service.Update(c.Request().Context(), c.Param("petId"), fields)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyUpdate) {
			return badRequest(c, "No updatable fields in payload")
		}
		return fail(c, "Update failed", err)
	}
	return c.JSON(http.StatusOK, res)
}

// SetStatus handles PATCH /pets/:id/status, the admin adopted toggle.
func (h *PetHandler) SetStatus(c echo.Context) error {
	var req setAdoptedRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if req.Adopted == nil {
		return badRequest(c, "adopted is required")
	}

	res, err := h.service.SetAdopted(c.Request().Context(), c.Param("id"), *req.Adopted)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return badRequest(c, "Invalid id")
		}
		return fail(c, "Failed to toggle adopted status", err)
	}
	return c.JSON(http.StatusOK, res)
}

// Adopt handles PATCH /pets/:id/adopt.
func (h *PetHandler) Adopt(c echo.Context) error {
	res, err := h.service.Adopt(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return badRequest(c, "Invalid id")
		}
		return fail(c, "Failed to update pet status", err)
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /pets/:id. Admins may delete any listing; other
// callers only their own, without learning which condition failed.
func (h *PetHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), c.Param("id"), claimedEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return badRequest(c, "Invalid id")
		case errors.Is(err, domain.ErrPetNotOwned):
			return notFound(c, "Pet not found or not authorized")
		}
		return fail(c, "Failed to delete pet", err)
	}
	return c.JSON(http.StatusOK, deleteResponse{DeletedCount: 1})
}
