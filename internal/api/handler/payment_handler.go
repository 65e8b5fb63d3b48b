package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/api/metrics"
	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

// PaymentHandler handles payment-intent creation and donation payments.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createIntentRequest struct {
	Amount int64 `json:"amount"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type recordPaymentRequest struct {
	Email        string `json:"email"`
	DonationID   string `json:"donId" validate:"required"`
	DonationName string `json:"donationName"`
	Amount       int64  `json:"amount" validate:"required,gt=0"`
}

type recordPaymentResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}

// CreateIntent handles POST /create-payment-intent. Amount bounds are the
// processor's problem; repeated calls create distinct intents.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createIntentRequest  true  "Amount in cents"
// @Success      200   {object}  createIntentResponse
// @Failure      500   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}

	secret, err := h.service.CreateIntent(c.Request().Context(), req.Amount)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("failed").Inc()
		return fail(c, "Failed to create payment intent", err)
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: secret})
}

// List handles GET /donation-payments with payer email and campaign filters.
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.service.List(c.Request().Context(), ports.ListPaymentsFilter{
		Email:      c.QueryParam("email"),
		DonationID: c.QueryParam("donId"),
	})
	if err != nil {
		return fail(c, "Failed to fetch donation payments", err)
	}
	return c.JSON(http.StatusOK, payments)
}

// Record handles POST /donation-payments.
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if req.Email == "" {
		req.Email = claimedEmail(c)
	}

	id, err := h.service.Record(c.Request().Context(), &domain.DonationPayment{
		Email:        req.Email,
		DonationID:   req.DonationID,
		DonationName: req.DonationName,
		Amount:       req.Amount,
	})
	if err != nil {
		return fail(c, "Failed to record donation payment", err)
	}

	return c.JSON(http.StatusCreated, recordPaymentResponse{
		Message:    "Donation payment recorded successfully",
		InsertedID: id,
	})
}

// Delete handles DELETE /donation-payments/:id. The caller-supplied email
// must match the stored payer email; a miss and a mismatch are deliberately
// indistinguishable.
func (h *PaymentHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), c.Param("id"), c.QueryParam("email"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return badRequest(c, "Invalid id")
		case errors.Is(err, domain.ErrPaymentNotOwned):
			return notFound(c, "Donation not found or not authorized")
		}
		return fail(c, "Failed to process refund", err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Donation refund requested successfully",
	})
}
