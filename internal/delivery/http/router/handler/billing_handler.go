package handler

import (
	"io"
	"log/slog"
	"net/http"

	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/response"
	"vitrine/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// stripeSignatureHeader carries the webhook signature of each delivery.
const stripeSignatureHeader = "Stripe-Signature"

// BillingHandler holds dependencies for subscription billing handlers.
type BillingHandler struct {
	uc     usecase.BillingUsecase
	logger *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler, injected by Fx.
func NewBillingHandler(uc usecase.BillingUsecase, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		uc:     uc,
		logger: logger,
	}
}

type checkoutRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// CreateCheckout handles creating a hosted checkout session for a store.
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.uc.CreateCheckoutSession(c.Request().Context(), storeID, req.PlanID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"session_id":   session.SessionID,
		"checkout_url": session.URL,
	}, "Checkout session created successfully")
}

// GetSubscription handles retrieving the store's live subscription.
func (h *BillingHandler) GetSubscription(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	subscription, err := h.uc.GetSubscription(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription retrieved successfully")
}

// CancelSubscription handles cancelling the store's subscription.
func (h *BillingHandler) CancelSubscription(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	if err := h.uc.CancelSubscription(c.Request().Context(), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription cancelled successfully")
}

// Webhook handles payment-provider deliveries. The raw body is passed through
// untouched because the signature covers the exact bytes sent.
func (h *BillingHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read webhook payload")
	}

	signature := c.Request().Header.Get(stripeSignatureHeader)
	if err := h.uc.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}
