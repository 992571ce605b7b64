package handler

import (
	"log/slog"
	"net/http"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/domain/entity"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc      usecase.OrderUsecase
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, storeUC usecase.StoreUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:      uc,
		storeUC: storeUC,
		logger:  logger,
	}
}

type orderItemRequest struct {
	VariationID uuid.UUID `json:"variation_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required"`
	CustomerPhone string             `json:"customer_phone" validate:"required"`
	CustomerEmail string             `json:"customer_email" validate:"omitempty,email"`
	Items         []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// Create handles the public order placement against a store's slug.
func (h *OrderHandler) Create(c echo.Context) error {
	store, err := h.storeUC.GetStoreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.CreateOrderInput{
		StoreID:       store.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{
			VariationID: item.VariationID,
			Quantity:    item.Quantity,
		})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Get handles retrieving one order, items included.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := requireStoreAccess(c, order.StoreID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// List handles the paginated order listing of a store.
func (h *OrderHandler) List(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}
	limit, offset := pageParams(c)

	orders, err := h.uc.ListOrders(c.Request().Context(), storeID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus handles moving an order along the fulfilment progression.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	current, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := requireStoreAccess(c, current.StoreID); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
