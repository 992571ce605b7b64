package impl

import (
	"context"
	"fmt"
	"log/slog"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// lowStockThreshold triggers a LOW_STOCK notification when an order leaves a
// variation at or below this many units.
const lowStockThreshold = 5

type orderService struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	storeRepo     repository.StoreRepository
	txManager     repository.TransactionManager
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	ProductRepo   repository.ProductRepository
	StoreRepo     repository.StoreRepository
	TxManager     repository.TransactionManager
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewOrderService creates a new order service instance.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:     params.OrderRepo,
		productRepo:   params.ProductRepo,
		storeRepo:     params.StoreRepo,
		txManager:     params.TxManager,
		notifications: params.Notifications,
		logger:        params.Logger,
	}
}

// CreateOrder places an order. Every line's stock decrement and the order
// insert run in one transaction: a single line short on stock rejects the
// whole order and leaves every quantity untouched.
func (s *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must have at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
		}
	}

	store, err := s.storeRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find store by ID")
	}

	order := &entity.Order{
		ID:            uuid.New(),
		StoreID:       input.StoreID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Status:        entity.OrderStatusPending,
	}

	for _, item := range input.Items {
		variation, err := s.productRepo.FindVariationByID(ctx, item.VariationID)
		if err != nil {
			if errors.Is(err, repository.ErrVariationNotFound) {
				return nil, domainerrors.ErrVariationNotFound.WithDetails(item.VariationID.String())
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "find variation by ID")
		}

		order.Items = append(order.Items, entity.OrderItem{
			ID:             uuid.New(),
			OrderID:        order.ID,
			VariationID:    variation.ID,
			Quantity:       item.Quantity,
			UnitPriceCents: variation.EffectivePriceCents(),
		})
		order.TotalCents += variation.EffectivePriceCents() * int64(item.Quantity)
	}

	var lowStocks []*entity.Stock

	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		stockRepo := txRepos.NewStockRepository()
		for _, item := range order.Items {
			remaining, err := stockRepo.Decrement(ctx, item.VariationID, item.Quantity)
			if err != nil {
				switch {
				case errors.Is(err, repository.ErrStockNotFound):
					return domainerrors.ErrStockNotFound.WithDetails(item.VariationID.String())
				case errors.Is(err, repository.ErrInsufficientStock):
					return domainerrors.ErrInsufficientStock.WithDetails(item.VariationID.String())
				}

				return errors.Wrap(err, "decrement stock")
			}

			if remaining.Quantity <= lowStockThreshold {
				lowStocks = append(lowStocks, remaining)
			}
		}

		if err := txRepos.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "create order")
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		return nil, domainerrors.ErrFailedToCreateOrder.WithDetails(err.Error())
	}

	s.notify(ctx, store.OwnerID, entity.NotificationTypeNewOrder,
		"New order received",
		fmt.Sprintf("Order from %s totaling %d cents", order.CustomerName, order.TotalCents))

	for _, stock := range lowStocks {
		s.notify(ctx, store.OwnerID, entity.NotificationTypeLowStock,
			"Low stock",
			fmt.Sprintf("Variation %s is down to %d units", stock.VariationID, stock.Quantity))
	}

	return order, nil
}

// GetOrder retrieves a single order, items included.
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find order by ID")
	}

	return order, nil
}

// ListOrders lists the orders of a store, newest first.
func (s *orderService) ListOrders(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	limit, offset = normalizePage(limit, offset)

	orders, err := s.orderRepo.FindByStore(ctx, storeID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find orders by store")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order along the fulfilment progression and
// notifies the store owner. Transitions outside the progression are rejected.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find order by ID")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(
			fmt.Sprintf("%s -> %s", order.Status, status))
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update order status")
	}
	order.Status = status

	if store, err := s.storeRepo.FindByID(ctx, order.StoreID); err == nil {
		s.notify(ctx, store.OwnerID, entity.NotificationTypeOrderStatusChanged,
			"Order status changed",
			fmt.Sprintf("Order %s is now %s", order.ID, status))
	}

	return order, nil
}

// notify sends a best-effort notification; delivery failures only get logged.
func (s *orderService) notify(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, title, message string) {
	if _, err := s.notifications.Notify(ctx, userID, notificationType, title, message); err != nil {
		s.logger.Warn("failed to send notification",
			slog.String("type", string(notificationType)),
			slog.Any("error", err),
		)
	}
}
