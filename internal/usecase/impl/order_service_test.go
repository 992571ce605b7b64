package impl

import (
	"context"
	"testing"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	mockRepo "vitrine/internal/mocks/repository"
	mockUC "vitrine/internal/mocks/usecase"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	orderRepo     *mockRepo.MockOrderRepository
	productRepo   *mockRepo.MockProductRepository
	storeRepo     *mockRepo.MockStoreRepository
	txStockRepo   *mockRepo.MockStockRepository
	txOrderRepo   *mockRepo.MockOrderRepository
	notifications *mockUC.MockNotificationUsecase
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, orderServiceMocks) {
	m := orderServiceMocks{
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		storeRepo:     mockRepo.NewMockStoreRepository(t),
		txStockRepo:   mockRepo.NewMockStockRepository(t),
		txOrderRepo:   mockRepo.NewMockOrderRepository(t),
		notifications: mockUC.NewMockNotificationUsecase(t),
	}

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			OrderRepo: m.txOrderRepo,
			StockRepo: m.txStockRepo,
		},
	}

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:     m.orderRepo,
		ProductRepo:   m.productRepo,
		StoreRepo:     m.storeRepo,
		TxManager:     txManager,
		Notifications: m.notifications,
		Logger:        newDiscardLogger(),
	})

	return svc, m
}

func TestOrderService_CreateOrder_SnapshotsDiscountedPrices(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), OwnerID: ownerID}
	variation := &entity.ProductVariation{
		ID:            uuid.New(),
		PriceCents:    2000,
		DiscountCents: 1500,
	}

	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.productRepo.On("FindVariationByID", ctx, variation.ID).Return(variation, nil)
	m.txStockRepo.On("Decrement", ctx, variation.ID, 3).
		Return(&entity.Stock{VariationID: variation.ID, Quantity: 50}, nil)
	m.txOrderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	m.notifications.On("Notify", ctx, ownerID, entity.NotificationTypeNewOrder,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(&entity.Notification{}, nil)

	order, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		StoreID:      store.ID,
		CustomerName: "Carlos",
		Items:        []usecase.OrderItemInput{{VariationID: variation.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(1500), order.Items[0].UnitPriceCents)
	assert.Equal(t, int64(4500), order.TotalCents)
}

func TestOrderService_CreateOrder_InsufficientStockRejectsWholeOrder(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New(), OwnerID: uuid.New()}
	first := &entity.ProductVariation{ID: uuid.New(), PriceCents: 1000}
	second := &entity.ProductVariation{ID: uuid.New(), PriceCents: 500}

	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.productRepo.On("FindVariationByID", ctx, first.ID).Return(first, nil)
	m.productRepo.On("FindVariationByID", ctx, second.ID).Return(second, nil)
	m.txStockRepo.On("Decrement", ctx, first.ID, 1).
		Return(&entity.Stock{VariationID: first.ID, Quantity: 9}, nil)
	m.txStockRepo.On("Decrement", ctx, second.ID, 4).
		Return(nil, repository.ErrInsufficientStock)

	// The order insert never runs; the transaction rolls back both decrements.
	order, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		StoreID:      store.ID,
		CustomerName: "Carlos",
		Items: []usecase.OrderItemInput{
			{VariationID: first.ID, Quantity: 1},
			{VariationID: second.ID, Quantity: 4},
		},
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Nil(t, order)
}

func TestOrderService_CreateOrder_LowStockNotifiesOwner(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), OwnerID: ownerID}
	variation := &entity.ProductVariation{ID: uuid.New(), PriceCents: 1000}

	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.productRepo.On("FindVariationByID", ctx, variation.ID).Return(variation, nil)
	m.txStockRepo.On("Decrement", ctx, variation.ID, 2).
		Return(&entity.Stock{VariationID: variation.ID, Quantity: lowStockThreshold}, nil)
	m.txOrderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	m.notifications.On("Notify", ctx, ownerID, entity.NotificationTypeNewOrder,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(&entity.Notification{}, nil)
	m.notifications.On("Notify", ctx, ownerID, entity.NotificationTypeLowStock,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(&entity.Notification{}, nil)

	_, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		StoreID:      store.ID,
		CustomerName: "Carlos",
		Items:        []usecase.OrderItemInput{{VariationID: variation.ID, Quantity: 2}},
	})
	require.NoError(t, err)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.CreateOrder(context.Background(), usecase.CreateOrderInput{
		StoreID:      uuid.New(),
		CustomerName: "Carlos",
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, order)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), OwnerID: ownerID}
	order := &entity.Order{ID: uuid.New(), StoreID: store.ID, Status: entity.OrderStatusPending}

	m.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	m.orderRepo.On("UpdateStatus", ctx, order.ID, entity.OrderStatusConfirmed).Return(nil)
	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.notifications.On("Notify", ctx, ownerID, entity.NotificationTypeOrderStatusChanged,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(&entity.Notification{}, nil)

	updated, err := svc.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusDelivered}
	m.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	updated, err := svc.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed)
	require.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	assert.Nil(t, updated)
}
