package impl

import (
	"context"
	"encoding/json"
	"testing"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	mockRepo "vitrine/internal/mocks/repository"
	mockSvc "vitrine/internal/mocks/service"
	mockUC "vitrine/internal/mocks/usecase"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceMocks struct {
	categoryRepo  *mockRepo.MockCategoryRepository
	attributeRepo *mockRepo.MockAttributeRepository
	productRepo   *mockRepo.MockProductRepository
	stockRepo     *mockRepo.MockStockRepository
	storeRepo     *mockRepo.MockStoreRepository
	imageStorage  *mockSvc.MockImageStorage
	cache         *mockSvc.MockCatalogCache
	notifications *mockUC.MockNotificationUsecase
}

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, catalogServiceMocks) {
	m := catalogServiceMocks{
		categoryRepo:  mockRepo.NewMockCategoryRepository(t),
		attributeRepo: mockRepo.NewMockAttributeRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		stockRepo:     mockRepo.NewMockStockRepository(t),
		storeRepo:     mockRepo.NewMockStoreRepository(t),
		imageStorage:  mockSvc.NewMockImageStorage(t),
		cache:         mockSvc.NewMockCatalogCache(t),
		notifications: mockUC.NewMockNotificationUsecase(t),
	}

	svc := NewCatalogService(CatalogServiceParams{
		CategoryRepo:  m.categoryRepo,
		AttributeRepo: m.attributeRepo,
		ProductRepo:   m.productRepo,
		StockRepo:     m.stockRepo,
		StoreRepo:     m.storeRepo,
		ImageStorage:  m.imageStorage,
		Cache:         m.cache,
		Notifications: m.notifications,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return svc, m
}

func TestCatalogService_SetStock_RejectsNegativeQuantity(t *testing.T) {
	svc, _ := newCatalogService(t)

	// Rejected before any lookup or write happens.
	stock, err := svc.SetStock(context.Background(), uuid.New(), -1)
	require.ErrorIs(t, err, domainerrors.ErrNegativeStockQuantity)
	assert.Nil(t, stock)
}

func TestCatalogService_SetStock_CreatesRowWhenMissing(t *testing.T) {
	svc, m := newCatalogService(t)
	ctx := context.Background()

	variationID := uuid.New()
	m.productRepo.On("FindVariationByID", ctx, variationID).
		Return(&entity.ProductVariation{ID: variationID}, nil)
	m.stockRepo.On("FindByVariation", ctx, variationID).
		Return(nil, repository.ErrStockNotFound)
	m.stockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Stock")).Return(nil)

	stock, err := svc.SetStock(ctx, variationID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, stock.Quantity)
	assert.Equal(t, variationID, stock.VariationID)
}

func TestCatalogService_SetStock_UpdatesExistingRow(t *testing.T) {
	svc, m := newCatalogService(t)
	ctx := context.Background()

	variationID := uuid.New()
	existing := &entity.Stock{ID: uuid.New(), VariationID: variationID, Quantity: 3}
	m.productRepo.On("FindVariationByID", ctx, variationID).
		Return(&entity.ProductVariation{ID: variationID}, nil)
	m.stockRepo.On("FindByVariation", ctx, variationID).Return(existing, nil)
	m.stockRepo.On("Update", ctx, existing).Return(nil)

	stock, err := svc.SetStock(ctx, variationID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, stock.Quantity)
}

func TestCatalogService_CreateAttributeValue_AttributeNotFound(t *testing.T) {
	svc, m := newCatalogService(t)
	ctx := context.Background()

	attributeID := uuid.New()
	m.attributeRepo.On("FindByID", ctx, attributeID).
		Return(nil, repository.ErrAttributeNotFound)

	value, err := svc.CreateAttributeValue(ctx, attributeID, "Azul")
	require.ErrorIs(t, err, domainerrors.ErrAttributeNotFound)
	assert.Nil(t, value)
}

func TestCatalogService_CreateAttributeValue_Duplicate(t *testing.T) {
	svc, m := newCatalogService(t)
	ctx := context.Background()

	attributeID := uuid.New()
	m.attributeRepo.On("FindByID", ctx, attributeID).
		Return(&entity.Attribute{ID: attributeID}, nil)
	m.attributeRepo.On("CreateValue", ctx, mock.AnythingOfType("*entity.AttributeValue")).
		Return(repository.ErrDuplicateAttributeValue)

	value, err := svc.CreateAttributeValue(ctx, attributeID, "Azul")
	require.ErrorIs(t, err, domainerrors.ErrAttributeValueAlreadyExists)
	assert.Nil(t, value)
}

func TestCatalogService_GetStorefront_CacheHit(t *testing.T) {
	svc, m := newCatalogService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New(), Slug: "loja-da-ana", Name: "Loja da Ana"}
	cached, err := json.Marshal(&usecase.StorefrontView{Store: store})
	require.NoError(t, err)

	// A cache hit serves the view without touching the database.
	m.cache.On("Get", ctx, storefrontCacheKey("loja-da-ana")).Return(cached, nil)

	view, err := svc.GetStorefront(ctx, "loja-da-ana")
	require.NoError(t, err)
	assert.Equal(t, store.Name, view.Store.Name)
}

func TestCatalogService_GetStorefront_SkipsInactiveProducts(t *testing.T) {
	svc, m := newCatalogService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New(), Slug: "loja-da-ana"}
	active := &entity.Product{ID: uuid.New(), StoreID: store.ID, Name: "Camiseta", Active: true}
	inactive := &entity.Product{ID: uuid.New(), StoreID: store.ID, Name: "Rascunho", Active: false}

	m.cache.On("Get", ctx, storefrontCacheKey("loja-da-ana")).
		Return(nil, service.ErrCacheMiss)
	m.storeRepo.On("FindBySlug", ctx, "loja-da-ana").Return(store, nil)
	m.productRepo.On("FindByStore", ctx, store.ID, storefrontPageSize, 0).
		Return([]*entity.Product{active, inactive}, nil)
	m.productRepo.On("FindVariationsByProduct", ctx, active.ID).
		Return([]*entity.ProductVariation{}, nil)
	m.cache.On("Set", ctx, storefrontCacheKey("loja-da-ana"), mock.Anything, storefrontCacheTTL).
		Return(nil)

	view, err := svc.GetStorefront(ctx, "loja-da-ana")
	require.NoError(t, err)
	require.Len(t, view.Products, 1)
	assert.Equal(t, "Camiseta", view.Products[0].Product.Name)
}
