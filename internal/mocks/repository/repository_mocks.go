// Package repository provides hand-maintained testify mocks for the
// persistence interfaces.
package repository

import (
	"context"
	"time"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct{ mock.Mock }

func NewMockUserRepository(t mockConstructorTestingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.User, error) {
	args := m.Called(ctx, storeID)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct{ mock.Mock }

func NewMockRefreshTokenRepository(t mockConstructorTestingT) *MockRefreshTokenRepository {
	m := &MockRefreshTokenRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	token, _ := args.Get(0).(*entity.RefreshToken)

	return token, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockStoreRepository mocks repository.StoreRepository.
type MockStoreRepository struct{ mock.Mock }

func NewMockStoreRepository(t mockConstructorTestingT) *MockStoreRepository {
	m := &MockStoreRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	store, _ := args.Get(0).(*entity.Store)

	return store, args.Error(1)
}

func (m *MockStoreRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	args := m.Called(ctx, slug)
	store, _ := args.Get(0).(*entity.Store)

	return store, args.Error(1)
}

func (m *MockStoreRepository) FindByCnpjCpf(ctx context.Context, cnpjCpf string) (*entity.Store, error) {
	args := m.Called(ctx, cnpjCpf)
	store, _ := args.Get(0).(*entity.Store)

	return store, args.Error(1)
}

func (m *MockStoreRepository) FindByWhatsapp(ctx context.Context, whatsapp string) (*entity.Store, error) {
	args := m.Called(ctx, whatsapp)
	store, _ := args.Get(0).(*entity.Store)

	return store, args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	args := m.Called(ctx, limit, offset)
	stores, _ := args.Get(0).([]*entity.Store)

	return stores, args.Error(1)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) CreateBranch(ctx context.Context, branch *entity.StoreBranch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockStoreRepository) FindBranchByID(ctx context.Context, id uuid.UUID) (*entity.StoreBranch, error) {
	args := m.Called(ctx, id)
	branch, _ := args.Get(0).(*entity.StoreBranch)

	return branch, args.Error(1)
}

func (m *MockStoreRepository) FindBranchesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreBranch, error) {
	args := m.Called(ctx, storeID)
	branches, _ := args.Get(0).([]*entity.StoreBranch)

	return branches, args.Error(1)
}

func (m *MockStoreRepository) UpdateBranch(ctx context.Context, branch *entity.StoreBranch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockStoreRepository) DeleteBranch(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCityRepository mocks repository.CityRepository.
type MockCityRepository struct{ mock.Mock }

func NewMockCityRepository(t mockConstructorTestingT) *MockCityRepository {
	m := &MockCityRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	args := m.Called(ctx, id)
	city, _ := args.Get(0).(*entity.City)

	return city, args.Error(1)
}

func (m *MockCityRepository) FindAll(ctx context.Context) ([]*entity.City, error) {
	args := m.Called(ctx)
	cities, _ := args.Get(0).([]*entity.City)

	return cities, args.Error(1)
}

// MockAddressRepository mocks repository.AddressRepository.
type MockAddressRepository struct{ mock.Mock }

func NewMockAddressRepository(t mockConstructorTestingT) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id)
	address, _ := args.Get(0).(*entity.Address)

	return address, args.Error(1)
}

func (m *MockAddressRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, storeID)
	addresses, _ := args.Get(0).([]*entity.Address)

	return addresses, args.Error(1)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCategoryRepository mocks repository.CategoryRepository.
type MockCategoryRepository struct{ mock.Mock }

func NewMockCategoryRepository(t mockConstructorTestingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Category, error) {
	args := m.Called(ctx, storeID)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockAttributeRepository mocks repository.AttributeRepository.
type MockAttributeRepository struct{ mock.Mock }

func NewMockAttributeRepository(t mockConstructorTestingT) *MockAttributeRepository {
	m := &MockAttributeRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAttributeRepository) Create(ctx context.Context, attribute *entity.Attribute) error {
	return m.Called(ctx, attribute).Error(0)
}

func (m *MockAttributeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Attribute, error) {
	args := m.Called(ctx, id)
	attribute, _ := args.Get(0).(*entity.Attribute)

	return attribute, args.Error(1)
}

func (m *MockAttributeRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Attribute, error) {
	args := m.Called(ctx, storeID)
	attributes, _ := args.Get(0).([]*entity.Attribute)

	return attributes, args.Error(1)
}

func (m *MockAttributeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAttributeRepository) CreateValue(ctx context.Context, value *entity.AttributeValue) error {
	return m.Called(ctx, value).Error(0)
}

func (m *MockAttributeRepository) FindValueByID(ctx context.Context, id uuid.UUID) (*entity.AttributeValue, error) {
	args := m.Called(ctx, id)
	value, _ := args.Get(0).(*entity.AttributeValue)

	return value, args.Error(1)
}

func (m *MockAttributeRepository) FindValuesByAttribute(ctx context.Context, attributeID uuid.UUID) ([]*entity.AttributeValue, error) {
	args := m.Called(ctx, attributeID)
	values, _ := args.Get(0).([]*entity.AttributeValue)

	return values, args.Error(1)
}

func (m *MockAttributeRepository) DeleteValue(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAttributeRepository) AttachValueToVariation(ctx context.Context, link *entity.VariantAttribute) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockAttributeRepository) FindVariantAttributes(ctx context.Context, variationID uuid.UUID) ([]*entity.VariantAttribute, error) {
	args := m.Called(ctx, variationID)
	links, _ := args.Get(0).([]*entity.VariantAttribute)

	return links, args.Error(1)
}

func (m *MockAttributeRepository) DetachValueFromVariation(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct{ mock.Mock }

func NewMockProductRepository(t mockConstructorTestingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) FindByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, storeID, limit, offset)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) CreateVariation(ctx context.Context, variation *entity.ProductVariation) error {
	return m.Called(ctx, variation).Error(0)
}

func (m *MockProductRepository) FindVariationByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariation, error) {
	args := m.Called(ctx, id)
	variation, _ := args.Get(0).(*entity.ProductVariation)

	return variation, args.Error(1)
}

func (m *MockProductRepository) FindVariationsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductVariation, error) {
	args := m.Called(ctx, productID)
	variations, _ := args.Get(0).([]*entity.ProductVariation)

	return variations, args.Error(1)
}

func (m *MockProductRepository) UpdateVariation(ctx context.Context, variation *entity.ProductVariation) error {
	return m.Called(ctx, variation).Error(0)
}

func (m *MockProductRepository) DeleteVariation(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockStockRepository mocks repository.StockRepository.
type MockStockRepository struct{ mock.Mock }

func NewMockStockRepository(t mockConstructorTestingT) *MockStockRepository {
	m := &MockStockRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	return m.Called(ctx, stock).Error(0)
}

func (m *MockStockRepository) FindByVariation(ctx context.Context, variationID uuid.UUID) (*entity.Stock, error) {
	args := m.Called(ctx, variationID)
	stock, _ := args.Get(0).(*entity.Stock)

	return stock, args.Error(1)
}

func (m *MockStockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	return m.Called(ctx, stock).Error(0)
}

func (m *MockStockRepository) Decrement(ctx context.Context, variationID uuid.UUID, quantity int) (*entity.Stock, error) {
	args := m.Called(ctx, variationID, quantity)
	stock, _ := args.Get(0).(*entity.Stock)

	return stock, args.Error(1)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct{ mock.Mock }

func NewMockOrderRepository(t mockConstructorTestingT) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) FindByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	args := m.Called(ctx, storeID, limit, offset)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// MockSubscriptionRepository mocks repository.SubscriptionRepository.
type MockSubscriptionRepository struct{ mock.Mock }

func NewMockSubscriptionRepository(t mockConstructorTestingT) *MockSubscriptionRepository {
	m := &MockSubscriptionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	return m.Called(ctx, subscription).Error(0)
}

func (m *MockSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, id)
	subscription, _ := args.Get(0).(*entity.Subscription)

	return subscription, args.Error(1)
}

func (m *MockSubscriptionRepository) FindActiveByStore(ctx context.Context, storeID uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, storeID)
	subscription, _ := args.Get(0).(*entity.Subscription)

	return subscription, args.Error(1)
}

func (m *MockSubscriptionRepository) FindByProviderSubscriptionID(ctx context.Context, providerSubID string) (*entity.Subscription, error) {
	args := m.Called(ctx, providerSubID)
	subscription, _ := args.Get(0).(*entity.Subscription)

	return subscription, args.Error(1)
}

func (m *MockSubscriptionRepository) FindPaidEndingBefore(ctx context.Context, cutoff time.Time) ([]*entity.Subscription, error) {
	args := m.Called(ctx, cutoff)
	subscriptions, _ := args.Get(0).([]*entity.Subscription)

	return subscriptions, args.Error(1)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	return m.Called(ctx, subscription).Error(0)
}

func (m *MockSubscriptionRepository) RecordWebhookEvent(ctx context.Context, event *entity.WebhookEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockNotificationRepository mocks repository.NotificationRepository.
type MockNotificationRepository struct{ mock.Mock }

func NewMockNotificationRepository(t mockConstructorTestingT) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	args := m.Called(ctx, id)
	notification, _ := args.Get(0).(*entity.Notification)

	return notification, args.Error(1)
}

func (m *MockNotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	notifications, _ := args.Get(0).([]*entity.Notification)

	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// StubRepositoryFactory hands out the repositories configured on its fields.
type StubRepositoryFactory struct {
	OrderRepo        repository.OrderRepository
	StockRepo        repository.StockRepository
	StoreRepo        repository.StoreRepository
	SubscriptionRepo repository.SubscriptionRepository
	NotificationRepo repository.NotificationRepository
}

func (f *StubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}

func (f *StubRepositoryFactory) NewStockRepository() repository.StockRepository {
	return f.StockRepo
}

func (f *StubRepositoryFactory) NewStoreRepository() repository.StoreRepository {
	return f.StoreRepo
}

func (f *StubRepositoryFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return f.SubscriptionRepo
}

func (f *StubRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return f.NotificationRepo
}

// StubTransactionManager runs the function against the configured factory
// without a real database transaction.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error // returned without running the function when set
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}
