// Package service provides hand-maintained testify mocks for the
// infrastructure contracts.
package service

import (
	"context"
	"io"
	"time"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct{ mock.Mock }

func NewMockTokenService(t mockConstructorTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(user *entity.User) (string, string, error) {
	args := m.Called(user)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)
	id, _ := args.Get(0).(uuid.UUID)

	return id, args.Error(1)
}

func (m *MockTokenService) RefreshTokenDuration() time.Duration {
	args := m.Called()
	d, _ := args.Get(0).(time.Duration)

	return d
}

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct{ mock.Mock }

func NewMockPasswordHasher(t mockConstructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	return m.Called(hashedPassword, password).Error(0)
}

// MockOAuthService mocks service.OAuthService.
type MockOAuthService struct{ mock.Mock }

func NewMockOAuthService(t mockConstructorTestingT) *MockOAuthService {
	m := &MockOAuthService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.GoogleUser, error) {
	args := m.Called(ctx, idToken)
	user, _ := args.Get(0).(*service.GoogleUser)

	return user, args.Error(1)
}

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct{ mock.Mock }

func NewMockQRCodeService(t mockConstructorTestingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateStorefrontQR(slug string) ([]byte, error) {
	args := m.Called(slug)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

// MockImageStorage mocks service.ImageStorage.
type MockImageStorage struct{ mock.Mock }

func NewMockImageStorage(t mockConstructorTestingT) *MockImageStorage {
	m := &MockImageStorage{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockImageStorage) Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)

	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// MockCatalogCache mocks service.CatalogCache.
type MockCatalogCache struct{ mock.Mock }

func NewMockCatalogCache(t mockConstructorTestingT) *MockCatalogCache {
	m := &MockCatalogCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	payload, _ := args.Get(0).([]byte)

	return payload, args.Error(1)
}

func (m *MockCatalogCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCatalogCache) Invalidate(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

// MockPaymentGateway mocks service.PaymentGateway.
type MockPaymentGateway struct{ mock.Mock }

func NewMockPaymentGateway(t mockConstructorTestingT) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, storeID, planID, customerEmail string) (*service.CheckoutSession, error) {
	args := m.Called(ctx, storeID, planID, customerEmail)
	session, _ := args.Get(0).(*service.CheckoutSession)

	return session, args.Error(1)
}

func (m *MockPaymentGateway) CancelSubscription(ctx context.Context, providerSubscriptionID string) error {
	return m.Called(ctx, providerSubscriptionID).Error(0)
}

func (m *MockPaymentGateway) ParseWebhook(payload []byte, signatureHeader string) (*service.SubscriptionEvent, error) {
	args := m.Called(payload, signatureHeader)
	event, _ := args.Get(0).(*service.SubscriptionEvent)

	return event, args.Error(1)
}

// MockLiveNotifier mocks service.LiveNotifier.
type MockLiveNotifier struct{ mock.Mock }

func NewMockLiveNotifier(t mockConstructorTestingT) *MockLiveNotifier {
	m := &MockLiveNotifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLiveNotifier) Publish(userID uuid.UUID, notification *entity.Notification) {
	m.Called(userID, notification)
}

func (m *MockLiveNotifier) Subscribe(userID uuid.UUID) (<-chan *entity.Notification, func()) {
	args := m.Called(userID)
	ch, _ := args.Get(0).(<-chan *entity.Notification)
	unsubscribe, _ := args.Get(1).(func())

	return ch, unsubscribe
}

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct{ mock.Mock }

func NewMockEventPublisher(t mockConstructorTestingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}
