package impl

import (
	"context"
	"testing"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	mockRepo "vitrine/internal/mocks/repository"
	mockSvc "vitrine/internal/mocks/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceMocks struct {
	storeRepo    *mockRepo.MockStoreRepository
	addressRepo  *mockRepo.MockAddressRepository
	cityRepo     *mockRepo.MockCityRepository
	userRepo     *mockRepo.MockUserRepository
	qrcode       *mockSvc.MockQRCodeService
	imageStorage *mockSvc.MockImageStorage
	cache        *mockSvc.MockCatalogCache
}

func newStoreService(t *testing.T) (usecase.StoreUsecase, storeServiceMocks) {
	m := storeServiceMocks{
		storeRepo:    mockRepo.NewMockStoreRepository(t),
		addressRepo:  mockRepo.NewMockAddressRepository(t),
		cityRepo:     mockRepo.NewMockCityRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
		imageStorage: mockSvc.NewMockImageStorage(t),
		cache:        mockSvc.NewMockCatalogCache(t),
	}

	svc := NewStoreService(StoreServiceParams{
		StoreRepo:    m.storeRepo,
		AddressRepo:  m.addressRepo,
		CityRepo:     m.cityRepo,
		UserRepo:     m.userRepo,
		QRCode:       m.qrcode,
		ImageStorage: m.imageStorage,
		Cache:        m.cache,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func TestStoreService_CreateStore(t *testing.T) {
	svc, m := newStoreService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	cityID := uuid.New()
	owner := &entity.User{ID: ownerID, Role: entity.RoleOwner}

	m.cityRepo.On("FindByID", ctx, cityID).Return(&entity.City{ID: cityID}, nil)
	m.storeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Store")).Return(nil)
	m.userRepo.On("FindByID", ctx, ownerID).Return(owner, nil)
	m.userRepo.On("Update", ctx, owner).Return(nil)

	store, err := svc.CreateStore(ctx, ownerID, usecase.CreateStoreInput{
		Name:     "Loja da Ana",
		Slug:     "loja-da-ana",
		CnpjCpf:  "12345678000190",
		Whatsapp: "+5511999990000",
		CityID:   cityID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusPending, store.Status)
	assert.False(t, store.IsPaid)
	assert.Equal(t, ownerID, store.OwnerID)
	require.NotNil(t, owner.StoreID)
	assert.Equal(t, store.ID, *owner.StoreID)
}

func TestStoreService_CreateStore_DuplicateSlug(t *testing.T) {
	svc, m := newStoreService(t)
	ctx := context.Background()

	cityID := uuid.New()
	m.cityRepo.On("FindByID", ctx, cityID).Return(&entity.City{ID: cityID}, nil)
	m.storeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Store")).
		Return(repository.ErrDuplicateSlug)

	store, err := svc.CreateStore(ctx, uuid.New(), usecase.CreateStoreInput{
		Name:   "Loja da Ana",
		Slug:   "loja-da-ana",
		CityID: cityID,
	})
	require.ErrorIs(t, err, domainerrors.ErrSlugAlreadyExists)
	assert.Nil(t, store)
}

func TestStoreService_CreateStore_CityNotFound(t *testing.T) {
	svc, m := newStoreService(t)
	ctx := context.Background()

	cityID := uuid.New()
	m.cityRepo.On("FindByID", ctx, cityID).Return(nil, repository.ErrCityNotFound)

	store, err := svc.CreateStore(ctx, uuid.New(), usecase.CreateStoreInput{
		Name:   "Loja da Ana",
		Slug:   "loja-da-ana",
		CityID: cityID,
	})
	require.ErrorIs(t, err, domainerrors.ErrCityNotFound)
	assert.Nil(t, store)
}

func TestStoreService_UpdateStore_InvalidatesOldAndNewSlug(t *testing.T) {
	svc, m := newStoreService(t)
	ctx := context.Background()

	storeID := uuid.New()
	store := &entity.Store{ID: storeID, Slug: "old-slug"}
	newSlug := "new-slug"

	m.storeRepo.On("FindByID", ctx, storeID).Return(store, nil)
	m.storeRepo.On("Update", ctx, store).Return(nil)
	m.cache.On("Invalidate", ctx, storefrontCacheKey("old-slug")).Return(nil)
	m.cache.On("Invalidate", ctx, storefrontCacheKey("new-slug")).Return(nil)

	updated, err := svc.UpdateStore(ctx, storeID, usecase.UpdateStoreInput{Slug: &newSlug})
	require.NoError(t, err)
	assert.Equal(t, newSlug, updated.Slug)
}

func TestStoreService_UploadStoreImage_RejectsUnknownKind(t *testing.T) {
	svc, _ := newStoreService(t)

	url, err := svc.UploadStoreImage(context.Background(), uuid.New(), "avatar", usecase.ImageUpload{
		Filename:    "a.png",
		ContentType: "image/png",
		Size:        100,
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, url)
}

func TestStoreService_GenerateStorefrontQR(t *testing.T) {
	svc, m := newStoreService(t)
	ctx := context.Background()

	storeID := uuid.New()
	store := &entity.Store{ID: storeID, Slug: "loja-da-ana"}
	m.storeRepo.On("FindByID", ctx, storeID).Return(store, nil)
	m.qrcode.On("GenerateStorefrontQR", "loja-da-ana").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.GenerateStorefrontQR(ctx, storeID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
