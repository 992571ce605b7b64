package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storeService struct {
	storeRepo    repository.StoreRepository
	addressRepo  repository.AddressRepository
	cityRepo     repository.CityRepository
	userRepo     repository.UserRepository
	qrcode       service.QRCodeService
	imageStorage service.ImageStorage
	cache        service.CatalogCache
	config       *config.Config
	logger       *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo    repository.StoreRepository
	AddressRepo  repository.AddressRepository
	CityRepo     repository.CityRepository
	UserRepo     repository.UserRepository
	QRCode       service.QRCodeService
	ImageStorage service.ImageStorage
	Cache        service.CatalogCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStoreService creates a new store service instance.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo:    params.StoreRepo,
		addressRepo:  params.AddressRepo,
		cityRepo:     params.CityRepo,
		userRepo:     params.UserRepo,
		qrcode:       params.QRCode,
		imageStorage: params.ImageStorage,
		cache:        params.Cache,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// CreateStore opens a new store owned by the given user. New stores start
// PENDING and unpaid until a subscription is activated.
func (s *storeService) CreateStore(ctx context.Context, ownerID uuid.UUID, input usecase.CreateStoreInput) (*entity.Store, error) {
	if _, err := s.cityRepo.FindByID(ctx, input.CityID); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find city by ID")
	}

	store := &entity.Store{
		ID:       uuid.New(),
		Name:     input.Name,
		Slug:     input.Slug,
		CnpjCpf:  input.CnpjCpf,
		Whatsapp: input.Whatsapp,
		CityID:   input.CityID,
		OwnerID:  ownerID,
		Status:   entity.StoreStatusPending,
		IsPaid:   false,
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, domainerrors.ErrSlugAlreadyExists
		case errors.Is(err, repository.ErrDuplicateCnpjCpf):
			return nil, domainerrors.ErrCnpjCpfAlreadyExists
		case errors.Is(err, repository.ErrDuplicateWhatsapp):
			return nil, domainerrors.ErrWhatsappAlreadyExists
		}

		return nil, domainerrors.ErrFailedToCreateStore.WithDetails(err.Error())
	}

	// Link the owner to their new store.
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err == nil && owner.StoreID == nil {
		owner.StoreID = &store.ID
		if err := s.userRepo.Update(ctx, owner); err != nil {
			s.logger.Warn("failed to link owner to store",
				slog.String("store_id", store.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return store, nil
}

// GetStore retrieves a store by id.
func (s *storeService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find store by ID")
	}

	return store, nil
}

// GetStoreBySlug retrieves a store by its URL slug.
func (s *storeService) GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	store, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find store by slug")
	}

	return store, nil
}

// ListStores lists stores with offset pagination.
func (s *storeService) ListStores(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	limit, offset = normalizePage(limit, offset)

	stores, err := s.storeRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list stores")
	}

	return stores, nil
}

// UpdateStore applies branding/contact changes to a store.
func (s *storeService) UpdateStore(ctx context.Context, storeID uuid.UUID, input usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	previousSlug := store.Slug

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Slug != nil {
		store.Slug = *input.Slug
	}
	if input.Whatsapp != nil {
		store.Whatsapp = *input.Whatsapp
	}
	if input.PrimaryColor != nil {
		store.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		store.SecondaryColor = *input.SecondaryColor
	}
	if input.CityID != nil {
		if _, err := s.cityRepo.FindByID(ctx, *input.CityID); err != nil {
			if errors.Is(err, repository.ErrCityNotFound) {
				return nil, domainerrors.ErrCityNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "find city by ID")
		}
		store.CityID = *input.CityID
	}
	if input.Status != nil {
		store.Status = *input.Status
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, domainerrors.ErrSlugAlreadyExists
		case errors.Is(err, repository.ErrDuplicateWhatsapp):
			return nil, domainerrors.ErrWhatsappAlreadyExists
		case errors.Is(err, repository.ErrStoreNotFound):
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update store")
	}

	s.invalidateStorefront(ctx, previousSlug)
	if store.Slug != previousSlug {
		s.invalidateStorefront(ctx, store.Slug)
	}

	return store, nil
}

// UploadStoreImage stores a logo or banner image and records its URL.
func (s *storeService) UploadStoreImage(ctx context.Context, storeID uuid.UUID, kind string, upload usecase.ImageUpload) (string, error) {
	if kind != usecase.StoreImageLogo && kind != usecase.StoreImageBanner {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown image kind: " + kind)
	}
	if err := validateImageUpload(upload, s.config.Upload.MaxSizeBytes); err != nil {
		return "", err
	}

	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("stores/%s/%s%s", storeID, kind, path.Ext(upload.Filename))
	url, err := s.imageStorage.Save(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		return "", domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	switch kind {
	case usecase.StoreImageLogo:
		store.LogoURL = url
	case usecase.StoreImageBanner:
		store.BannerURL = url
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "record store image URL")
	}

	s.invalidateStorefront(ctx, store.Slug)

	return url, nil
}

// GenerateStorefrontQR renders a QR code pointing at the store's public page.
func (s *storeService) GenerateStorefrontQR(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	qrCode, err := s.qrcode.GenerateStorefrontQR(store.Slug)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return qrCode, nil
}

// CreateBranch adds a branch to a store.
func (s *storeService) CreateBranch(ctx context.Context, storeID uuid.UUID, input usecase.BranchInput) (*entity.StoreBranch, error) {
	if _, err := s.GetStore(ctx, storeID); err != nil {
		return nil, err
	}

	branch := &entity.StoreBranch{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      input.Name,
		Whatsapp:  input.Whatsapp,
		AddressID: input.AddressID,
	}

	if err := s.storeRepo.CreateBranch(ctx, branch); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create store branch")
	}

	return branch, nil
}

// ListBranches lists the branches of a store.
func (s *storeService) ListBranches(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreBranch, error) {
	branches, err := s.storeRepo.FindBranchesByStore(ctx, storeID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find branches by store")
	}

	return branches, nil
}

// UpdateBranch modifies a branch.
func (s *storeService) UpdateBranch(ctx context.Context, branchID uuid.UUID, input usecase.BranchInput) (*entity.StoreBranch, error) {
	branch, err := s.storeRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return nil, domainerrors.ErrBranchNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find branch by ID")
	}

	branch.Name = input.Name
	branch.Whatsapp = input.Whatsapp
	branch.AddressID = input.AddressID

	if err := s.storeRepo.UpdateBranch(ctx, branch); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return nil, domainerrors.ErrBranchNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update store branch")
	}

	return branch, nil
}

// DeleteBranch removes a branch.
func (s *storeService) DeleteBranch(ctx context.Context, branchID uuid.UUID) error {
	if err := s.storeRepo.DeleteBranch(ctx, branchID); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return domainerrors.ErrBranchNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete store branch")
	}

	return nil
}

// CreateAddress adds an address to a store. The city must exist.
func (s *storeService) CreateAddress(ctx context.Context, storeID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	if _, err := s.GetStore(ctx, storeID); err != nil {
		return nil, err
	}
	if _, err := s.cityRepo.FindByID(ctx, input.CityID); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find city by ID")
	}

	address := &entity.Address{
		ID:           uuid.New(),
		StoreID:      &storeID,
		Street:       input.Street,
		Number:       input.Number,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		ZipCode:      input.ZipCode,
		CityID:       input.CityID,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create address")
	}

	return address, nil
}

// ListAddresses lists the addresses of a store.
func (s *storeService) ListAddresses(ctx context.Context, storeID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find addresses by store")
	}

	return addresses, nil
}

// UpdateAddress modifies an address. The city must exist.
func (s *storeService) UpdateAddress(ctx context.Context, addressID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	address, err := s.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find address by ID")
	}

	if _, err := s.cityRepo.FindByID(ctx, input.CityID); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find city by ID")
	}

	address.Street = input.Street
	address.Number = input.Number
	address.Complement = input.Complement
	address.Neighborhood = input.Neighborhood
	address.ZipCode = input.ZipCode
	address.CityID = input.CityID

	if err := s.addressRepo.Update(ctx, address); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update address")
	}

	return address, nil
}

// DeleteAddress removes an address.
func (s *storeService) DeleteAddress(ctx context.Context, addressID uuid.UUID) error {
	if err := s.addressRepo.Delete(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete address")
	}

	return nil
}

// ListCities lists the cities stores can attach to.
func (s *storeService) ListCities(ctx context.Context) ([]*entity.City, error) {
	cities, err := s.cityRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list cities")
	}

	return cities, nil
}

// invalidateStorefront drops the cached public view of a store. Cache
// failures are logged, never surfaced.
func (s *storeService) invalidateStorefront(ctx context.Context, slug string) {
	if err := s.cache.Invalidate(ctx, storefrontCacheKey(slug)); err != nil {
		s.logger.Warn("failed to invalidate storefront cache",
			slog.String("slug", slug),
			slog.Any("error", err),
		)
	}
}

// validateImageUpload enforces the MIME family and size cap on image uploads.
func validateImageUpload(upload usecase.ImageUpload, maxSizeBytes int64) error {
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return domainerrors.ErrInvalidImageUpload.WithDetails("content type: " + upload.ContentType)
	}
	if upload.Size <= 0 || upload.Size > maxSizeBytes {
		return domainerrors.ErrInvalidImageUpload.WithDetails(fmt.Sprintf("size: %d bytes", upload.Size))
	}

	return nil
}

// storefrontCacheKey is shared with the catalog service so either side can
// invalidate the public view.
func storefrontCacheKey(slug string) string {
	return "storefront:" + slug
}
