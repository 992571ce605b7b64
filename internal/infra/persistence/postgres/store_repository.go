package postgres

import (
	"context"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/repository"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create persists a new store, translating unique violations on the three
// globally unique columns to their dedicated domain errors.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		switch {
		case violatesUniqueOn(err, "slug"):
			return repository.ErrDuplicateSlug
		case violatesUniqueOn(err, "cnpj_cpf"):
			return repository.ErrDuplicateCnpjCpf
		case violatesUniqueOn(err, "whatsapp"):
			return repository.ErrDuplicateWhatsapp
		}

		return errors.Wrap(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a store by its URL slug.
func (repo *storeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

// FindByCnpjCpf retrieves a store by its tax id.
func (repo *storeRepository) FindByCnpjCpf(ctx context.Context, cnpjCpf string) (*entity.Store, error) {
	return repo.findOne(ctx, "cnpj_cpf = ?", cnpjCpf)
}

// FindByWhatsapp retrieves a store by its WhatsApp number.
func (repo *storeRepository) FindByWhatsapp(ctx context.Context, whatsapp string) (*entity.Store, error) {
	return repo.findOne(ctx, "whatsapp = ?", whatsapp)
}

func (repo *storeRepository) findOne(ctx context.Context, query string, arg any) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return toStoreDomain(&storeM), nil
}

// FindAll lists stores with offset pagination, newest first.
func (repo *storeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// Update modifies an existing store.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":            storeM.Name,
			"slug":            storeM.Slug,
			"whatsapp":        storeM.Whatsapp,
			"logo_url":        storeM.LogoURL,
			"banner_url":      storeM.BannerURL,
			"primary_color":   storeM.PrimaryColor,
			"secondary_color": storeM.SecondaryColor,
			"city_id":         storeM.CityID,
			"status":          storeM.Status,
			"is_paid":         storeM.IsPaid,
		})

	if result.Error != nil {
		switch {
		case violatesUniqueOn(result.Error, "slug"):
			return repository.ErrDuplicateSlug
		case violatesUniqueOn(result.Error, "whatsapp"):
			return repository.ErrDuplicateWhatsapp
		}

		return errors.Wrap(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// CreateBranch persists a new branch for a store.
func (repo *storeRepository) CreateBranch(ctx context.Context, branch *entity.StoreBranch) error {
	branchM := fromBranchDomain(branch)

	if err := repo.db.WithContext(ctx).Create(branchM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to create store branch")
	}

	branch.ID = branchM.ID
	branch.CreatedAt = branchM.CreatedAt
	branch.UpdatedAt = branchM.UpdatedAt

	return nil
}

// FindBranchByID retrieves a branch by its unique ID.
func (repo *storeRepository) FindBranchByID(ctx context.Context, id uuid.UUID) (*entity.StoreBranch, error) {
	var branchM model.StoreBranchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&branchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBranchNotFound
		}

		return nil, errors.Wrap(err, "failed to find store branch")
	}

	return toBranchDomain(&branchM), nil
}

// FindBranchesByStore lists all branches of a store.
func (repo *storeRepository) FindBranchesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreBranch, error) {
	var branchModels []*model.StoreBranchModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&branchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find branches by store")
	}

	branches := make([]*entity.StoreBranch, 0, len(branchModels))
	for _, branchM := range branchModels {
		branches = append(branches, toBranchDomain(branchM))
	}

	return branches, nil
}

// UpdateBranch modifies an existing branch.
func (repo *storeRepository) UpdateBranch(ctx context.Context, branch *entity.StoreBranch) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreBranchModel{}).
		Where("id = ?", branch.ID).
		Updates(map[string]any{
			"name":       branch.Name,
			"whatsapp":   branch.Whatsapp,
			"address_id": branch.AddressID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store branch")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBranchNotFound
	}

	return nil
}

// DeleteBranch removes a branch by its ID.
func (repo *storeRepository) DeleteBranch(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreBranchModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store branch")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBranchNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:             data.ID,
		Name:           data.Name,
		Slug:           data.Slug,
		CnpjCpf:        data.CnpjCpf,
		Whatsapp:       data.Whatsapp,
		LogoURL:        data.LogoURL,
		BannerURL:      data.BannerURL,
		PrimaryColor:   data.PrimaryColor,
		SecondaryColor: data.SecondaryColor,
		CityID:         data.CityID,
		OwnerID:        data.OwnerID,
		Status:         entity.StoreStatus(data.Status),
		IsPaid:         data.IsPaid,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:             data.ID,
		Name:           data.Name,
		Slug:           data.Slug,
		CnpjCpf:        data.CnpjCpf,
		Whatsapp:       data.Whatsapp,
		LogoURL:        data.LogoURL,
		BannerURL:      data.BannerURL,
		PrimaryColor:   data.PrimaryColor,
		SecondaryColor: data.SecondaryColor,
		CityID:         data.CityID,
		OwnerID:        data.OwnerID,
		Status:         string(data.Status),
		IsPaid:         data.IsPaid,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toBranchDomain(data *model.StoreBranchModel) *entity.StoreBranch {
	if data == nil {
		return nil
	}

	return &entity.StoreBranch{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		Whatsapp:  data.Whatsapp,
		AddressID: data.AddressID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBranchDomain(data *entity.StoreBranch) *model.StoreBranchModel {
	if data == nil {
		return nil
	}

	return &model.StoreBranchModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		Whatsapp:  data.Whatsapp,
		AddressID: data.AddressID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
