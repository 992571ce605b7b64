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

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return errors.Wrap(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindByStore lists all addresses attached to a store.
func (repo *addressRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by store")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// Update modifies an existing address.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"street":       address.Street,
			"number":       address.Number,
			"complement":   address.Complement,
			"neighborhood": address.Neighborhood,
			"zip_code":     address.ZipCode,
			"city_id":      address.CityID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// Delete removes an address by its ID.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:           data.ID,
		StoreID:      data.StoreID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		ZipCode:      data.ZipCode,
		CityID:       data.CityID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		StoreID:      data.StoreID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		ZipCode:      data.ZipCode,
		CityID:       data.CityID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
