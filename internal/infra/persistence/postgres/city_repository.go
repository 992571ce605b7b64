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

// cityRepository implements the repository.CityRepository interface.
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{db: db}
}

// FindByID retrieves a city by its unique ID.
func (repo *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by ID")
	}

	return toCityDomain(&cityM), nil
}

// FindAll lists every known city ordered by name.
func (repo *cityRepository) FindAll(ctx context.Context) ([]*entity.City, error) {
	var cityModels []*model.CityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, nil
}

func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:    data.ID,
		Name:  data.Name,
		State: data.State,
	}
}
