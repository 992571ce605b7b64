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

// attributeRepository implements the repository.AttributeRepository interface.
type attributeRepository struct {
	db *gorm.DB
}

// NewAttributeRepository is the constructor for attributeRepository.
func NewAttributeRepository(db *gorm.DB) repository.AttributeRepository {
	return &attributeRepository{db: db}
}

// Create persists a new attribute. Name is unique per store.
func (repo *attributeRepository) Create(ctx context.Context, attribute *entity.Attribute) error {
	attributeM := fromAttributeDomain(attribute)

	if err := repo.db.WithContext(ctx).Create(attributeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAttribute
		}

		return errors.Wrap(err, "failed to create attribute")
	}

	attribute.ID = attributeM.ID
	attribute.CreatedAt = attributeM.CreatedAt
	attribute.UpdatedAt = attributeM.UpdatedAt

	return nil
}

// FindByID retrieves an attribute by its unique ID.
func (repo *attributeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Attribute, error) {
	var attributeM model.AttributeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&attributeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute by ID")
	}

	return toAttributeDomain(&attributeM), nil
}

// FindByStore lists all attributes of a store ordered by name.
func (repo *attributeRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Attribute, error) {
	var attributeModels []*model.AttributeModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("name ASC").
		Find(&attributeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find attributes by store")
	}

	attributes := make([]*entity.Attribute, 0, len(attributeModels))
	for _, attributeM := range attributeModels {
		attributes = append(attributes, toAttributeDomain(attributeM))
	}

	return attributes, nil
}

// Delete removes an attribute by its ID. Values cascade at the database level.
func (repo *attributeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AttributeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete attribute")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAttributeNotFound
	}

	return nil
}

// CreateValue persists a new allowed value for an attribute.
func (repo *attributeRepository) CreateValue(ctx context.Context, value *entity.AttributeValue) error {
	valueM := fromAttributeValueDomain(value)

	if err := repo.db.WithContext(ctx).Create(valueM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateAttributeValue
		case isForeignKeyConstraintViolation(err):
			return repository.ErrAttributeNotFound
		}

		return errors.Wrap(err, "failed to create attribute value")
	}

	value.ID = valueM.ID
	value.CreatedAt = valueM.CreatedAt

	return nil
}

// FindValueByID retrieves an attribute value by its unique ID.
func (repo *attributeRepository) FindValueByID(ctx context.Context, id uuid.UUID) (*entity.AttributeValue, error) {
	var valueM model.AttributeValueModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&valueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeValueNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute value by ID")
	}

	return toAttributeValueDomain(&valueM), nil
}

// FindValuesByAttribute lists all values of an attribute.
func (repo *attributeRepository) FindValuesByAttribute(ctx context.Context, attributeID uuid.UUID) ([]*entity.AttributeValue, error) {
	var valueModels []*model.AttributeValueModel

	if err := repo.db.WithContext(ctx).
		Where("attribute_id = ?", attributeID).
		Order("value ASC").
		Find(&valueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find values by attribute")
	}

	values := make([]*entity.AttributeValue, 0, len(valueModels))
	for _, valueM := range valueModels {
		values = append(values, toAttributeValueDomain(valueM))
	}

	return values, nil
}

// DeleteValue removes an attribute value by its ID.
func (repo *attributeRepository) DeleteValue(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AttributeValueModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete attribute value")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAttributeValueNotFound
	}

	return nil
}

// AttachValueToVariation links an attribute value to a product variation.
func (repo *attributeRepository) AttachValueToVariation(ctx context.Context, link *entity.VariantAttribute) error {
	linkM := &model.VariantAttributeModel{
		ID:               link.ID,
		VariationID:      link.VariationID,
		AttributeValueID: link.AttributeValueID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAttributeValueNotFound
		}

		return errors.Wrap(err, "failed to attach value to variation")
	}

	link.ID = linkM.ID

	return nil
}

// FindVariantAttributes lists the attribute values attached to a variation.
func (repo *attributeRepository) FindVariantAttributes(ctx context.Context, variationID uuid.UUID) ([]*entity.VariantAttribute, error) {
	var linkModels []*model.VariantAttributeModel

	if err := repo.db.WithContext(ctx).
		Where("variation_id = ?", variationID).
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variant attributes")
	}

	links := make([]*entity.VariantAttribute, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, &entity.VariantAttribute{
			ID:               linkM.ID,
			VariationID:      linkM.VariationID,
			AttributeValueID: linkM.AttributeValueID,
		})
	}

	return links, nil
}

// DetachValueFromVariation removes a variant-attribute link by its ID.
func (repo *attributeRepository) DetachValueFromVariation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VariantAttributeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to detach value from variation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVariantAttributeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAttributeDomain(data *model.AttributeModel) *entity.Attribute {
	if data == nil {
		return nil
	}

	return &entity.Attribute{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAttributeDomain(data *entity.Attribute) *model.AttributeModel {
	if data == nil {
		return nil
	}

	return &model.AttributeModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toAttributeValueDomain(data *model.AttributeValueModel) *entity.AttributeValue {
	if data == nil {
		return nil
	}

	return &entity.AttributeValue{
		ID:          data.ID,
		AttributeID: data.AttributeID,
		Value:       data.Value,
		CreatedAt:   data.CreatedAt,
	}
}

func fromAttributeValueDomain(data *entity.AttributeValue) *model.AttributeValueModel {
	if data == nil {
		return nil
	}

	return &model.AttributeValueModel{
		ID:          data.ID,
		AttributeID: data.AttributeID,
		Value:       data.Value,
		CreatedAt:   data.CreatedAt,
	}
}
