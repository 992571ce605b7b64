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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByStore lists products of a store with offset pagination, newest first.
func (repo *productRepository) FindByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by store")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"category_id": product.CategoryID,
			"name":        product.Name,
			"description": product.Description,
			"image_url":   product.ImageURL,
			"active":      product.Active,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID. Variations cascade at the database level.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CreateVariation persists a new variation for a product.
func (repo *productRepository) CreateVariation(ctx context.Context, variation *entity.ProductVariation) error {
	variationM := fromVariationDomain(variation)

	if err := repo.db.WithContext(ctx).Create(variationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create product variation")
	}

	variation.ID = variationM.ID
	variation.CreatedAt = variationM.CreatedAt
	variation.UpdatedAt = variationM.UpdatedAt

	return nil
}

// FindVariationByID retrieves a variation by its unique ID.
func (repo *productRepository) FindVariationByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariation, error) {
	var variationM model.ProductVariationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&variationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariationNotFound
		}

		return nil, errors.Wrap(err, "failed to find variation by ID")
	}

	return toVariationDomain(&variationM), nil
}

// FindVariationsByProduct lists all variations of a product.
func (repo *productRepository) FindVariationsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductVariation, error) {
	var variationModels []*model.ProductVariationModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&variationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variations by product")
	}

	variations := make([]*entity.ProductVariation, 0, len(variationModels))
	for _, variationM := range variationModels {
		variations = append(variations, toVariationDomain(variationM))
	}

	return variations, nil
}

// UpdateVariation modifies an existing variation.
func (repo *productRepository) UpdateVariation(ctx context.Context, variation *entity.ProductVariation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariationModel{}).
		Where("id = ?", variation.ID).
		Updates(map[string]any{
			"size":           variation.Size,
			"color":          variation.Color,
			"weight_grams":   variation.WeightGrams,
			"width_cm":       variation.WidthCm,
			"height_cm":      variation.HeightCm,
			"length_cm":      variation.LengthCm,
			"price_cents":    variation.PriceCents,
			"discount_cents": variation.DiscountCents,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product variation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVariationNotFound
	}

	return nil
}

// DeleteVariation removes a variation by its ID.
func (repo *productRepository) DeleteVariation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductVariationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product variation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVariationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		StoreID:     data.StoreID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		StoreID:     data.StoreID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toVariationDomain(data *model.ProductVariationModel) *entity.ProductVariation {
	if data == nil {
		return nil
	}

	return &entity.ProductVariation{
		ID:            data.ID,
		ProductID:     data.ProductID,
		Size:          data.Size,
		Color:         data.Color,
		WeightGrams:   data.WeightGrams,
		WidthCm:       data.WidthCm,
		HeightCm:      data.HeightCm,
		LengthCm:      data.LengthCm,
		PriceCents:    data.PriceCents,
		DiscountCents: data.DiscountCents,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromVariationDomain(data *entity.ProductVariation) *model.ProductVariationModel {
	if data == nil {
		return nil
	}

	return &model.ProductVariationModel{
		ID:            data.ID,
		ProductID:     data.ProductID,
		Size:          data.Size,
		Color:         data.Color,
		WeightGrams:   data.WeightGrams,
		WidthCm:       data.WidthCm,
		HeightCm:      data.HeightCm,
		LengthCm:      data.LengthCm,
		PriceCents:    data.PriceCents,
		DiscountCents: data.DiscountCents,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
