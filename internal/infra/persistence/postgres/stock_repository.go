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

// stockRepository implements the repository.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{db: db}
}

// Create persists a new stock row for a variation.
func (repo *stockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	stockM := fromStockDomain(stock)

	if err := repo.db.WithContext(ctx).Create(stockM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStockNotFound
		}

		return errors.Wrap(err, "failed to create stock")
	}

	stock.ID = stockM.ID
	stock.UpdatedAt = stockM.UpdatedAt

	return nil
}

// FindByVariation retrieves the stock row of a variation.
func (repo *stockRepository) FindByVariation(ctx context.Context, variationID uuid.UUID) (*entity.Stock, error) {
	var stockM model.StockModel

	if err := repo.db.WithContext(ctx).
		Where("variation_id = ?", variationID).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock by variation")
	}

	return toStockDomain(&stockM), nil
}

// Update overwrites the quantity of an existing stock row.
func (repo *stockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockModel{}).
		Where("id = ?", stock.ID).
		Update("quantity", stock.Quantity)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientStock
		}

		return errors.Wrap(result.Error, "failed to update stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStockNotFound
	}

	return nil
}

// Decrement atomically subtracts quantity from a variation's stock. The
// quantity guard in the WHERE clause makes concurrent decrements safe: the
// row only changes when enough units remain, so two competing orders can
// never drive quantity negative.
func (repo *stockRepository) Decrement(ctx context.Context, variationID uuid.UUID, quantity int) (*entity.Stock, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.StockModel{}).
		Where("variation_id = ? AND quantity >= ?", variationID, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from one with too few units.
		if _, err := repo.FindByVariation(ctx, variationID); err != nil {
			return nil, err
		}

		return nil, repository.ErrInsufficientStock
	}

	return repo.FindByVariation(ctx, variationID)
}

// --- Mapper Functions ---

func toStockDomain(data *model.StockModel) *entity.Stock {
	if data == nil {
		return nil
	}

	return &entity.Stock{
		ID:          data.ID,
		VariationID: data.VariationID,
		Quantity:    data.Quantity,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromStockDomain(data *entity.Stock) *model.StockModel {
	if data == nil {
		return nil
	}

	return &model.StockModel{
		ID:          data.ID,
		VariationID: data.VariationID,
		Quantity:    data.Quantity,
		UpdatedAt:   data.UpdatedAt,
	}
}
