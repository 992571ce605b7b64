package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"time"

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

// storefrontCacheTTL bounds staleness of the public storefront view.
const storefrontCacheTTL = 5 * time.Minute

// storefrontPageSize caps how many products the public view assembles.
const storefrontPageSize = 100

type catalogService struct {
	categoryRepo  repository.CategoryRepository
	attributeRepo repository.AttributeRepository
	productRepo   repository.ProductRepository
	stockRepo     repository.StockRepository
	storeRepo     repository.StoreRepository
	imageStorage  service.ImageStorage
	cache         service.CatalogCache
	notifications usecase.NotificationUsecase
	config        *config.Config
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo  repository.CategoryRepository
	AttributeRepo repository.AttributeRepository
	ProductRepo   repository.ProductRepository
	StockRepo     repository.StockRepository
	StoreRepo     repository.StoreRepository
	ImageStorage  service.ImageStorage
	Cache         service.CatalogCache
	Notifications usecase.NotificationUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:  params.CategoryRepo,
		attributeRepo: params.AttributeRepo,
		productRepo:   params.ProductRepo,
		stockRepo:     params.StockRepo,
		storeRepo:     params.StoreRepo,
		imageStorage:  params.ImageStorage,
		cache:         params.Cache,
		notifications: params.Notifications,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// CreateCategory adds a category to a store. Name is unique per store.
func (s *catalogService) CreateCategory(ctx context.Context, storeID uuid.UUID, name string) (*entity.Category, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	category := &entity.Category{
		ID:      uuid.New(),
		StoreID: storeID,
		Name:    name,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create category")
	}

	return category, nil
}

// ListCategories lists the categories of a store.
func (s *catalogService) ListCategories(ctx context.Context, storeID uuid.UUID) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find categories by store")
	}

	return categories, nil
}

// UpdateCategory renames a category.
func (s *catalogService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, name string) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find category by ID")
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateCategory):
			return nil, domainerrors.ErrCategoryAlreadyExists
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update category")
	}

	return category, nil
}

// DeleteCategory removes a category.
func (s *catalogService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete category")
	}

	return nil
}

// CreateAttribute adds a variation axis to a store. Name is unique per store.
func (s *catalogService) CreateAttribute(ctx context.Context, storeID uuid.UUID, name string) (*entity.Attribute, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	attribute := &entity.Attribute{
		ID:      uuid.New(),
		StoreID: storeID,
		Name:    name,
	}

	if err := s.attributeRepo.Create(ctx, attribute); err != nil {
		if errors.Is(err, repository.ErrDuplicateAttribute) {
			return nil, domainerrors.ErrAttributeAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create attribute")
	}

	return attribute, nil
}

// ListAttributes lists the attributes of a store.
func (s *catalogService) ListAttributes(ctx context.Context, storeID uuid.UUID) ([]*entity.Attribute, error) {
	attributes, err := s.attributeRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find attributes by store")
	}

	return attributes, nil
}

// DeleteAttribute removes an attribute and its values.
func (s *catalogService) DeleteAttribute(ctx context.Context, attributeID uuid.UUID) error {
	if err := s.attributeRepo.Delete(ctx, attributeID); err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return domainerrors.ErrAttributeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete attribute")
	}

	return nil
}

// CreateAttributeValue adds an allowed value to an existing attribute.
// Values for attributes that do not exist are rejected, and duplicates
// within one attribute are reported as conflicts.
func (s *catalogService) CreateAttributeValue(ctx context.Context, attributeID uuid.UUID, value string) (*entity.AttributeValue, error) {
	if _, err := s.attributeRepo.FindByID(ctx, attributeID); err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find attribute by ID")
	}

	attributeValue := &entity.AttributeValue{
		ID:          uuid.New(),
		AttributeID: attributeID,
		Value:       value,
	}

	if err := s.attributeRepo.CreateValue(ctx, attributeValue); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAttributeValue):
			return nil, domainerrors.ErrAttributeValueAlreadyExists
		case errors.Is(err, repository.ErrAttributeNotFound):
			return nil, domainerrors.ErrAttributeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create attribute value")
	}

	return attributeValue, nil
}

// ListAttributeValues lists the values of an attribute.
func (s *catalogService) ListAttributeValues(ctx context.Context, attributeID uuid.UUID) ([]*entity.AttributeValue, error) {
	if _, err := s.attributeRepo.FindByID(ctx, attributeID); err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find attribute by ID")
	}

	values, err := s.attributeRepo.FindValuesByAttribute(ctx, attributeID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find values by attribute")
	}

	return values, nil
}

// DeleteAttributeValue removes an attribute value.
func (s *catalogService) DeleteAttributeValue(ctx context.Context, valueID uuid.UUID) error {
	if err := s.attributeRepo.DeleteValue(ctx, valueID); err != nil {
		if errors.Is(err, repository.ErrAttributeValueNotFound) {
			return domainerrors.ErrAttributeValueNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete attribute value")
	}

	return nil
}

// CreateProduct adds a product to a store and notifies the owner.
func (s *catalogService) CreateProduct(ctx context.Context, storeID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find store by ID")
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "find category by ID")
		}
	}

	product := &entity.Product{
		ID:          uuid.New(),
		StoreID:     storeID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Active:      input.Active,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create product")
	}

	s.invalidateStorefront(ctx, store.Slug)

	if _, err := s.notifications.Notify(ctx, store.OwnerID, entity.NotificationTypeProductAdded,
		"Product added", fmt.Sprintf("%q is now in your catalog", product.Name)); err != nil {
		s.logger.Warn("failed to notify product creation",
			slog.String("product_id", product.ID.String()),
			slog.Any("error", err),
		)
	}

	return product, nil
}

// GetProduct retrieves a product with its variations and stock.
func (s *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find product by ID")
	}

	return s.assembleProductView(ctx, product)
}

// ListProducts lists the products of a store with offset pagination.
func (s *catalogService) ListProducts(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	limit, offset = normalizePage(limit, offset)

	products, err := s.productRepo.FindByStore(ctx, storeID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find products by store")
	}

	return products, nil
}

// UpdateProduct modifies a product.
func (s *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find product by ID")
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "find category by ID")
		}
	}

	product.CategoryID = input.CategoryID
	product.Name = input.Name
	product.Description = input.Description
	product.Active = input.Active

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update product")
	}

	s.invalidateStorefrontByStoreID(ctx, product.StoreID)

	return product, nil
}

// DeleteProduct removes a product and its variations.
func (s *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "find product by ID")
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete product")
	}

	s.invalidateStorefrontByStoreID(ctx, product.StoreID)

	return nil
}

// UploadProductImage stores a product image and records its URL.
func (s *catalogService) UploadProductImage(ctx context.Context, productID uuid.UUID, upload usecase.ImageUpload) (string, error) {
	if err := validateImageUpload(upload, s.config.Upload.MaxSizeBytes); err != nil {
		return "", err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return "", domainerrors.ErrProductNotFound
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "find product by ID")
	}

	key := fmt.Sprintf("products/%s/image%s", productID, path.Ext(upload.Filename))
	url, err := s.imageStorage.Save(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		return "", domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	product.ImageURL = url
	if err := s.productRepo.Update(ctx, product); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "record product image URL")
	}

	s.invalidateStorefrontByStoreID(ctx, product.StoreID)

	return url, nil
}

// CreateVariation adds a purchasable variation to a product.
func (s *catalogService) CreateVariation(ctx context.Context, productID uuid.UUID, input usecase.VariationInput) (*entity.ProductVariation, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find product by ID")
	}

	variation := &entity.ProductVariation{
		ID:            uuid.New(),
		ProductID:     productID,
		Size:          input.Size,
		Color:         input.Color,
		WeightGrams:   input.WeightGrams,
		WidthCm:       input.WidthCm,
		HeightCm:      input.HeightCm,
		LengthCm:      input.LengthCm,
		PriceCents:    input.PriceCents,
		DiscountCents: input.DiscountCents,
	}

	if err := s.productRepo.CreateVariation(ctx, variation); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create product variation")
	}

	s.invalidateStorefrontByStoreID(ctx, product.StoreID)

	return variation, nil
}

// UpdateVariation modifies a variation.
func (s *catalogService) UpdateVariation(ctx context.Context, variationID uuid.UUID, input usecase.VariationInput) (*entity.ProductVariation, error) {
	variation, err := s.findVariation(ctx, variationID)
	if err != nil {
		return nil, err
	}

	variation.Size = input.Size
	variation.Color = input.Color
	variation.WeightGrams = input.WeightGrams
	variation.WidthCm = input.WidthCm
	variation.HeightCm = input.HeightCm
	variation.LengthCm = input.LengthCm
	variation.PriceCents = input.PriceCents
	variation.DiscountCents = input.DiscountCents

	if err := s.productRepo.UpdateVariation(ctx, variation); err != nil {
		if errors.Is(err, repository.ErrVariationNotFound) {
			return nil, domainerrors.ErrVariationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update product variation")
	}

	return variation, nil
}

// DeleteVariation removes a variation.
func (s *catalogService) DeleteVariation(ctx context.Context, variationID uuid.UUID) error {
	if err := s.productRepo.DeleteVariation(ctx, variationID); err != nil {
		if errors.Is(err, repository.ErrVariationNotFound) {
			return domainerrors.ErrVariationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "delete product variation")
	}

	return nil
}

// AttachAttributeValue links an attribute value to a variation.
func (s *catalogService) AttachAttributeValue(ctx context.Context, variationID, valueID uuid.UUID) (*entity.VariantAttribute, error) {
	if _, err := s.findVariation(ctx, variationID); err != nil {
		return nil, err
	}
	if _, err := s.attributeRepo.FindValueByID(ctx, valueID); err != nil {
		if errors.Is(err, repository.ErrAttributeValueNotFound) {
			return nil, domainerrors.ErrAttributeValueNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find attribute value by ID")
	}

	link := &entity.VariantAttribute{
		ID:               uuid.New(),
		VariationID:      variationID,
		AttributeValueID: valueID,
	}

	if err := s.attributeRepo.AttachValueToVariation(ctx, link); err != nil {
		if errors.Is(err, repository.ErrAttributeValueNotFound) {
			return nil, domainerrors.ErrAttributeValueNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "attach value to variation")
	}

	return link, nil
}

// DetachAttributeValue removes a variant-attribute link.
func (s *catalogService) DetachAttributeValue(ctx context.Context, linkID uuid.UUID) error {
	if err := s.attributeRepo.DetachValueFromVariation(ctx, linkID); err != nil {
		if errors.Is(err, repository.ErrVariantAttributeNotFound) {
			return domainerrors.ErrVariantAttrNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "detach value from variation")
	}

	return nil
}

// SetStock creates or overwrites the stock quantity of a variation.
// Negative quantities are rejected before any repository write happens.
func (s *catalogService) SetStock(ctx context.Context, variationID uuid.UUID, quantity int) (*entity.Stock, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrNegativeStockQuantity
	}

	if _, err := s.findVariation(ctx, variationID); err != nil {
		return nil, err
	}

	stock, err := s.stockRepo.FindByVariation(ctx, variationID)
	switch {
	case err == nil:
		stock.Quantity = quantity
		if err := s.stockRepo.Update(ctx, stock); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "update stock")
		}
	case errors.Is(err, repository.ErrStockNotFound):
		stock = &entity.Stock{
			ID:          uuid.New(),
			VariationID: variationID,
			Quantity:    quantity,
		}
		if err := s.stockRepo.Create(ctx, stock); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "create stock")
		}
	default:
		return nil, domainerrors.NewDatabaseExecuteError(err, "find stock by variation")
	}

	return stock, nil
}

// GetStock retrieves the stock row of a variation.
func (s *catalogService) GetStock(ctx context.Context, variationID uuid.UUID) (*entity.Stock, error) {
	stock, err := s.stockRepo.FindByVariation(ctx, variationID)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return nil, domainerrors.ErrStockNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find stock by variation")
	}

	return stock, nil
}

// GetStorefront assembles the public view of a store by slug. The view is
// cached; cache failures fall through to the database.
func (s *catalogService) GetStorefront(ctx context.Context, slug string) (*usecase.StorefrontView, error) {
	cacheKey := storefrontCacheKey(slug)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var view usecase.StorefrontView
		if err := json.Unmarshal(cached, &view); err == nil {
			return &view, nil
		}
	} else if !errors.Is(err, service.ErrCacheMiss) {
		s.logger.Warn("storefront cache read failed",
			slog.String("slug", slug),
			slog.Any("error", err),
		)
	}

	store, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find store by slug")
	}

	products, err := s.productRepo.FindByStore(ctx, store.ID, storefrontPageSize, 0)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find products by store")
	}

	view := &usecase.StorefrontView{Store: store}
	for _, product := range products {
		if !product.Active {
			continue
		}

		productView, err := s.assembleProductView(ctx, product)
		if err != nil {
			return nil, err
		}
		view.Products = append(view.Products, *productView)
	}

	if payload, err := json.Marshal(view); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, storefrontCacheTTL); err != nil {
			s.logger.Warn("storefront cache write failed",
				slog.String("slug", slug),
				slog.Any("error", err),
			)
		}
	}

	return view, nil
}

// assembleProductView joins a product with its variations, stock and
// attribute links.
func (s *catalogService) assembleProductView(ctx context.Context, product *entity.Product) (*usecase.ProductView, error) {
	variations, err := s.productRepo.FindVariationsByProduct(ctx, product.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find variations by product")
	}

	view := &usecase.ProductView{Product: product}
	for _, variation := range variations {
		variationView := usecase.VariationView{Variation: variation}

		stock, err := s.stockRepo.FindByVariation(ctx, variation.ID)
		if err != nil && !errors.Is(err, repository.ErrStockNotFound) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "find stock by variation")
		}
		variationView.Stock = stock

		links, err := s.attributeRepo.FindVariantAttributes(ctx, variation.ID)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "find variant attributes")
		}
		variationView.Attributes = links

		view.Variations = append(view.Variations, variationView)
	}

	return view, nil
}

func (s *catalogService) findVariation(ctx context.Context, variationID uuid.UUID) (*entity.ProductVariation, error) {
	variation, err := s.productRepo.FindVariationByID(ctx, variationID)
	if err != nil {
		if errors.Is(err, repository.ErrVariationNotFound) {
			return nil, domainerrors.ErrVariationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find variation by ID")
	}

	return variation, nil
}

func (s *catalogService) requireStore(ctx context.Context, storeID uuid.UUID) error {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "find store by ID")
	}

	return nil
}

// invalidateStorefrontByStoreID looks up the slug before dropping the cached
// view; lookup failures only cost cache freshness.
func (s *catalogService) invalidateStorefrontByStoreID(ctx context.Context, storeID uuid.UUID) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		s.logger.Warn("failed to resolve store for cache invalidation",
			slog.String("store_id", storeID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.invalidateStorefront(ctx, store.Slug)
}

func (s *catalogService) invalidateStorefront(ctx context.Context, slug string) {
	if err := s.cache.Invalidate(ctx, storefrontCacheKey(slug)); err != nil {
		s.logger.Warn("failed to invalidate storefront cache",
			slog.String("slug", slug),
			slog.Any("error", err),
		)
	}
}
