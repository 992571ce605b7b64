package handler

import (
	"log/slog"
	"net/http"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog management handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

type valueRequest struct {
	Value string `json:"value" validate:"required"`
}

type productRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
}

type variationRequest struct {
	Size          string  `json:"size"`
	Color         string  `json:"color"`
	WeightGrams   int     `json:"weight_grams" validate:"min=0"`
	WidthCm       float64 `json:"width_cm" validate:"min=0"`
	HeightCm      float64 `json:"height_cm" validate:"min=0"`
	LengthCm      float64 `json:"length_cm" validate:"min=0"`
	PriceCents    int64   `json:"price_cents" validate:"required,gt=0"`
	DiscountCents int64   `json:"discount_cents" validate:"min=0"`
}

type attachValueRequest struct {
	ValueID uuid.UUID `json:"value_id" validate:"required"`
}

type setStockRequest struct {
	Quantity int `json:"quantity"`
}

// CreateCategory handles adding a category to a store.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), storeID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// ListCategories handles listing the categories of a store.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}

	categories, err := h.uc.ListCategories(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// UpdateCategory handles renaming a category.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "categoryID")
	if err != nil {
		return err
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), categoryID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory handles removing a category.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "categoryID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// CreateAttribute handles adding a variation axis to a store.
func (h *CatalogHandler) CreateAttribute(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attribute input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	attribute, err := h.uc.CreateAttribute(c.Request().Context(), storeID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, attribute, "Attribute created successfully")
}

// ListAttributes handles listing the attributes of a store.
func (h *CatalogHandler) ListAttributes(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}

	attributes, err := h.uc.ListAttributes(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attributes, "Attributes retrieved successfully")
}

// DeleteAttribute handles removing an attribute and its values.
func (h *CatalogHandler) DeleteAttribute(c echo.Context) error {
	attributeID, err := pathUUID(c, "attributeID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAttribute(c.Request().Context(), attributeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Attribute deleted successfully")
}

// CreateAttributeValue handles adding an allowed value to an attribute.
func (h *CatalogHandler) CreateAttributeValue(c echo.Context) error {
	attributeID, err := pathUUID(c, "attributeID")
	if err != nil {
		return err
	}

	var req valueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attribute value input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	value, err := h.uc.CreateAttributeValue(c.Request().Context(), attributeID, req.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, value, "Attribute value created successfully")
}

// ListAttributeValues handles listing the values of an attribute.
func (h *CatalogHandler) ListAttributeValues(c echo.Context) error {
	attributeID, err := pathUUID(c, "attributeID")
	if err != nil {
		return err
	}

	values, err := h.uc.ListAttributeValues(c.Request().Context(), attributeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, values, "Attribute values retrieved successfully")
}

// DeleteAttributeValue handles removing an attribute value.
func (h *CatalogHandler) DeleteAttributeValue(c echo.Context) error {
	valueID, err := pathUUID(c, "valueID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAttributeValue(c.Request().Context(), valueID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Attribute value deleted successfully")
}

// CreateProduct handles adding a product to a store.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), storeID, usecase.ProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// GetProduct handles retrieving a product with variations and stock.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	view, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Product retrieved successfully")
}

// ListProducts handles the paginated product listing of a store.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)

	products, err := h.uc.ListProducts(c.Request().Context(), storeID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// UpdateProduct handles modifying a product.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, usecase.ProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles removing a product and its variations.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// UploadProductImage handles the product image upload.
func (h *CatalogHandler) UploadProductImage(c echo.Context) error {
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	upload, closeFn, err := formImage(c)
	if err != nil {
		return err
	}
	defer closeFn()

	url, err := h.uc.UploadProductImage(c.Request().Context(), productID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Image uploaded successfully")
}

// CreateVariation handles adding a purchasable variation to a product.
func (h *CatalogHandler) CreateVariation(c echo.Context) error {
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	var req variationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	variation, err := h.uc.CreateVariation(c.Request().Context(), productID, usecase.VariationInput{
		Size:          req.Size,
		Color:         req.Color,
		WeightGrams:   req.WeightGrams,
		WidthCm:       req.WidthCm,
		HeightCm:      req.HeightCm,
		LengthCm:      req.LengthCm,
		PriceCents:    req.PriceCents,
		DiscountCents: req.DiscountCents,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, variation, "Variation created successfully")
}

// UpdateVariation handles modifying a variation.
func (h *CatalogHandler) UpdateVariation(c echo.Context) error {
	variationID, err := pathUUID(c, "variationID")
	if err != nil {
		return err
	}

	var req variationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	variation, err := h.uc.UpdateVariation(c.Request().Context(), variationID, usecase.VariationInput{
		Size:          req.Size,
		Color:         req.Color,
		WeightGrams:   req.WeightGrams,
		WidthCm:       req.WidthCm,
		HeightCm:      req.HeightCm,
		LengthCm:      req.LengthCm,
		PriceCents:    req.PriceCents,
		DiscountCents: req.DiscountCents,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variation, "Variation updated successfully")
}

// DeleteVariation handles removing a variation.
func (h *CatalogHandler) DeleteVariation(c echo.Context) error {
	variationID, err := pathUUID(c, "variationID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteVariation(c.Request().Context(), variationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Variation deleted successfully")
}

// AttachAttributeValue handles linking an attribute value to a variation.
func (h *CatalogHandler) AttachAttributeValue(c echo.Context) error {
	variationID, err := pathUUID(c, "variationID")
	if err != nil {
		return err
	}

	var req attachValueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attachment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.uc.AttachAttributeValue(c.Request().Context(), variationID, req.ValueID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Attribute value attached successfully")
}

// DetachAttributeValue handles removing a variant-attribute link.
func (h *CatalogHandler) DetachAttributeValue(c echo.Context) error {
	linkID, err := pathUUID(c, "linkID")
	if err != nil {
		return err
	}

	if err := h.uc.DetachAttributeValue(c.Request().Context(), linkID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Attribute value detached successfully")
}

// SetStock handles overwriting the stock quantity of a variation.
func (h *CatalogHandler) SetStock(c echo.Context) error {
	variationID, err := pathUUID(c, "variationID")
	if err != nil {
		return err
	}

	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	stock, err := h.uc.SetStock(c.Request().Context(), variationID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stock, "Stock updated successfully")
}

// GetStock handles retrieving the stock row of a variation.
func (h *CatalogHandler) GetStock(c echo.Context) error {
	variationID, err := pathUUID(c, "variationID")
	if err != nil {
		return err
	}

	stock, err := h.uc.GetStock(c.Request().Context(), variationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stock, "Stock retrieved successfully")
}

// Storefront handles the public, cached storefront view by slug.
func (h *CatalogHandler) Storefront(c echo.Context) error {
	view, err := h.uc.GetStorefront(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Storefront retrieved successfully")
}
