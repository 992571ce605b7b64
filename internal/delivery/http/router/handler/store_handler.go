package handler

import (
	"log/slog"
	"net/http"

	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/response"
	"vitrine/internal/domain/entity"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store management handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

type createStoreRequest struct {
	Name     string    `json:"name" validate:"required"`
	Slug     string    `json:"slug" validate:"required"`
	CnpjCpf  string    `json:"cnpj_cpf" validate:"required"`
	Whatsapp string    `json:"whatsapp" validate:"required"`
	CityID   uuid.UUID `json:"city_id" validate:"required"`
}

type updateStoreRequest struct {
	Name           *string             `json:"name"`
	Slug           *string             `json:"slug"`
	Whatsapp       *string             `json:"whatsapp"`
	PrimaryColor   *string             `json:"primary_color"`
	SecondaryColor *string             `json:"secondary_color"`
	CityID         *uuid.UUID          `json:"city_id"`
	Status         *entity.StoreStatus `json:"status"`
}

type branchRequest struct {
	Name      string     `json:"name" validate:"required"`
	Whatsapp  string     `json:"whatsapp"`
	AddressID *uuid.UUID `json:"address_id"`
}

type addressRequest struct {
	Street       string    `json:"street" validate:"required"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood"`
	ZipCode      string    `json:"zip_code"`
	CityID       uuid.UUID `json:"city_id" validate:"required"`
}

// Create handles opening a new store for the authenticated owner.
func (h *StoreHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.uc.CreateStore(c.Request().Context(), userID, usecase.CreateStoreInput{
		Name:     req.Name,
		Slug:     req.Slug,
		CnpjCpf:  req.CnpjCpf,
		Whatsapp: req.Whatsapp,
		CityID:   req.CityID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// Get handles retrieving one store by id.
func (h *StoreHandler) Get(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}

	store, err := h.uc.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// List handles the paginated store listing (platform administration).
func (h *StoreHandler) List(c echo.Context) error {
	limit, offset := pageParams(c)

	stores, err := h.uc.ListStores(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// Update handles branding and contact changes to a store.
func (h *StoreHandler) Update(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), storeID, usecase.UpdateStoreInput{
		Name:           req.Name,
		Slug:           req.Slug,
		Whatsapp:       req.Whatsapp,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		CityID:         req.CityID,
		Status:         req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated successfully")
}

// UploadImage handles the logo/banner upload for a store. The kind path
// parameter selects which image is replaced.
func (h *StoreHandler) UploadImage(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	upload, closeFn, err := formImage(c)
	if err != nil {
		return err
	}
	defer closeFn()

	url, err := h.uc.UploadStoreImage(c.Request().Context(), storeID, c.Param("kind"), upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Image uploaded successfully")
}

// QRCode renders the PNG QR code pointing at the store's public page.
func (h *StoreHandler) QRCode(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateStorefrontQR(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateBranch handles adding a branch to a store.
func (h *StoreHandler) CreateBranch(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	var req branchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	branch, err := h.uc.CreateBranch(c.Request().Context(), storeID, usecase.BranchInput{
		Name:      req.Name,
		Whatsapp:  req.Whatsapp,
		AddressID: req.AddressID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, branch, "Branch created successfully")
}

// ListBranches handles listing the branches of a store.
func (h *StoreHandler) ListBranches(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}

	branches, err := h.uc.ListBranches(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, branches, "Branches retrieved successfully")
}

// UpdateBranch handles modifying a branch.
func (h *StoreHandler) UpdateBranch(c echo.Context) error {
	branchID, err := pathUUID(c, "branchID")
	if err != nil {
		return err
	}

	var req branchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	branch, err := h.uc.UpdateBranch(c.Request().Context(), branchID, usecase.BranchInput{
		Name:      req.Name,
		Whatsapp:  req.Whatsapp,
		AddressID: req.AddressID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, branch, "Branch updated successfully")
}

// DeleteBranch handles removing a branch.
func (h *StoreHandler) DeleteBranch(c echo.Context) error {
	branchID, err := pathUUID(c, "branchID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBranch(c.Request().Context(), branchID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Branch deleted successfully")
}

// CreateAddress handles adding an address to a store.
func (h *StoreHandler) CreateAddress(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}
	if err := requireStoreAccess(c, storeID); err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), storeID, usecase.AddressInput{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		ZipCode:      req.ZipCode,
		CityID:       req.CityID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// ListAddresses handles listing the addresses of a store.
func (h *StoreHandler) ListAddresses(c echo.Context) error {
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return err
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// UpdateAddress handles modifying an address.
func (h *StoreHandler) UpdateAddress(c echo.Context) error {
	addressID, err := pathUUID(c, "addressID")
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), addressID, usecase.AddressInput{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		ZipCode:      req.ZipCode,
		CityID:       req.CityID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeleteAddress handles removing an address.
func (h *StoreHandler) DeleteAddress(c echo.Context) error {
	addressID, err := pathUUID(c, "addressID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// ListCities handles listing the selectable cities.
func (h *StoreHandler) ListCities(c echo.Context) error {
	cities, err := h.uc.ListCities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "Cities retrieved successfully")
}
