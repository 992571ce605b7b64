package usecase

import (
	"context"
	"io"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput carries the fields needed to open a store.
type CreateStoreInput struct {
	Name     string
	Slug     string
	CnpjCpf  string
	Whatsapp string
	CityID   uuid.UUID
}

// UpdateStoreInput carries the mutable branding and contact fields of a store.
// Nil pointers leave the current value untouched.
type UpdateStoreInput struct {
	Name           *string
	Slug           *string
	Whatsapp       *string
	PrimaryColor   *string
	SecondaryColor *string
	CityID         *uuid.UUID
	Status         *entity.StoreStatus
}

// BranchInput carries the fields of a store branch.
type BranchInput struct {
	Name      string
	Whatsapp  string
	AddressID *uuid.UUID
}

// AddressInput carries the fields of a store address.
type AddressInput struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	ZipCode      string
	CityID       uuid.UUID
}

// ImageUpload is an incoming image file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store image kinds accepted by UploadStoreImage.
const (
	StoreImageLogo   = "logo"
	StoreImageBanner = "banner"
)

// StoreUsecase defines the interface for store management use cases.
type StoreUsecase interface {
	// CreateStore opens a new store owned by the given user. Slug, tax id and
	// WhatsApp number must be globally unique.
	CreateStore(ctx context.Context, ownerID uuid.UUID, input CreateStoreInput) (*entity.Store, error)

	// GetStore retrieves a store by id.
	GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// GetStoreBySlug retrieves a store by its URL slug.
	GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// ListStores lists stores with offset pagination.
	ListStores(ctx context.Context, limit, offset int) ([]*entity.Store, error)

	// UpdateStore applies branding/contact changes to a store.
	UpdateStore(ctx context.Context, storeID uuid.UUID, input UpdateStoreInput) (*entity.Store, error)

	// UploadStoreImage stores a logo or banner image and records its URL.
	UploadStoreImage(ctx context.Context, storeID uuid.UUID, kind string, upload ImageUpload) (string, error)

	// GenerateStorefrontQR renders a QR code pointing at the store's public page.
	GenerateStorefrontQR(ctx context.Context, storeID uuid.UUID) ([]byte, error)

	// CreateBranch adds a branch to a store.
	CreateBranch(ctx context.Context, storeID uuid.UUID, input BranchInput) (*entity.StoreBranch, error)

	// ListBranches lists the branches of a store.
	ListBranches(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreBranch, error)

	// UpdateBranch modifies a branch.
	UpdateBranch(ctx context.Context, branchID uuid.UUID, input BranchInput) (*entity.StoreBranch, error)

	// DeleteBranch removes a branch.
	DeleteBranch(ctx context.Context, branchID uuid.UUID) error

	// CreateAddress adds an address to a store. The city must exist.
	CreateAddress(ctx context.Context, storeID uuid.UUID, input AddressInput) (*entity.Address, error)

	// ListAddresses lists the addresses of a store.
	ListAddresses(ctx context.Context, storeID uuid.UUID) ([]*entity.Address, error)

	// UpdateAddress modifies an address. The city must exist.
	UpdateAddress(ctx context.Context, addressID uuid.UUID, input AddressInput) (*entity.Address, error)

	// DeleteAddress removes an address.
	DeleteAddress(ctx context.Context, addressID uuid.UUID) error

	// ListCities lists the cities stores can attach to.
	ListCities(ctx context.Context) ([]*entity.City, error)
}
