package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrStoreNotFound is returned when a store lookup matches no row.
	ErrStoreNotFound = errors.New("store not found")

	// ErrBranchNotFound is returned when a branch lookup matches no row.
	ErrBranchNotFound = errors.New("store branch not found")

	// ErrDuplicateSlug is returned when the slug is already taken by another store.
	ErrDuplicateSlug = errors.New("slug already in use")

	// ErrDuplicateCnpjCpf is returned when the tax id is already registered.
	ErrDuplicateCnpjCpf = errors.New("cnpj/cpf already in use")

	// ErrDuplicateWhatsapp is returned when the WhatsApp number is already registered.
	ErrDuplicateWhatsapp = errors.New("whatsapp already in use")
)

// StoreRepository persists stores and their physical branches.
type StoreRepository interface {
	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindBySlug retrieves a single store by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// FindByCnpjCpf retrieves a single store by its tax id.
	FindByCnpjCpf(ctx context.Context, cnpjCpf string) (*entity.Store, error)

	// FindByWhatsapp retrieves a single store by its WhatsApp number.
	FindByWhatsapp(ctx context.Context, whatsapp string) (*entity.Store, error)

	// FindAll lists stores with offset pagination.
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Store, error)

	// Update modifies an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// CreateBranch persists a new branch for a store.
	CreateBranch(ctx context.Context, branch *entity.StoreBranch) error

	// FindBranchByID retrieves a single branch by its unique ID.
	FindBranchByID(ctx context.Context, id uuid.UUID) (*entity.StoreBranch, error)

	// FindBranchesByStore lists all branches of a store.
	FindBranchesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreBranch, error)

	// UpdateBranch modifies an existing branch.
	UpdateBranch(ctx context.Context, branch *entity.StoreBranch) error

	// DeleteBranch removes a branch by its ID.
	DeleteBranch(ctx context.Context, id uuid.UUID) error
}
