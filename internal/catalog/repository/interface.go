package repository

import (
	"context"

	"catalog-assistant/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
// All methods are read-only.
type Repository interface {
	ProductRepository
	SupplierRepository

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// ProductRepository defines data access methods for the Product entity.
// The needle is matched as a case-insensitive literal infix; an empty needle
// matches every row whose column is not NULL. Results are ordered by id.
type ProductRepository interface {
	FindProductsByBrand(ctx context.Context, needle string) ([]catalog.Product, error)

	// FindProductByName returns the first match only.
	// Returns zero-value Product (ID == 0) when not found; not-found is not an error.
	FindProductByName(ctx context.Context, needle string) (catalog.Product, error)
}

// SupplierRepository defines data access methods for the Supplier entity.
type SupplierRepository interface {
	FindSuppliersByCategory(ctx context.Context, needle string) ([]catalog.Supplier, error)
}
