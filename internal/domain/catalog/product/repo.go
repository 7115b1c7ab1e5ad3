package product

import (
	"context"

	"stockbook/internal/core/id"
	"stockbook/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// GetForUpdate retrieves product with row lock.
	GetForUpdate(ctx context.Context, id id.ID) (*Product, error)

	// GetAll retrieves every non-deleted product (report snapshot input).
	GetAll(ctx context.Context) ([]*Product, error)

	// AdjustStock changes current_stock by delta with optimistic locking.
	AdjustStock(ctx context.Context, id id.ID, delta int) error

	// FindLowStock retrieves products with stock below the threshold.
	FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Product], error)

	// ResetStock zeroes current_stock and opening_stock for all products.
	ResetStock(ctx context.Context) error
}
