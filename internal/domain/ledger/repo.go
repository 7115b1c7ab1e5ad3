package ledger

import (
	"context"

	"stockbook/internal/core/id"
)

// Repository defines the interface for ledger persistence.
// The ledger is append-only: no update path exists.
type Repository interface {
	// Create inserts a new entry
	Create(ctx context.Context, entry *Entry) error

	// GetByID retrieves an entry by ID
	GetByID(ctx context.Context, id id.ID) (*Entry, error)

	// GetSnapshot loads the full ledger partitioned into the stock-in
	// collection (IN and RETURN) and the stock-out collection (OUT)
	GetSnapshot(ctx context.Context) (*Snapshot, error)

	// ListByProduct retrieves all entries for a product
	ListByProduct(ctx context.Context, productID id.ID) ([]*Entry, error)

	// CountByKind returns the number of entries per movement kind
	CountByKind(ctx context.Context) (map[Kind]int64, error)

	// DeleteAll wipes every entry (full ledger reset)
	DeleteAll(ctx context.Context) error
}
