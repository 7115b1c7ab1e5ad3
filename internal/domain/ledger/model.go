// Package ledger provides the append-only stock movement ledger.
// Entries are created once and never mutated; the only destructive
// operation is a full reset.
package ledger

import (
	"context"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/entity"
	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
)

// Kind is the movement type tag.
type Kind string

const (
	// KindIn is a purchase/restock receipt
	KindIn Kind = "IN"

	// KindOut is an outbound sale
	KindOut Kind = "OUT"

	// KindReturn is a customer return. Returns increase stock and are
	// stored alongside receipts, but must never be conflated with plain
	// stock-in when counting units received.
	KindReturn Kind = "RETURN"
)

// IsValid reports whether k is a known movement kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindIn, KindOut, KindReturn:
		return true
	}
	return false
}

// IncreasesStock reports whether the movement adds to on-hand quantity.
func (k Kind) IncreasesStock() bool {
	return k == KindIn || k == KindReturn
}

// Entry is a single stock movement.
//
// Date is kept as a plain YYYY-MM-DD string. All report filtering is
// textual (exact match for daily, prefix match for monthly), so the
// storage format and the filter format must stay identical.
type Entry struct {
	entity.BaseRecord

	Kind Kind `db:"kind" json:"type"`

	// ProductID references the product; price lookups resolve through it
	ProductID id.ID `db:"product_id" json:"productId"`

	// ProductName and ProductImage are denormalized snapshots taken at
	// entry time so the row survives product deletion or rename
	ProductName  string  `db:"product_name" json:"productName"`
	ProductImage *string `db:"product_image" json:"productImage,omitempty"`

	Quantity int `db:"quantity" json:"quantity"`

	// Date is the business date in YYYY-MM-DD form
	Date string `db:"date" json:"date"`

	// SellingPriceAtTime is set for OUT entries
	SellingPriceAtTime *types.Money `db:"selling_price_at_time" json:"sellingPriceAtTime,omitempty"`

	// PurchasePriceAtTime is set for IN entries; may be absent for
	// legacy rows, in which case the product's current price is used
	PurchasePriceAtTime *types.Money `db:"purchase_price_at_time" json:"purchasePriceAtTime,omitempty"`

	// Platform is the sales channel for OUT and RETURN entries
	Platform string `db:"platform" json:"platform,omitempty"`

	Notes         string `db:"notes" json:"notes,omitempty"`
	CustomerName  string `db:"customer_name" json:"customerName,omitempty"`
	PaymentStatus string `db:"payment_status" json:"paymentStatus,omitempty"`
}

// NewEntry creates an Entry with generated ID and audit timestamps.
// The creation hour used by the dashboard trend is recovered from the
// time-ordered ID, so entries must always be created through here.
func NewEntry(kind Kind, productID id.ID, productName string, quantity int, date string) *Entry {
	return &Entry{
		BaseRecord:  entity.NewBaseRecord(),
		Kind:        kind,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Date:        date,
	}
}

// Validate implements entity.Validatable interface.
func (e *Entry) Validate(ctx context.Context) error {
	if !e.Kind.IsValid() {
		return apperror.NewValidation("invalid movement type").
			WithDetail("field", "type").
			WithDetail("value", string(e.Kind))
	}

	if id.IsNil(e.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if e.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}

	if e.Date == "" {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	return nil
}

// Snapshot is the full in-memory copy of the ledger handed to the report
// engine for one computation. StockIn holds IN and RETURN entries,
// StockOut holds OUT entries exclusively.
type Snapshot struct {
	StockIn  []*Entry `json:"stockIn"`
	StockOut []*Entry `json:"stockOut"`
}
