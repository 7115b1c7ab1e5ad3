// Package product provides the Product catalog.
// A product carries its pricing and the authoritative on-hand quantity.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/entity"
	"stockbook/internal/core/types"
)

// LowStockThreshold is the fixed on-hand quantity below which a product
// counts as low stock on the dashboard.
const LowStockThreshold = 10

// Product represents a sellable item in the catalog.
//
// CurrentStock is the authoritative present quantity. It is NOT guaranteed
// to equal OpeningStock plus the ledger sum, because manual stock-count
// edits may bypass the ledger. Historical reconstructions must anchor on
// CurrentStock at "now" and walk the ledger from there.
type Product struct {
	entity.Catalog

	// Category is the display category (free text)
	Category string `db:"category" json:"category"`

	// PurchasePrice is the current cost price
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`

	// SellingPrice is the current sale price
	SellingPrice types.Money `db:"selling_price" json:"sellingPrice"`

	// OpeningStock is the stock level at ledger start
	OpeningStock int `db:"opening_stock" json:"openingStock"`

	// CurrentStock is the present on-hand quantity
	CurrentStock int `db:"current_stock" json:"currentStock"`

	// ImageURL is an optional reference to a hosted image
	ImageURL *string `db:"image_url" json:"imageUrl,omitempty"`
}

// New creates a new Product with required fields.
func New(code, name, category string) *Product {
	return &Product{
		Catalog:       entity.NewCatalog(code, name),
		Category:      category,
		PurchasePrice: decimal.Zero,
		SellingPrice:  decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	// Base catalog validation
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Category == "" {
		return apperror.NewValidation("category is required").
			WithDetail("field", "category")
	}

	if p.PurchasePrice.IsNegative() {
		return apperror.NewValidation("purchase price cannot be negative").
			WithDetail("field", "purchasePrice")
	}

	if p.SellingPrice.IsNegative() {
		return apperror.NewValidation("selling price cannot be negative").
			WithDetail("field", "sellingPrice")
	}

	if p.OpeningStock < 0 {
		return apperror.NewValidation("opening stock cannot be negative").
			WithDetail("field", "openingStock")
	}

	return nil
}

// IsLowStock returns true when on-hand quantity is below the threshold.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock < LowStockThreshold
}

// Margin returns the current per-unit margin.
func (p *Product) Margin() types.Money {
	return p.SellingPrice.Sub(p.PurchasePrice)
}
