package dto

import (
	"github.com/shopspring/decimal"

	"stockbook/internal/domain/catalog/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	OpeningStock  int             `json:"openingStock"`
	ImageURL      *string         `json:"imageUrl"`
}

// ToEntity converts DTO to domain entity.
// Opening stock doubles as the initial on-hand quantity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.New(r.Code, r.Name, r.Category)
	p.PurchasePrice = r.PurchasePrice
	p.SellingPrice = r.SellingPrice
	p.OpeningStock = r.OpeningStock
	p.CurrentStock = r.OpeningStock
	p.ImageURL = r.ImageURL
	return p
}

// UpdateProductRequest is the request body for updating a product.
// CurrentStock is absent on purpose: stock changes go through the
// ledger or the explicit stock-count endpoint.
type UpdateProductRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	OpeningStock  int             `json:"openingStock"`
	ImageURL      *string         `json:"imageUrl"`
	Version       int             `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	if r.Code != "" {
		p.Code = r.Code
	}
	p.Name = r.Name
	p.Category = r.Category
	p.PurchasePrice = r.PurchasePrice
	p.SellingPrice = r.SellingPrice
	p.OpeningStock = r.OpeningStock
	p.ImageURL = r.ImageURL
	p.Version = r.Version
}

// SetStockRequest is the request body for a manual stock count.
type SetStockRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	OpeningStock  int             `json:"openingStock"`
	CurrentStock  int             `json:"currentStock"`
	LowStock      bool            `json:"lowStock"`
	ImageURL      *string         `json:"imageUrl,omitempty"`
	DeletionMark  bool            `json:"deletionMark"`
	Version       int             `json:"version"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID.String(),
		Code:          p.Code,
		Name:          p.Name,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		OpeningStock:  p.OpeningStock,
		CurrentStock:  p.CurrentStock,
		LowStock:      p.IsLowStock(),
		ImageURL:      p.ImageURL,
		DeletionMark:  p.DeletionMark,
		Version:       p.Version,
	}
}
