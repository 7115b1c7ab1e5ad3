package dto

import (
	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

// --- Request DTOs ---

// StockInRequest records a receipt.
type StockInRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Date      string `json:"date" binding:"required"`
	Notes     string `json:"notes"`
}

// ToInput converts to domain input.
func (r *StockInRequest) ToInput() (ledger.StockInInput, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return ledger.StockInInput{}, apperror.NewValidation("invalid productId format")
	}
	return ledger.StockInInput{
		ProductID: productID,
		Quantity:  r.Quantity,
		Date:      r.Date,
		Notes:     r.Notes,
	}, nil
}

// StockOutRequest records a sale.
type StockOutRequest struct {
	ProductID     string `json:"productId" binding:"required,uuid"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	Date          string `json:"date" binding:"required"`
	Platform      string `json:"platform"`
	CustomerName  string `json:"customerName"`
	PaymentStatus string `json:"paymentStatus"`
	Notes         string `json:"notes"`
}

// ToInput converts to domain input.
func (r *StockOutRequest) ToInput() (ledger.StockOutInput, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return ledger.StockOutInput{}, apperror.NewValidation("invalid productId format")
	}
	return ledger.StockOutInput{
		ProductID:     productID,
		Quantity:      r.Quantity,
		Date:          r.Date,
		Platform:      r.Platform,
		CustomerName:  r.CustomerName,
		PaymentStatus: r.PaymentStatus,
		Notes:         r.Notes,
	}, nil
}

// ReturnRequest records a customer return.
type ReturnRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Date      string `json:"date" binding:"required"`
	Platform  string `json:"platform"`
	Notes     string `json:"notes"`
}

// ToInput converts to domain input.
func (r *ReturnRequest) ToInput() (ledger.ReturnInput, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return ledger.ReturnInput{}, apperror.NewValidation("invalid productId format")
	}
	return ledger.ReturnInput{
		ProductID: productID,
		Quantity:  r.Quantity,
		Date:      r.Date,
		Platform:  r.Platform,
		Notes:     r.Notes,
	}, nil
}

// --- Response DTOs ---

// ResetResponse reports the outcome of a full ledger reset.
type ResetResponse struct {
	Success    bool   `json:"success"`
	ArchiveRef string `json:"archiveRef"`
}

// SnapshotResponse is the partitioned ledger.
type SnapshotResponse struct {
	StockIn  []*ledger.Entry `json:"stockIn"`
	StockOut []*ledger.Entry `json:"stockOut"`
}

// FromSnapshot creates response from domain snapshot.
func FromSnapshot(s *ledger.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		StockIn:  s.StockIn,
		StockOut: s.StockOut,
	}
}
