package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
	"stockbook/internal/infrastructure/http/v1/dto"
)

// LedgerHandler handles stock movement endpoints.
type LedgerHandler struct {
	*BaseHandler
	service *ledger.Service
}

// NewLedgerHandler creates a ledger handler.
func NewLedgerHandler(base *BaseHandler, svc *ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		BaseHandler: base,
		service:     svc,
	}
}

// StockIn handles POST /ledger/stock-in.
func (h *LedgerHandler) StockIn(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockInRequest
	if !h.BindJSON(c, &req) {
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	entry, err := h.service.StockIn(ctx, input)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// StockOut handles POST /ledger/stock-out.
func (h *LedgerHandler) StockOut(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockOutRequest
	if !h.BindJSON(c, &req) {
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	entry, err := h.service.StockOut(ctx, input)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Return handles POST /ledger/return.
func (h *LedgerHandler) Return(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReturnRequest
	if !h.BindJSON(c, &req) {
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	entry, err := h.service.Return(ctx, input)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetSnapshot handles GET /ledger/snapshot.
func (h *LedgerHandler) GetSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.service.GetSnapshot(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSnapshot(snapshot))
}

// GetByID handles GET /ledger/:id.
func (h *LedgerHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	entryID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	entry, err := h.service.GetByID(ctx, entryID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListByProduct handles GET /ledger/product/:id.
func (h *LedgerHandler) ListByProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	entries, err := h.service.ListByProduct(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      entries,
		TotalCount: int64(len(entries)),
		Limit:      len(entries),
		Offset:     0,
	})
}

// Reset handles POST /ledger/reset. Archives all entries, clears the
// ledger and zeroes product stock levels. Admin only.
func (h *LedgerHandler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	archiveRef, err := h.service.Reset(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResetResponse{
		Success:    true,
		ArchiveRef: archiveRef,
	})
}
