package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/domain"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles product catalog endpoints plus stock-level extras.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler creates a product handler wired to the product service.
func NewProductHandler(base *BaseHandler, svc *product.Service) *ProductHandler {
	catalogHandler := NewCatalogHandler(base, CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Service:    svc.CatalogService,
		EntityName: "product",
		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(p *product.Product) any {
			return dto.FromProduct(p)
		},
	})

	return &ProductHandler{
		CatalogHandler: catalogHandler,
		service:        svc,
	}
}

// GetAll handles GET /products/all and returns the full active catalog unpaged.
func (h *ProductHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.service.GetAll(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		items[i] = dto.FromProduct(p)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(items)),
		Limit:      len(items),
		Offset:     0,
	})
}

// LowStock handles GET /products/low-stock.
func (h *ProductHandler) LowStock(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.LowStock = true

	result, err := h.service.FindLowStock(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.ProductResponse, len(result.Items))
	for i, p := range result.Items {
		items[i] = dto.FromProduct(p)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// SetStock handles PUT /products/:id/stock, overriding the current stock level.
func (h *ProductHandler) SetStock(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.SetStock(ctx, productID, req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(updated))
}
