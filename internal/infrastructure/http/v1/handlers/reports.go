package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/domain/reports"
	"stockbook/internal/infrastructure/export"
	"stockbook/internal/infrastructure/http/v1/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler handles report generation endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a reports handler.
func NewReportsHandler(base *BaseHandler, svc *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     svc,
	}
}

// GetDaily handles GET /reports/daily/:date.
func (h *ReportsHandler) GetDaily(c *gin.Context) {
	ctx := c.Request.Context()

	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.Error(c, apperror.NewValidation("date must be in YYYY-MM-DD format"))
		return
	}

	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	report, notes, err := h.service.GetDaily(ctx, date, filters)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DailyReportResponse{
		Report: report,
		Notes:  notes,
	})
}

// GetDailyText handles GET /reports/daily/:date/text.
func (h *ReportsHandler) GetDailyText(c *gin.Context) {
	ctx := c.Request.Context()

	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.Error(c, apperror.NewValidation("date must be in YYYY-MM-DD format"))
		return
	}

	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	text, err := h.service.GetDailyText(ctx, date, filters)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TextSummaryResponse{Text: text})
}

// GetMonthly handles GET /reports/monthly/:month.
func (h *ReportsHandler) GetMonthly(c *gin.Context) {
	ctx := c.Request.Context()

	month := c.Param("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		h.Error(c, apperror.NewValidation("month must be in YYYY-MM format"))
		return
	}

	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	report, err := h.service.GetMonthly(ctx, month, filters)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportMonthly handles GET /reports/monthly/:month/export and streams
// the report as an xlsx workbook.
func (h *ReportsHandler) ExportMonthly(c *gin.Context) {
	ctx := c.Request.Context()

	month := c.Param("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		h.Error(c, apperror.NewValidation("month must be in YYYY-MM format"))
		return
	}

	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	report, err := h.service.GetMonthly(ctx, month, filters)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.MonthlyFilename(month)))
	c.Status(http.StatusOK)

	if err := export.MonthlyWorkbook(report, c.Writer); err != nil {
		// Headers are already sent; the request logger picks this up.
		_ = c.Error(err)
	}
}

// GetPerProduct handles GET /reports/product/:id.
func (h *ReportsHandler) GetPerProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	report, err := h.service.GetPerProduct(ctx, productID, c.Query("platform"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetDashboard handles GET /reports/dashboard.
func (h *ReportsHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	dashboard, err := h.service.GetDashboard(ctx, time.Now())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *ReportsHandler) bindFilters(c *gin.Context) (reports.Filters, bool) {
	var query dto.ReportFilterQuery
	if !h.BindQuery(c, &query) {
		return reports.Filters{}, false
	}

	filters, err := query.ToFilters()
	if err != nil {
		h.Error(c, err)
		return reports.Filters{}, false
	}

	return filters, true
}
