package dto

import (
	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/domain/reports"
)

// ReportFilterQuery carries the optional report filter query params.
// Type accepts ALL/IN/OUT/RETURN; empty means no restriction.
type ReportFilterQuery struct {
	Type      string `form:"type"`
	ProductID string `form:"productId"`
	Platform  string `form:"platform"`
}

// ToFilters converts query params to domain filters.
func (q *ReportFilterQuery) ToFilters() (reports.Filters, error) {
	f := reports.Filters{
		Type:     reports.TypeFilter(q.Type),
		Platform: q.Platform,
	}

	switch f.Type {
	case "", reports.TypeAll, reports.TypeIn, reports.TypeOut, reports.TypeReturn:
	default:
		return reports.Filters{}, apperror.NewValidation("invalid type filter").
			WithDetail("type", q.Type)
	}

	if q.ProductID != "" {
		productID, err := id.Parse(q.ProductID)
		if err != nil {
			return reports.Filters{}, apperror.NewValidation("invalid productId format")
		}
		f.ProductID = productID
	}

	return f, nil
}

// DailyReportResponse pairs the daily report with its derived notes.
type DailyReportResponse struct {
	Report *reports.DailyReport `json:"report"`
	Notes  reports.DailyNotes   `json:"notes"`
}

// TextSummaryResponse wraps the shareable plain-text daily summary.
type TextSummaryResponse struct {
	Text string `json:"text"`
}
