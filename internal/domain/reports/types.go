// Package reports provides the report aggregation engine.
//
// Every computation here is a pure function over an immutable ledger
// snapshot and product catalog. No I/O, no caching, no mutation of
// inputs. Report generation is total: malformed or empty input yields
// a zeroed report shape, never an error.
package reports

import (
	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/ledger"
)

// TypeFilter restricts a report to one movement kind.
type TypeFilter string

const (
	TypeAll    TypeFilter = "ALL"
	TypeIn     TypeFilter = "IN"
	TypeOut    TypeFilter = "OUT"
	TypeReturn TypeFilter = "RETURN"
)

// Filters are the optional report filter parameters.
// Zero values mean "unset": no sentinel strings.
type Filters struct {
	// Type restricts to one movement kind (empty or TypeAll = no restriction)
	Type TypeFilter

	// ProductID restricts both collections to one product (Nil = unset)
	ProductID id.ID

	// Platform restricts stock-out and returns to one sales channel
	// (empty = unset). Plain stock-in rows are exempt from platform
	// filtering: receipts have no channel.
	Platform string
}

// DailyReport is the report for a single calendar date.
type DailyReport struct {
	Date     string          `json:"date"`
	StockIn  []*ledger.Entry `json:"stockIn"`
	StockOut []*ledger.Entry `json:"stockOut"`

	TotalSales    types.Money `json:"totalSales"`
	TotalStockOut int         `json:"totalStockOut"`
	TotalReturns  int         `json:"totalReturns"`
	TotalStockIn  int         `json:"totalStockIn"`
}

// TopProduct is one row of the best-sellers ranking.
type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PlatformPerformance summarizes one sales channel for a month.
type PlatformPerformance struct {
	Platform   string  `json:"platform"`
	Sales      int     `json:"sales"`
	Returns    int     `json:"returns"`
	Percentage float64 `json:"percentage"`
	Net        int     `json:"net"`
}

// MonthlyInsights are the derived narrative findings for a month.
type MonthlyInsights struct {
	BestSellingProduct string `json:"bestSellingProduct,omitempty"`

	// HighestSalesWeek is a rough week-of-month label ("Week 2")
	HighestSalesWeek string `json:"highestSalesWeek,omitempty"`

	// HighestGrowthPlatform is the channel with the highest absolute
	// sales this month. Not a period-over-period growth metric despite
	// the name; the label is kept for report compatibility.
	HighestGrowthPlatform string `json:"highestGrowthPlatform,omitempty"`

	// UnusualReturns lists products whose return rate exceeds 20%
	// on more than 5 units sold, comma separated ("None" if empty)
	UnusualReturns string `json:"unusualReturns,omitempty"`

	Recommendations string `json:"recommendations,omitempty"`
}

// ClosingStockRow is the reconstructed month-end stock for one product.
type ClosingStockRow struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	ClosingStock int    `json:"closingStock"`
}

// MonthlyReport is the report for a single YYYY-MM month.
type MonthlyReport struct {
	Month    string          `json:"month"`
	StockIn  []*ledger.Entry `json:"stockIn"`
	StockOut []*ledger.Entry `json:"stockOut"`

	TotalRevenue   types.Money `json:"totalRevenue"`
	TotalUnitsSold int         `json:"totalUnitsSold"`
	Profit         types.Money `json:"profit"`
	TotalReturns   int         `json:"totalReturns"`
	TotalStockIn   int         `json:"totalStockIn"`

	TopProducts         []TopProduct          `json:"topProducts"`
	PlatformPerformance []PlatformPerformance `json:"platformPerformance"`
	MonthlyInsights     MonthlyInsights       `json:"monthlyInsights"`
	ClosingStock        []ClosingStockRow     `json:"closingStock"`
}

// ProductReport is the merged movement history for one product.
type ProductReport struct {
	ProductID    id.ID           `json:"productId"`
	Transactions []*ledger.Entry `json:"transactions"`
	TotalIn      int             `json:"totalIn"`
	TotalOut     int             `json:"totalOut"`
}

// DailyNotes are the derived observations for a daily report.
// All fields are empty when the day has no movements at all.
type DailyNotes struct {
	TopPlatform          string `json:"topPlatform,omitempty"`
	LowestPlatform       string `json:"lowestPlatform,omitempty"`
	HighestReturnProduct string `json:"highestReturnProduct,omitempty"`
	Recommendation       string `json:"recommendation,omitempty"`
}

// IsEmpty reports whether no insight is available.
func (n DailyNotes) IsEmpty() bool {
	return n == DailyNotes{}
}

// HourlyPoint is one bucket of the dashboard sales trend.
type HourlyPoint struct {
	Hour  int         `json:"hour"`
	Sales types.Money `json:"sales"`
}

// Dashboard is the landing-page aggregate view.
type Dashboard struct {
	TotalProducts int `json:"totalProducts"`

	// LowStockCount counts products under the fixed threshold
	LowStockCount int `json:"lowStockCount"`

	// TotalStockIn / TotalStockOut are ledger entry counts
	TotalStockIn  int `json:"totalStockIn"`
	TotalStockOut int `json:"totalStockOut"`

	// HourlyTrend buckets today's sales into 24 hours
	HourlyTrend []HourlyPoint `json:"hourlyTrend"`

	// TopWeek / TopMonth are best sellers over trailing 7 and 30 days
	TopWeek  []TopProduct `json:"topWeek"`
	TopMonth []TopProduct `json:"topMonth"`
}
