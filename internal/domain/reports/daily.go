package reports

import (
	"github.com/shopspring/decimal"

	"stockbook/internal/domain/ledger"
)

// Daily computes the report for a single calendar date.
// Pure function over the snapshot; a nil snapshot yields a zeroed report.
func Daily(snap *ledger.Snapshot, date string, f Filters) *DailyReport {
	stockIn, stockOut := applyFilters(snap, onDate(date), f)

	totalSales := decimal.Zero
	totalStockOut := 0
	for _, e := range stockOut {
		totalSales = totalSales.Add(lineAmount(e.Quantity, e.SellingPriceAtTime))
		totalStockOut += e.Quantity
	}

	totalReturns := 0
	totalStockIn := 0
	for _, e := range stockIn {
		switch e.Kind {
		case ledger.KindReturn:
			totalReturns += e.Quantity
		case ledger.KindIn:
			totalStockIn += e.Quantity
		}
	}

	return &DailyReport{
		Date:          date,
		StockIn:       stockIn,
		StockOut:      stockOut,
		TotalSales:    totalSales,
		TotalStockOut: totalStockOut,
		TotalReturns:  totalReturns,
		TotalStockIn:  totalStockIn,
	}
}

// lineAmount multiplies quantity by a possibly-absent unit price.
// A missing price contributes zero, never an error.
func lineAmount(quantity int, price *decimal.Decimal) decimal.Decimal {
	if price == nil {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
