package reports

import (
	"sort"
	"time"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

// PerProduct computes the merged movement history for one product.
//
// The merged list holds the product's receipt rows followed by its sale
// rows, stable-sorted by parsed date descending (unparsable dates sort
// as the zero time), then platform-filtered. TotalIn counts every row
// in the stock-in collection for the product regardless of kind;
// TotalOut counts sale rows after platform filtering.
func PerProduct(snap *ledger.Snapshot, productID id.ID, platform string) *ProductReport {
	report := &ProductReport{
		ProductID:    productID,
		Transactions: []*ledger.Entry{},
	}
	if snap == nil || id.IsNil(productID) {
		return report
	}

	var pIn, pOut []*ledger.Entry
	for _, e := range snap.StockIn {
		if e != nil && e.ProductID == productID {
			pIn = append(pIn, e)
		}
	}
	for _, e := range snap.StockOut {
		if e != nil && e.ProductID == productID {
			pOut = append(pOut, e)
		}
	}

	merged := make([]*ledger.Entry, 0, len(pIn)+len(pOut))
	merged = append(merged, pIn...)
	merged = append(merged, pOut...)
	sort.SliceStable(merged, func(i, j int) bool {
		return parseDate(merged[i].Date).After(parseDate(merged[j].Date))
	})

	if platform != "" {
		merged = keep(merged, func(e *ledger.Entry) bool {
			return e.Kind == ledger.KindIn || e.Platform == platform
		})
	}
	report.Transactions = merged

	for _, e := range pIn {
		report.TotalIn += e.Quantity
	}
	for _, e := range pOut {
		if platform == "" || e.Platform == platform {
			report.TotalOut += e.Quantity
		}
	}

	return report
}

// parseDate parses a YYYY-MM-DD business date, zero time on failure.
func parseDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}
