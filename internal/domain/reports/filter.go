package reports

import (
	"strings"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

// datePredicate selects entries by their business date string.
type datePredicate func(date string) bool

// onDate matches an exact YYYY-MM-DD date.
func onDate(date string) datePredicate {
	return func(d string) bool { return d == date }
}

// inMonth matches a YYYY-MM month by textual prefix. An entry dated in
// an unexpected format silently fails to match; that is intentional.
func inMonth(month string) datePredicate {
	return func(d string) bool { return d != "" && strings.HasPrefix(d, month) }
}

// applyFilters reduces the two ledger collections to the subset relevant
// to a report. Order of application: date window, type, product,
// platform. All predicates are independent, so the order is for clarity
// only.
//
// Platform filtering is asymmetric: stock-out rows must match the
// platform, but in the stock-in collection only RETURN rows are
// filtered. Plain receipts carry no channel and are always retained.
func applyFilters(snap *ledger.Snapshot, match datePredicate, f Filters) (stockIn, stockOut []*ledger.Entry) {
	stockIn = make([]*ledger.Entry, 0)
	stockOut = make([]*ledger.Entry, 0)
	if snap == nil {
		return stockIn, stockOut
	}

	for _, e := range snap.StockIn {
		if e != nil && match(e.Date) {
			stockIn = append(stockIn, e)
		}
	}
	for _, e := range snap.StockOut {
		if e != nil && match(e.Date) {
			stockOut = append(stockOut, e)
		}
	}

	switch f.Type {
	case TypeIn:
		stockOut = stockOut[:0]
		stockIn = keep(stockIn, func(e *ledger.Entry) bool { return e.Kind == ledger.KindIn })
	case TypeOut:
		stockIn = stockIn[:0]
	case TypeReturn:
		stockOut = stockOut[:0]
		stockIn = keep(stockIn, func(e *ledger.Entry) bool { return e.Kind == ledger.KindReturn })
	}

	if !id.IsNil(f.ProductID) {
		stockIn = keep(stockIn, func(e *ledger.Entry) bool { return e.ProductID == f.ProductID })
		stockOut = keep(stockOut, func(e *ledger.Entry) bool { return e.ProductID == f.ProductID })
	}

	if f.Platform != "" {
		stockOut = keep(stockOut, func(e *ledger.Entry) bool { return e.Platform == f.Platform })
		stockIn = keep(stockIn, func(e *ledger.Entry) bool {
			return e.Kind == ledger.KindIn || e.Platform == f.Platform
		})
	}

	return stockIn, stockOut
}

// keep filters in place, preserving relative order.
func keep(entries []*ledger.Entry, pred func(*ledger.Entry) bool) []*ledger.Entry {
	out := entries[:0]
	for _, e := range entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// platformOrUnknown maps an absent channel to the display bucket.
func platformOrUnknown(p string) string {
	if p == "" {
		return "Unknown"
	}
	return p
}
