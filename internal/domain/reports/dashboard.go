package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/domain/ledger"
)

// BuildDashboard computes the landing-page aggregates over the full,
// unfiltered snapshot. The reference instant is passed in so the
// computation stays pure.
func BuildDashboard(products []*product.Product, snap *ledger.Snapshot, now time.Time) *Dashboard {
	d := &Dashboard{
		HourlyTrend: make([]HourlyPoint, 24),
		TopWeek:     []TopProduct{},
		TopMonth:    []TopProduct{},
	}
	for h := range d.HourlyTrend {
		d.HourlyTrend[h] = HourlyPoint{Hour: h, Sales: decimal.Zero}
	}

	for _, p := range products {
		if p == nil {
			continue
		}
		d.TotalProducts++
		if p.IsLowStock() {
			d.LowStockCount++
		}
	}

	if snap == nil {
		return d
	}
	d.TotalStockIn = len(snap.StockIn)
	d.TotalStockOut = len(snap.StockOut)

	today := now.Format("2006-01-02")
	for _, e := range snap.StockOut {
		if e == nil || e.Date != today {
			continue
		}
		// The hour comes from the entry's creation instant, recovered
		// from the time-ordered ID, not from the business date.
		created := id.Timestamp(e.ID)
		if created.IsZero() {
			continue
		}
		hour := created.In(now.Location()).Hour()
		d.HourlyTrend[hour].Sales = d.HourlyTrend[hour].Sales.Add(lineAmount(e.Quantity, e.SellingPriceAtTime))
	}

	d.TopWeek = topSince(snap.StockOut, cutoffDate(now, 7))
	d.TopMonth = topSince(snap.StockOut, cutoffDate(now, 30))

	return d
}

// cutoffDate formats now minus n days as a YYYY-MM-DD string.
func cutoffDate(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format("2006-01-02")
}

// topSince ranks products by units sold on or after the cutoff date.
// ISO date strings compare lexicographically in chronological order, so
// a plain string comparison suffices.
func topSince(stockOut []*ledger.Entry, cutoff string) []TopProduct {
	sales := make(map[string]int)
	order := make([]string, 0)
	for _, e := range stockOut {
		if e == nil || e.Date < cutoff {
			continue
		}
		if _, seen := sales[e.ProductName]; !seen {
			order = append(order, e.ProductName)
		}
		sales[e.ProductName] += e.Quantity
	}
	return rankTopProducts(sales, order, 5)
}
