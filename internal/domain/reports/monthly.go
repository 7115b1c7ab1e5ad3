package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/domain/ledger"
)

// Monthly computes the report for a single YYYY-MM month.
//
// The catalog is needed for cost lookups (profit uses each product's
// current purchase price, not the price captured at receipt time) and
// for the closing stock reconstruction.
func Monthly(snap *ledger.Snapshot, month string, f Filters, products []*product.Product) *MonthlyReport {
	stockIn, stockOut := applyFilters(snap, inMonth(month), f)

	report := &MonthlyReport{
		Month:               month,
		StockIn:             stockIn,
		StockOut:            stockOut,
		TotalRevenue:        decimal.Zero,
		Profit:              decimal.Zero,
		TopProducts:         []TopProduct{},
		PlatformPerformance: []PlatformPerformance{},
		ClosingStock:        []ClosingStockRow{},
	}

	byID := make(map[id.ID]*product.Product, len(products))
	for _, p := range products {
		if p != nil {
			byID[p.ID] = p
		}
	}

	// Revenue, cost and per-product sales in one pass over stock-out.
	// salesOrder keeps first-occurrence order for deterministic output.
	totalCost := decimal.Zero
	productSales := make(map[string]int)
	salesOrder := make([]string, 0)

	for _, e := range stockOut {
		report.TotalRevenue = report.TotalRevenue.Add(lineAmount(e.Quantity, e.SellingPriceAtTime))
		report.TotalUnitsSold += e.Quantity

		if p, ok := byID[e.ProductID]; ok {
			totalCost = totalCost.Add(p.PurchasePrice.Mul(decimal.NewFromInt(int64(e.Quantity))))
		}

		if _, seen := productSales[e.ProductName]; !seen {
			salesOrder = append(salesOrder, e.ProductName)
		}
		productSales[e.ProductName] += e.Quantity
	}
	report.Profit = report.TotalRevenue.Sub(totalCost)

	for _, e := range stockIn {
		switch e.Kind {
		case ledger.KindReturn:
			report.TotalReturns += e.Quantity
		case ledger.KindIn:
			report.TotalStockIn += e.Quantity
		}
	}

	report.TopProducts = rankTopProducts(productSales, salesOrder, 5)
	report.PlatformPerformance = platformPerformance(stockIn, stockOut, report.TotalUnitsSold)
	report.MonthlyInsights = monthlyInsights(report, stockIn, stockOut, productSales, salesOrder)
	report.ClosingStock = closingStock(snap, month, products)

	return report
}

// rankTopProducts sorts grouped quantities descending and takes the top
// n. Ties keep first-occurrence order.
func rankTopProducts(sales map[string]int, order []string, n int) []TopProduct {
	ranked := make([]TopProduct, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, TopProduct{Name: name, Quantity: sales[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// platformPerformance aggregates sales per channel from stock-out and
// returns per channel from RETURN rows, sorted by sales descending.
func platformPerformance(stockIn, stockOut []*ledger.Entry, totalUnits int) []PlatformPerformance {
	type stats struct {
		sales   int
		returns int
	}
	byPlatform := make(map[string]*stats)
	order := make([]string, 0)

	bucket := func(platform string) *stats {
		key := platformOrUnknown(platform)
		s, ok := byPlatform[key]
		if !ok {
			s = &stats{}
			byPlatform[key] = s
			order = append(order, key)
		}
		return s
	}

	for _, e := range stockOut {
		bucket(e.Platform).sales += e.Quantity
	}
	for _, e := range stockIn {
		if e.Kind == ledger.KindReturn {
			bucket(e.Platform).returns += e.Quantity
		}
	}

	perf := make([]PlatformPerformance, 0, len(order))
	for _, key := range order {
		s := byPlatform[key]
		percentage := 0.0
		if totalUnits > 0 {
			percentage = float64(s.sales) / float64(totalUnits) * 100
		}
		perf = append(perf, PlatformPerformance{
			Platform:   key,
			Sales:      s.sales,
			Returns:    s.returns,
			Percentage: percentage,
			Net:        s.sales - s.returns,
		})
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].Sales > perf[j].Sales
	})
	return perf
}

// monthlyInsights derives the narrative findings for the month.
func monthlyInsights(report *MonthlyReport, stockIn, stockOut []*ledger.Entry, productSales map[string]int, salesOrder []string) MonthlyInsights {
	insights := MonthlyInsights{
		BestSellingProduct: "N/A",
		HighestSalesWeek:   "Week " + highestSalesWeek(stockOut),
		UnusualReturns:     "None",
		Recommendations:    "Promote top performing products.",
	}

	if len(report.TopProducts) > 0 {
		insights.BestSellingProduct = report.TopProducts[0].Name
	}

	// PlatformPerformance is already sorted by sales descending. The
	// "growth" label is a same-period ranking, kept for compatibility.
	insights.HighestGrowthPlatform = "N/A"
	if len(report.PlatformPerformance) > 0 {
		insights.HighestGrowthPlatform = report.PlatformPerformance[0].Platform
	}

	// Products whose return rate exceeds 20% on more than 5 units sold
	returnsByProduct := make(map[string]int)
	for _, e := range stockIn {
		if e.Kind == ledger.KindReturn {
			returnsByProduct[e.ProductName] += e.Quantity
		}
	}
	unusual := make([]string, 0)
	for _, name := range salesOrder {
		sales := productSales[name]
		returns := returnsByProduct[name]
		if sales > 5 && float64(returns)/float64(sales) > 0.2 {
			unusual = append(unusual, name)
		}
	}
	if len(unusual) > 0 {
		joined := strings.Join(unusual, ", ")
		insights.UnusualReturns = joined
		insights.Recommendations = "Check quality for: " + joined
	}

	return insights
}

// highestSalesWeek partitions stock-out by a rough week-of-month index
// and returns the index with the highest unit sum. Rows with unparsable
// dates are skipped; "N/A" when nothing is parsable.
func highestSalesWeek(stockOut []*ledger.Entry) string {
	weekly := make(map[int]int)
	order := make([]int, 0)

	for _, e := range stockOut {
		t, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		// Rough week number within the month
		week := ceilDiv(t.Day()-1-int(t.Weekday()), 7)
		if _, seen := weekly[week]; !seen {
			order = append(order, week)
		}
		weekly[week] += e.Quantity
	}

	if len(order) == 0 {
		return "N/A"
	}

	best := order[0]
	for _, w := range order[1:] {
		if weekly[w] > weekly[best] {
			best = w
		}
	}
	return fmt.Sprintf("%d", best)
}

// ceilDiv is integer ceiling division for possibly-negative numerators.
func ceilDiv(a, b int) int {
	if a <= 0 {
		// Day 1 on a late weekday gives a negative numerator; JS-style
		// ceil rounds toward zero there.
		return -((-a) / b)
	}
	return (a + b - 1) / b
}

// closingStock reconstructs each product's stock level as of month end.
//
// It anchors on CurrentStock (the present-day authority) and reverse
// applies every ledger entry dated strictly after the last day of the
// month, ignoring all report filters. Receipts and returns are
// subtracted back out, sales are added back in. Manual stock edits made
// after the cutoff corrupt the figure silently; that is a documented
// limitation of the anchor, not something reconciled here.
func closingStock(snap *ledger.Snapshot, month string, products []*product.Product) []ClosingStockRow {
	rows := make([]ClosingStockRow, 0, len(products))

	monthEnd, ok := lastDayOfMonth(month)
	if !ok {
		for _, p := range products {
			if p == nil {
				continue
			}
			rows = append(rows, ClosingStockRow{Name: p.Name, Category: p.Category, ClosingStock: p.CurrentStock})
		}
		return rows
	}

	var all []*ledger.Entry
	if snap != nil {
		all = make([]*ledger.Entry, 0, len(snap.StockIn)+len(snap.StockOut))
		all = append(all, snap.StockIn...)
		all = append(all, snap.StockOut...)
	}

	for _, p := range products {
		if p == nil {
			continue
		}
		stock := p.CurrentStock
		for _, e := range all {
			if e == nil || e.ProductID != p.ID {
				continue
			}
			t, err := time.Parse("2006-01-02", e.Date)
			if err != nil || !t.After(monthEnd) {
				continue
			}
			switch e.Kind {
			case ledger.KindIn, ledger.KindReturn:
				stock -= e.Quantity
			case ledger.KindOut:
				stock += e.Quantity
			}
		}
		rows = append(rows, ClosingStockRow{Name: p.Name, Category: p.Category, ClosingStock: stock})
	}
	return rows
}

// lastDayOfMonth returns midnight of the last calendar day of YYYY-MM.
func lastDayOfMonth(month string) (time.Time, bool) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, false
	}
	return first.AddDate(0, 1, -1), true
}
