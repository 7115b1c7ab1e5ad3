package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/domain/ledger"
)

func testProduct(name, category string, purchase string, currentStock int) *product.Product {
	p := product.New("", name, category)
	p.PurchasePrice = types.MustMoney(purchase)
	p.CurrentStock = currentStock
	return p
}

func TestMonthly_TopProductsOrdering(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "A", 5, "2024-01-05", "Shopee", "10"),
		outEntry(pid, "B", 9, "2024-01-06", "Shopee", "10"),
		outEntry(pid, "C", 2, "2024-01-07", "Shopee", "10"),
	})

	report := Monthly(snap, "2024-01", Filters{}, nil)

	require.Len(t, report.TopProducts, 3)
	assert.Equal(t, TopProduct{Name: "B", Quantity: 9}, report.TopProducts[0])
	assert.Equal(t, TopProduct{Name: "A", Quantity: 5}, report.TopProducts[1])
	assert.Equal(t, TopProduct{Name: "C", Quantity: 2}, report.TopProducts[2])
}

func TestMonthly_TopProductsCapAtFive(t *testing.T) {
	pid := id.New()
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	var stockOut []*ledger.Entry
	for i, n := range names {
		stockOut = append(stockOut, outEntry(pid, n, i+1, "2024-01-05", "Shopee", "10"))
	}

	report := Monthly(snapshot(nil, stockOut), "2024-01", Filters{}, nil)

	assert.Len(t, report.TopProducts, 5)
	assert.Equal(t, "G", report.TopProducts[0].Name)
}

func TestMonthly_ProfitUsesCurrentPurchasePrice(t *testing.T) {
	p := testProduct("Widget", "Toys", "4", 100)
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(p.ID, "Widget", 3, "2024-01-05", "Shopee", "10"),
	})

	report := Monthly(snap, "2024-01", Filters{}, []*product.Product{p})

	// revenue 30, cost 3*4=12
	assert.True(t, report.TotalRevenue.Equal(decimalFromInt(30)))
	assert.True(t, report.Profit.Equal(decimalFromInt(18)), "got %s", report.Profit)
}

func TestMonthly_UnresolvableProductContributesZeroCost(t *testing.T) {
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(id.New(), "Ghost", 3, "2024-01-05", "Shopee", "10"),
	})

	report := Monthly(snap, "2024-01", Filters{}, nil)

	assert.True(t, report.Profit.Equal(decimalFromInt(30)), "got %s", report.Profit)
}

func TestMonthly_PlatformPerformance(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{returnEntry(pid, "Widget", 2, "2024-01-10", "Shopee")},
		[]*ledger.Entry{
			outEntry(pid, "Widget", 6, "2024-01-05", "Shopee", "10"),
			outEntry(pid, "Widget", 4, "2024-01-06", "", "10"), // no channel -> Unknown
		},
	)

	report := Monthly(snap, "2024-01", Filters{}, nil)

	require.Len(t, report.PlatformPerformance, 2)

	// Sorted by sales descending
	shopee := report.PlatformPerformance[0]
	assert.Equal(t, "Shopee", shopee.Platform)
	assert.Equal(t, 6, shopee.Sales)
	assert.Equal(t, 2, shopee.Returns)
	assert.Equal(t, 4, shopee.Net)
	assert.InDelta(t, 60.0, shopee.Percentage, 0.0001)

	unknown := report.PlatformPerformance[1]
	assert.Equal(t, "Unknown", unknown.Platform)
	assert.Equal(t, 4, unknown.Sales)
}

func TestMonthly_PlatformPercentageZeroWhenNoUnits(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{returnEntry(pid, "Widget", 2, "2024-01-10", "Shopee")},
		nil,
	)

	report := Monthly(snap, "2024-01", Filters{}, nil)

	require.Len(t, report.PlatformPerformance, 1)
	assert.Zero(t, report.PlatformPerformance[0].Percentage)
	assert.Equal(t, -2, report.PlatformPerformance[0].Net)
}

func TestMonthly_UnusualReturnsThreshold(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			returnEntry(pid, "HighRate", 3, "2024-01-10", "Shopee"),  // 3/10 = 30%
			returnEntry(pid, "LowRate", 1, "2024-01-10", "Shopee"),   // 1/10 = 10%
			returnEntry(pid, "FewSales", 4, "2024-01-10", "Shopee"),  // sales floor not met
		},
		[]*ledger.Entry{
			outEntry(pid, "HighRate", 10, "2024-01-05", "Shopee", "10"),
			outEntry(pid, "LowRate", 10, "2024-01-05", "Shopee", "10"),
			outEntry(pid, "FewSales", 4, "2024-01-05", "Shopee", "10"),
		},
	)

	report := Monthly(snap, "2024-01", Filters{}, nil)

	assert.Equal(t, "HighRate", report.MonthlyInsights.UnusualReturns)
	assert.Equal(t, "Check quality for: HighRate", report.MonthlyInsights.Recommendations)
}

func TestMonthly_NoUnusualReturns(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 10, "2024-01-05", "Shopee", "10"),
	})

	report := Monthly(snap, "2024-01", Filters{}, nil)

	assert.Equal(t, "None", report.MonthlyInsights.UnusualReturns)
	assert.Equal(t, "Promote top performing products.", report.MonthlyInsights.Recommendations)
}

func TestMonthly_Insights(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 9, "2024-01-16", "Shopee", "10"),
		outEntry(pid, "Gadget", 2, "2024-01-02", "Lazada", "10"),
	})

	report := Monthly(snap, "2024-01", Filters{}, nil)

	assert.Equal(t, "Widget", report.MonthlyInsights.BestSellingProduct)
	assert.Equal(t, "Shopee", report.MonthlyInsights.HighestGrowthPlatform)
	// 2024-01-16 is a Tuesday: ceil((16-1-2)/7) = 2
	assert.Equal(t, "Week 2", report.MonthlyInsights.HighestSalesWeek)
}

func TestMonthly_InsightsWeekSkipsUnparsableDates(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		// Matches the month prefix but is not a parsable date: skipped
		// row-by-row, not fatal to the whole computation
		outEntry(pid, "Widget", 9, "2024-01-XX", "Shopee", "10"),
		outEntry(pid, "Widget", 1, "2024-01-02", "Shopee", "10"),
	})

	report := Monthly(snap, "2024-01", Filters{}, nil)

	assert.Equal(t, "Week 0", report.MonthlyInsights.HighestSalesWeek)
}

func TestMonthly_ClosingStockReconstruction(t *testing.T) {
	p := testProduct("Widget", "Toys", "4", 20)
	// One sale after month end: undoing it restores the higher prior stock
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(p.ID, "Widget", 5, "2024-02-10", "Shopee", "10"),
	})

	report := Monthly(snap, "2024-01", Filters{}, []*product.Product{p})

	require.Len(t, report.ClosingStock, 1)
	assert.Equal(t, ClosingStockRow{Name: "Widget", Category: "Toys", ClosingStock: 25}, report.ClosingStock[0])
}

func TestMonthly_ClosingStockReversesAllKinds(t *testing.T) {
	p := testProduct("Widget", "Toys", "4", 20)
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(p.ID, "Widget", 10, "2024-02-01"),             // reverse: -10
			returnEntry(p.ID, "Widget", 2, "2024-02-03", "Shopee"), // reverse: -2
		},
		[]*ledger.Entry{
			outEntry(p.ID, "Widget", 5, "2024-02-10", "Shopee", "10"), // reverse: +5
		},
	)

	report := Monthly(snap, "2024-01", Filters{}, []*product.Product{p})

	require.Len(t, report.ClosingStock, 1)
	assert.Equal(t, 13, report.ClosingStock[0].ClosingStock)
}

func TestMonthly_ClosingStockIgnoresFilters(t *testing.T) {
	p := testProduct("Widget", "Toys", "4", 20)
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(p.ID, "Widget", 5, "2024-02-10", "Lazada", "10"),
	})

	// Platform filter excludes the future sale from the report body,
	// but the reconstruction still reverse-applies it
	report := Monthly(snap, "2024-01", Filters{Platform: "Shopee"}, []*product.Product{p})

	require.Len(t, report.ClosingStock, 1)
	assert.Equal(t, 25, report.ClosingStock[0].ClosingStock)
}

func TestMonthly_ClosingStockMonthEndBoundary(t *testing.T) {
	p := testProduct("Widget", "Toys", "4", 20)
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(p.ID, "Widget", 5, "2024-01-31", "Shopee", "10"), // within month: not reversed
		outEntry(p.ID, "Widget", 3, "2024-02-01", "Shopee", "10"), // after: reversed
	})

	report := Monthly(snap, "2024-01", Filters{}, []*product.Product{p})

	require.Len(t, report.ClosingStock, 1)
	assert.Equal(t, 23, report.ClosingStock[0].ClosingStock)
}

func TestMonthly_EmptyLedger(t *testing.T) {
	report := Monthly(snapshot(nil, nil), "2024-01", Filters{}, nil)

	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.Profit.IsZero())
	assert.Zero(t, report.TotalUnitsSold)
	assert.Empty(t, report.TopProducts)
	assert.Empty(t, report.PlatformPerformance)
	assert.Empty(t, report.ClosingStock)
	assert.Equal(t, "N/A", report.MonthlyInsights.BestSellingProduct)
	assert.Equal(t, "Week N/A", report.MonthlyInsights.HighestSalesWeek)
	assert.Equal(t, "N/A", report.MonthlyInsights.HighestGrowthPlatform)
}

func TestMonthly_NilSnapshotTotality(t *testing.T) {
	report := Monthly(nil, "2024-01", Filters{}, nil)

	assert.NotNil(t, report)
	assert.NotNil(t, report.TopProducts)
	assert.NotNil(t, report.PlatformPerformance)
	assert.NotNil(t, report.ClosingStock)
	assert.True(t, report.TotalRevenue.IsZero())
}
