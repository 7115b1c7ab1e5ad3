package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stockbook/internal/domain/reports"
)

func TestMonthlyWorkbook(t *testing.T) {
	report := &reports.MonthlyReport{
		Month:          "2024-01",
		TotalRevenue:   decimal.NewFromInt(150),
		TotalUnitsSold: 15,
		Profit:         decimal.NewFromInt(60),
		TopProducts: []reports.TopProduct{
			{Name: "Widget", Quantity: 9},
			{Name: "Gadget", Quantity: 6},
		},
		PlatformPerformance: []reports.PlatformPerformance{
			{Platform: "Shopee", Sales: 10, Returns: 1, Net: 9, Percentage: 66.7},
		},
		MonthlyInsights: reports.MonthlyInsights{
			BestSellingProduct: "Widget",
		},
		ClosingStock: []reports.ClosingStockRow{
			{Name: "Widget", Category: "Toys", ClosingStock: 4},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, MonthlyWorkbook(report, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Top Products")
	assert.Contains(t, sheets, "Platform Performance")
	assert.Contains(t, sheets, "Closing Stock")
	assert.NotContains(t, sheets, "Sheet1")

	month, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", month)

	topName, err := f.GetCellValue("Top Products", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Widget", topName)

	closing, err := f.GetCellValue("Closing Stock", "C2")
	require.NoError(t, err)
	assert.Equal(t, "4", closing)
}

func TestMonthlyFilename(t *testing.T) {
	assert.Equal(t, "monthly-report-2024-01.xlsx", MonthlyFilename("2024-01"))
}
