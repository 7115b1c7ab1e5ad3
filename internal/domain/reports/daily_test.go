package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

func TestDaily_RevenueRoundTrip(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 3, "2024-01-05", "Shopee", "10"),
	})

	report := Daily(snap, "2024-01-05", Filters{})

	assert.True(t, report.TotalSales.Equal(decimalFromInt(30)), "got %s", report.TotalSales)
	assert.Equal(t, 3, report.TotalStockOut)
}

func TestDaily_MissingPriceCountsAsZero(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 3, "2024-01-05", "Shopee", ""),
		outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "5"),
	})

	report := Daily(snap, "2024-01-05", Filters{})

	assert.True(t, report.TotalSales.Equal(decimalFromInt(10)), "got %s", report.TotalSales)
	assert.Equal(t, 5, report.TotalStockOut)
}

func TestDaily_SeparatesReceiptsAndReturns(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 10, "2024-01-05"),
			returnEntry(pid, "Widget", 2, "2024-01-05", "Shopee"),
		},
		nil,
	)

	report := Daily(snap, "2024-01-05", Filters{})

	assert.Equal(t, 10, report.TotalStockIn)
	assert.Equal(t, 2, report.TotalReturns)
}

func TestDaily_ExactDateMatchOnly(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 3, "2024-01-05", "Shopee", "10"),
		outEntry(pid, "Widget", 4, "2024-01-06", "Shopee", "10"),
	})

	report := Daily(snap, "2024-01-05", Filters{})

	require.Len(t, report.StockOut, 1)
	assert.Equal(t, "2024-01-05", report.StockOut[0].Date)
}

func TestDaily_Totality(t *testing.T) {
	// Report generation never fails: every malformed input shape yields
	// a fully-zeroed renderable report.
	for name, snap := range map[string]*ledger.Snapshot{
		"nil snapshot":    nil,
		"empty snapshot":  {},
		"nil collections": {StockIn: nil, StockOut: nil},
		"nil rows":        {StockIn: []*ledger.Entry{nil}, StockOut: []*ledger.Entry{nil}},
	} {
		report := Daily(snap, "2024-01-05", Filters{})

		assert.NotNil(t, report, name)
		assert.NotNil(t, report.StockIn, name)
		assert.NotNil(t, report.StockOut, name)
		assert.True(t, report.TotalSales.IsZero(), name)
		assert.Zero(t, report.TotalStockOut, name)
		assert.Zero(t, report.TotalReturns, name)
		assert.Zero(t, report.TotalStockIn, name)
	}
}
