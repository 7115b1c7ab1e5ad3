package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/catalog/product"
	"stockbook/internal/domain/ledger"
)

func TestBuildDashboard_EmptyInputs(t *testing.T) {
	d := BuildDashboard(nil, snapshot(nil, nil), time.Now())

	assert.Zero(t, d.TotalProducts)
	assert.Zero(t, d.LowStockCount)
	assert.Zero(t, d.TotalStockIn)
	assert.Zero(t, d.TotalStockOut)
	assert.Len(t, d.HourlyTrend, 24)
	assert.Empty(t, d.TopWeek)
	assert.Empty(t, d.TopMonth)
}

func TestBuildDashboard_LowStockThreshold(t *testing.T) {
	products := []*product.Product{
		testProduct("A", "Toys", "1", 9),  // below
		testProduct("B", "Toys", "1", 10), // at threshold: not low
		testProduct("C", "Toys", "1", 0),  // below
	}

	d := BuildDashboard(products, nil, time.Now())

	assert.Equal(t, 3, d.TotalProducts)
	assert.Equal(t, 2, d.LowStockCount)
}

func TestBuildDashboard_EntryCounts(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 5, "2024-01-05"),
			returnEntry(pid, "Widget", 1, "2024-01-06", "Shopee"),
		},
		[]*ledger.Entry{outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10")},
	)

	d := BuildDashboard(nil, snap, time.Now())

	assert.Equal(t, 2, d.TotalStockIn)
	assert.Equal(t, 1, d.TotalStockOut)
}

func TestBuildDashboard_HourlyTrend(t *testing.T) {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	pid := id.New()

	// Entry created just now: its ID embeds the current instant
	e := outEntry(pid, "Widget", 3, today, "Shopee", "10")
	d := BuildDashboard(nil, snapshot(nil, []*ledger.Entry{e}), now)

	hour := id.Timestamp(e.ID).In(now.Location()).Hour()
	assert.True(t, d.HourlyTrend[hour].Sales.Equal(decimalFromInt(30)))

	total := decimalFromInt(0)
	for _, p := range d.HourlyTrend {
		total = total.Add(p.Sales)
	}
	assert.True(t, total.Equal(decimalFromInt(30)))
}

func TestBuildDashboard_HourlyTrendIgnoresOtherDates(t *testing.T) {
	now := time.Now().UTC()
	pid := id.New()
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	d := BuildDashboard(nil, snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 3, yesterday, "Shopee", "10"),
	}), now)

	for _, p := range d.HourlyTrend {
		assert.True(t, p.Sales.IsZero())
	}
}

func TestBuildDashboard_TrailingWindows(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	pid := id.New()

	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Recent", 5, "2024-03-18", "Shopee", "10"),   // within 7d and 30d
		outEntry(pid, "MidMonth", 8, "2024-03-01", "Shopee", "10"), // within 30d only
		outEntry(pid, "Old", 9, "2024-01-01", "Shopee", "10"),      // outside both
	})

	d := BuildDashboard(nil, snap, now)

	require.Len(t, d.TopWeek, 1)
	assert.Equal(t, "Recent", d.TopWeek[0].Name)

	require.Len(t, d.TopMonth, 2)
	assert.Equal(t, "MidMonth", d.TopMonth[0].Name)
	assert.Equal(t, "Recent", d.TopMonth[1].Name)
}
