package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

func TestNotes_EmptyDayYieldsNoInsight(t *testing.T) {
	report := Daily(snapshot(nil, nil), "2024-01-05", Filters{})

	notes := Notes(report)

	assert.True(t, notes.IsEmpty())
}

func TestNotes_PlatformExtremes(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 6, "2024-01-05", "Shopee", "10"),
		outEntry(pid, "Widget", 2, "2024-01-05", "Lazada", "10"),
		outEntry(pid, "Widget", 4, "2024-01-05", "", "10"), // Unknown bucket
	})

	notes := Notes(Daily(snap, "2024-01-05", Filters{}))

	assert.Equal(t, "Shopee", notes.TopPlatform)
	assert.Equal(t, "Lazada", notes.LowestPlatform)
	assert.Equal(t, "None", notes.HighestReturnProduct)
}

func TestNotes_PlatformFallbackWithoutSales(t *testing.T) {
	pid := id.New()
	// Receipts only: notes exist but platform ranking has no data
	snap := snapshot([]*ledger.Entry{inEntry(pid, "Widget", 5, "2024-01-05")}, nil)

	notes := Notes(Daily(snap, "2024-01-05", Filters{}))

	assert.Equal(t, "N/A", notes.TopPlatform)
	assert.Equal(t, "N/A", notes.LowestPlatform)
}

func TestNotes_ReturnRecommendationWins(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{returnEntry(pid, "Widget", 2, "2024-01-05", "Shopee")},
		[]*ledger.Entry{outEntry(pid, "Widget", 20, "2024-01-05", "Shopee", "10")},
	)

	notes := Notes(Daily(snap, "2024-01-05", Filters{}))

	assert.Equal(t, "Widget", notes.HighestReturnProduct)
	assert.Equal(t, "Investigate quality issues with Widget.", notes.Recommendation)
}

func TestNotes_HighSalesRecommendation(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 6, "2024-01-05", "Shopee", "10"), // 60 > 50
	})

	notes := Notes(Daily(snap, "2024-01-05", Filters{}))

	assert.Equal(t, "Sales are high! Consider restocking popular items.", notes.Recommendation)
}

func TestNotes_DefaultRecommendation(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10"), // 20 <= 50
	})

	notes := Notes(Daily(snap, "2024-01-05", Filters{}))

	assert.Equal(t, "Maintain current stock levels.", notes.Recommendation)
}
