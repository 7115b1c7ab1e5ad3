package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

func TestToBold(t *testing.T) {
	assert.Equal(t, "𝗔𝗕𝗖", toBold("ABC"))
	assert.Equal(t, "𝗮𝗯𝗰", toBold("abc"))
	assert.Equal(t, "𝟢𝟣𝟤", toBold("012"))
	// Punctuation and emoji pass through
	assert.Equal(t, "📦 𝗦𝘁𝗼𝗰𝗸-𝗜𝗻!", toBold("📦 Stock-In!"))
}

func TestDailyText_AllPlatformsBreakdown(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 5, "2024-01-05"),
			returnEntry(pid, "Widget", 1, "2024-01-05", "Shopee"),
		},
		[]*ledger.Entry{
			outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10"),
			outEntry(pid, "Gadget", 3, "2024-01-05", "Lazada", "10"),
		},
	)
	daily := Daily(snap, "2024-01-05", Filters{})

	text := DailyText(daily, "")

	assert.Contains(t, text, "2024-01-05")
	assert.Contains(t, text, "All Platforms (Breakdown)")
	assert.Contains(t, text, " Shopee\n")
	assert.Contains(t, text, " Lazada\n")
	// Quantities are aggregated per product within each channel
	assert.Contains(t, text, toBold("Widget")+" — 2 pcs")
	assert.Contains(t, text, toBold("Gadget")+" — 3 pcs")
	// Receipts and returns sections carry their totals
	assert.Contains(t, text, toBold("📥 Total Stock In")+"\n\n5")
	assert.Contains(t, text, toBold("🔄 Total Returns")+"\n\n1")
}

func TestDailyText_SinglePlatform(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10"),
		outEntry(pid, "Widget", 4, "2024-01-05", "Shopee", "10"),
	})
	daily := Daily(snap, "2024-01-05", Filters{Platform: "Shopee"})

	text := DailyText(daily, "Shopee")

	assert.Contains(t, text, "Stock Summary (Merged)")
	assert.Contains(t, text, toBold("Widget")+" — 6 pcs")
	assert.NotContains(t, text, "Breakdown")
}

func TestDailyText_NoSales(t *testing.T) {
	daily := Daily(snapshot(nil, nil), "2024-01-05", Filters{})

	text := DailyText(daily, "")

	assert.Contains(t, text, "No sales recorded.")
}

func TestDailyText_ReturnNotesPreserved(t *testing.T) {
	pid := id.New()
	ret := returnEntry(pid, "Widget", 1, "2024-01-05", "Shopee")
	ret.Notes = "damaged box"
	daily := Daily(snapshot([]*ledger.Entry{ret}, nil), "2024-01-05", Filters{})

	text := DailyText(daily, "")

	assert.Contains(t, text, "(Note: damaged box)")
}

func TestDailyText_PlatformsSorted(t *testing.T) {
	pid := id.New()
	snap := snapshot(nil, []*ledger.Entry{
		outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10"),
		outEntry(pid, "Widget", 3, "2024-01-05", "Lazada", "10"),
	})
	daily := Daily(snap, "2024-01-05", Filters{})

	text := DailyText(daily, "")

	assert.Less(t, strings.Index(text, "Lazada"), strings.Index(text, "Shopee"))
}
