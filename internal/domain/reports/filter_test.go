package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

func TestApplyFilters_TypeOutClearsStockIn(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{inEntry(pid, "Widget", 5, "2024-01-05")},
		[]*ledger.Entry{outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10")},
	)

	stockIn, stockOut := applyFilters(snap, onDate("2024-01-05"), Filters{Type: TypeOut})

	assert.Empty(t, stockIn)
	assert.Len(t, stockOut, 1)
}

func TestApplyFilters_TypeInKeepsOnlyReceipts(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 5, "2024-01-05"),
			returnEntry(pid, "Widget", 1, "2024-01-05", "Shopee"),
		},
		[]*ledger.Entry{outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10")},
	)

	stockIn, stockOut := applyFilters(snap, onDate("2024-01-05"), Filters{Type: TypeIn})

	assert.Empty(t, stockOut)
	assert.Len(t, stockIn, 1)
	assert.Equal(t, ledger.KindIn, stockIn[0].Kind)
}

func TestApplyFilters_TypeReturnKeepsOnlyReturns(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 5, "2024-01-05"),
			returnEntry(pid, "Widget", 1, "2024-01-05", "Shopee"),
		},
		[]*ledger.Entry{outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10")},
	)

	stockIn, stockOut := applyFilters(snap, onDate("2024-01-05"), Filters{Type: TypeReturn})

	assert.Empty(t, stockOut)
	assert.Len(t, stockIn, 1)
	assert.Equal(t, ledger.KindReturn, stockIn[0].Kind)
}

func TestApplyFilters_PlatformAsymmetry(t *testing.T) {
	pid := id.New()
	// Plain stock-in has no channel and must survive platform filtering;
	// a return on another channel must not.
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 5, "2024-01-05"),
			returnEntry(pid, "Widget", 1, "2024-01-05", "Lazada"),
			returnEntry(pid, "Widget", 2, "2024-01-05", "Shopee"),
		},
		[]*ledger.Entry{
			outEntry(pid, "Widget", 2, "2024-01-05", "Shopee", "10"),
			outEntry(pid, "Widget", 3, "2024-01-05", "Lazada", "10"),
		},
	)

	stockIn, stockOut := applyFilters(snap, onDate("2024-01-05"), Filters{Platform: "Shopee"})

	assert.Len(t, stockOut, 1)
	assert.Equal(t, "Shopee", stockOut[0].Platform)

	assert.Len(t, stockIn, 2)
	assert.Equal(t, ledger.KindIn, stockIn[0].Kind)
	assert.Equal(t, "Shopee", stockIn[1].Platform)
}

func TestApplyFilters_ProductRestrictsBothCollections(t *testing.T) {
	p1, p2 := id.New(), id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(p1, "Widget", 5, "2024-01-05"),
			inEntry(p2, "Gadget", 7, "2024-01-05"),
		},
		[]*ledger.Entry{
			outEntry(p1, "Widget", 2, "2024-01-05", "Shopee", "10"),
			outEntry(p2, "Gadget", 3, "2024-01-05", "Shopee", "10"),
		},
	)

	stockIn, stockOut := applyFilters(snap, onDate("2024-01-05"), Filters{ProductID: p1})

	assert.Len(t, stockIn, 1)
	assert.Len(t, stockOut, 1)
	assert.Equal(t, p1, stockIn[0].ProductID)
	assert.Equal(t, p1, stockOut[0].ProductID)
}

func TestApplyFilters_MonthIsTextualPrefix(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 5, "2024-01-31"),
			inEntry(pid, "Widget", 5, "2024-02-01"),
			inEntry(pid, "Widget", 5, "31/01/2024"), // wrong format never matches
		},
		nil,
	)

	stockIn, _ := applyFilters(snap, inMonth("2024-01"), Filters{})

	assert.Len(t, stockIn, 1)
	assert.Equal(t, "2024-01-31", stockIn[0].Date)
}

func TestApplyFilters_NilSnapshot(t *testing.T) {
	stockIn, stockOut := applyFilters(nil, onDate("2024-01-05"), Filters{})

	assert.NotNil(t, stockIn)
	assert.NotNil(t, stockOut)
	assert.Empty(t, stockIn)
	assert.Empty(t, stockOut)
}
