package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

func TestPerProduct_DescendingDateOrder(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{inEntry(pid, "Widget", 10, "2024-01-05")},
		[]*ledger.Entry{outEntry(pid, "Widget", 3, "2024-01-10", "Shopee", "10")},
	)

	report := PerProduct(snap, pid, "")

	require.Len(t, report.Transactions, 2)
	assert.Equal(t, ledger.KindOut, report.Transactions[0].Kind)
	assert.Equal(t, ledger.KindIn, report.Transactions[1].Kind)
	assert.Equal(t, 10, report.TotalIn)
	assert.Equal(t, 3, report.TotalOut)
}

func TestPerProduct_TotalInCountsReturnsToo(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 10, "2024-01-05"),
			returnEntry(pid, "Widget", 2, "2024-01-08", "Shopee"),
		},
		nil,
	)

	report := PerProduct(snap, pid, "")

	// Every row in the stock-in collection counts, regardless of kind
	assert.Equal(t, 12, report.TotalIn)
}

func TestPerProduct_PlatformFiltersListAndTotalOut(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{
			inEntry(pid, "Widget", 10, "2024-01-05"),
			returnEntry(pid, "Widget", 2, "2024-01-08", "Lazada"),
		},
		[]*ledger.Entry{
			outEntry(pid, "Widget", 3, "2024-01-10", "Shopee", "10"),
			outEntry(pid, "Widget", 4, "2024-01-11", "Lazada", "10"),
		},
	)

	report := PerProduct(snap, pid, "Shopee")

	// Receipt kept (exempt), Lazada return and Lazada sale dropped
	require.Len(t, report.Transactions, 2)
	assert.Equal(t, ledger.KindOut, report.Transactions[0].Kind)
	assert.Equal(t, ledger.KindIn, report.Transactions[1].Kind)

	// TotalIn stays unfiltered, TotalOut honors the platform
	assert.Equal(t, 12, report.TotalIn)
	assert.Equal(t, 3, report.TotalOut)
}

func TestPerProduct_IgnoresOtherProducts(t *testing.T) {
	p1, p2 := id.New(), id.New()
	snap := snapshot(
		[]*ledger.Entry{inEntry(p2, "Gadget", 7, "2024-01-05")},
		[]*ledger.Entry{outEntry(p1, "Widget", 3, "2024-01-10", "Shopee", "10")},
	)

	report := PerProduct(snap, p1, "")

	require.Len(t, report.Transactions, 1)
	assert.Equal(t, p1, report.Transactions[0].ProductID)
	assert.Zero(t, report.TotalIn)
	assert.Equal(t, 3, report.TotalOut)
}

func TestPerProduct_UnparsableDatesSortLast(t *testing.T) {
	pid := id.New()
	snap := snapshot(
		[]*ledger.Entry{inEntry(pid, "Widget", 10, "bad-date")},
		[]*ledger.Entry{outEntry(pid, "Widget", 3, "2024-01-10", "Shopee", "10")},
	)

	report := PerProduct(snap, pid, "")

	require.Len(t, report.Transactions, 2)
	assert.Equal(t, "2024-01-10", report.Transactions[0].Date)
	assert.Equal(t, "bad-date", report.Transactions[1].Date)
}

func TestPerProduct_NilInputs(t *testing.T) {
	report := PerProduct(nil, id.New(), "")
	assert.NotNil(t, report)
	assert.Empty(t, report.Transactions)

	report = PerProduct(snapshot(nil, nil), id.Nil, "")
	assert.Empty(t, report.Transactions)
	assert.Zero(t, report.TotalIn)
	assert.Zero(t, report.TotalOut)
}
