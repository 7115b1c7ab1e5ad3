package reports

import (
	"github.com/shopspring/decimal"

	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/ledger"
)

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// Test fixtures: compact builders for ledger entries.

func outEntry(productID id.ID, name string, qty int, date, platform string, price string) *ledger.Entry {
	e := ledger.NewEntry(ledger.KindOut, productID, name, qty, date)
	e.Platform = platform
	if price != "" {
		p := types.MustMoney(price)
		e.SellingPriceAtTime = &p
	}
	return e
}

func inEntry(productID id.ID, name string, qty int, date string) *ledger.Entry {
	return ledger.NewEntry(ledger.KindIn, productID, name, qty, date)
}

func returnEntry(productID id.ID, name string, qty int, date, platform string) *ledger.Entry {
	e := ledger.NewEntry(ledger.KindReturn, productID, name, qty, date)
	e.Platform = platform
	return e
}

func snapshot(stockIn, stockOut []*ledger.Entry) *ledger.Snapshot {
	return &ledger.Snapshot{StockIn: stockIn, StockOut: stockOut}
}
