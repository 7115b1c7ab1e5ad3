package reports

import (
	"github.com/shopspring/decimal"

	"stockbook/internal/domain/ledger"
)

// salesHighThreshold triggers the restock recommendation.
var salesHighThreshold = decimal.NewFromInt(50)

// Notes derives observations from an already-computed daily report.
// A day with no movements at all yields the empty value: no insight
// available.
func Notes(daily *DailyReport) DailyNotes {
	if daily == nil || (len(daily.StockIn) == 0 && len(daily.StockOut) == 0) {
		return DailyNotes{}
	}

	// Units sold per channel, first-occurrence order for tie-breaks
	platformSales := make(map[string]int)
	order := make([]string, 0)
	for _, e := range daily.StockOut {
		key := platformOrUnknown(e.Platform)
		if _, seen := platformSales[key]; !seen {
			order = append(order, key)
		}
		platformSales[key] += e.Quantity
	}

	topPlatform, lowestPlatform := "N/A", "N/A"
	if len(order) > 0 {
		topPlatform, lowestPlatform = order[0], order[0]
		for _, key := range order[1:] {
			if platformSales[key] > platformSales[topPlatform] {
				topPlatform = key
			}
			if platformSales[key] < platformSales[lowestPlatform] {
				lowestPlatform = key
			}
		}
	}

	// Product with the most returned units
	returnCounts := make(map[string]int)
	returnOrder := make([]string, 0)
	for _, e := range daily.StockIn {
		if e.Kind != ledger.KindReturn {
			continue
		}
		if _, seen := returnCounts[e.ProductName]; !seen {
			returnOrder = append(returnOrder, e.ProductName)
		}
		returnCounts[e.ProductName] += e.Quantity
	}
	highestReturnProduct := "None"
	for _, name := range returnOrder {
		if highestReturnProduct == "None" || returnCounts[name] > returnCounts[highestReturnProduct] {
			highestReturnProduct = name
		}
	}

	recommendation := "Maintain current stock levels."
	if highestReturnProduct != "None" {
		recommendation = "Investigate quality issues with " + highestReturnProduct + "."
	} else if daily.TotalSales.GreaterThan(salesHighThreshold) {
		recommendation = "Sales are high! Consider restocking popular items."
	}

	return DailyNotes{
		TopPlatform:          topPlatform,
		LowestPlatform:       lowestPlatform,
		HighestReturnProduct: highestReturnProduct,
		Recommendation:       recommendation,
	}
}
