package reports

import (
	"fmt"
	"sort"
	"strings"

	"stockbook/internal/domain/ledger"
)

const textSeparator = "----------------------------------------\n"

// DailyText renders a daily report as a shareable plain-text summary.
// Headings use the Unicode sans-serif bold alphabet so the text keeps
// its emphasis when pasted into chat apps. An empty platform means the
// report covers all channels and gets a per-channel breakdown.
func DailyText(daily *DailyReport, platform string) string {
	var b strings.Builder

	b.WriteString(toBold("📅 DAILY STOCK REPORT"))
	b.WriteString(" – ")
	b.WriteString(daily.Date)
	b.WriteString("\n\n")

	if platform == "" {
		b.WriteString(toBold("🏷️ Platform:"))
		b.WriteString(" All Platforms (Breakdown)\n\n")

		platforms := uniquePlatforms(daily.StockOut)
		if len(platforms) == 0 {
			b.WriteString(toBold("📦 Stock Summary"))
			b.WriteString("\nNo sales recorded.\n\n")
		} else {
			for _, p := range platforms {
				rows := keepCopy(daily.StockOut, func(e *ledger.Entry) bool {
					return platformOrUnknown(e.Platform) == p
				})
				if len(rows) == 0 {
					continue
				}
				b.WriteString(textSeparator)
				b.WriteString(toBold("🏷️ Platform:"))
				b.WriteString(" ")
				b.WriteString(p)
				b.WriteString("\n")
				b.WriteString(toBold("📦 Stock Summary"))
				b.WriteString("\n\n")
				b.WriteString(strings.Join(aggregateByProduct(rows), "\n\n"))
				b.WriteString("\n\n")
			}
			b.WriteString(textSeparator)
		}
	} else {
		b.WriteString(toBold("🏷️ Platform:"))
		b.WriteString(" ")
		b.WriteString(platform)
		b.WriteString("\n")
		b.WriteString(toBold("📦 Stock Summary (Merged)"))
		b.WriteString("\n\n")

		lines := aggregateByProduct(daily.StockOut)
		if len(lines) > 0 {
			b.WriteString(strings.Join(lines, "\n\n"))
		} else {
			b.WriteString("No sales recorded.")
		}
		b.WriteString("\n\n")
	}

	receipts := keepCopy(daily.StockIn, func(e *ledger.Entry) bool { return e.Kind == ledger.KindIn })
	returns := keepCopy(daily.StockIn, func(e *ledger.Entry) bool { return e.Kind == ledger.KindReturn })

	b.WriteString(textSeparator)
	b.WriteString(toBold("📥 Total Stock In"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d\n\n", daily.TotalStockIn)
	if lines := aggregateByProduct(receipts); len(lines) > 0 {
		b.WriteString(strings.Join(lines, "\n\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(textSeparator)
	b.WriteString(toBold("🔄 Total Returns"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d\n\n", daily.TotalReturns)
	if lines := formatReturns(returns); len(lines) > 0 {
		b.WriteString(strings.Join(lines, "\n\n"))
	}

	return b.String()
}

// aggregateByProduct sums quantities per product name into display lines.
func aggregateByProduct(entries []*ledger.Entry) []string {
	sums := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		name := e.ProductName
		if name == "" {
			name = "Unknown Product"
		}
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += e.Quantity
	}

	lines := make([]string, 0, len(order))
	for _, name := range order {
		lines = append(lines, fmt.Sprintf("%s — %d pcs", toBold(name), sums[name]))
	}
	return lines
}

// formatReturns lists return rows individually so their notes survive.
func formatReturns(entries []*ledger.Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.ProductName
		if name == "" {
			name = "Unknown Product"
		}
		note := ""
		if e.Notes != "" {
			note = fmt.Sprintf(" (Note: %s)", e.Notes)
		}
		lines = append(lines, fmt.Sprintf("%s — %d pcs%s", toBold(name), e.Quantity, note))
	}
	return lines
}

// uniquePlatforms collects the distinct channels of the rows, sorted.
func uniquePlatforms(entries []*ledger.Entry) []string {
	seen := make(map[string]bool)
	platforms := make([]string, 0)
	for _, e := range entries {
		key := platformOrUnknown(e.Platform)
		if !seen[key] {
			seen[key] = true
			platforms = append(platforms, key)
		}
	}
	sort.Strings(platforms)
	return platforms
}

// keepCopy filters into a fresh slice, leaving the input untouched.
func keepCopy(entries []*ledger.Entry, pred func(*ledger.Entry) bool) []*ledger.Entry {
	out := make([]*ledger.Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil && pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Unicode sans-serif bold offsets relative to ASCII.
const (
	boldUpperBase = 0x1D5D4 // 𝗔
	boldLowerBase = 0x1D5EE // 𝗮
	boldDigitBase = 0x1D7E2 // 𝟢
)

// toBold maps ASCII letters and digits to their sans-serif bold
// codepoints. Everything else passes through unchanged.
func toBold(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(boldUpperBase + (r - 'A'))
		case r >= 'a' && r <= 'z':
			b.WriteRune(boldLowerBase + (r - 'a'))
		case r >= '0' && r <= '9':
			b.WriteRune(boldDigitBase + (r - '0'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
