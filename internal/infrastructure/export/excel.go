// Package export renders reports into downloadable files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"stockbook/internal/domain/reports"
)

const (
	summarySheet   = "Summary"
	topSheet       = "Top Products"
	platformSheet  = "Platform Performance"
	closingSheet   = "Closing Stock"
	defaultSheet   = "Sheet1"
	monthlyPattern = "monthly-report-%s.xlsx"
)

// MonthlyFilename returns the download filename for a month ("2024-01").
func MonthlyFilename(month string) string {
	return fmt.Sprintf(monthlyPattern, month)
}

// MonthlyWorkbook renders a monthly report into an xlsx workbook and
// writes it to w.
func MonthlyWorkbook(report *reports.MonthlyReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, report); err != nil {
		return err
	}
	if err := writeTopProductsSheet(f, report.TopProducts); err != nil {
		return err
	}
	if err := writePlatformSheet(f, report.PlatformPerformance); err != nil {
		return err
	}
	if err := writeClosingStockSheet(f, report.ClosingStock); err != nil {
		return err
	}

	// Drop the default sheet excelize creates
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func writeSummarySheet(f *excelize.File, report *reports.MonthlyReport) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", summarySheet, err)
	}

	rows := [][]any{
		{"Month", report.Month},
		{"Total Revenue", report.TotalRevenue.InexactFloat64()},
		{"Total Units Sold", report.TotalUnitsSold},
		{"Profit", report.Profit.InexactFloat64()},
		{"Total Returns", report.TotalReturns},
		{"Total Stock In", report.TotalStockIn},
		{"Best Selling Product", report.MonthlyInsights.BestSellingProduct},
		{"Highest Sales Week", report.MonthlyInsights.HighestSalesWeek},
		{"Top Platform", report.MonthlyInsights.HighestGrowthPlatform},
		{"Unusual Returns", report.MonthlyInsights.UnusualReturns},
		{"Recommendations", report.MonthlyInsights.Recommendations},
	}

	return writeRows(f, summarySheet, nil, rows)
}

func writeTopProductsSheet(f *excelize.File, top []reports.TopProduct) error {
	if _, err := f.NewSheet(topSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", topSheet, err)
	}

	rows := make([][]any, 0, len(top))
	for _, p := range top {
		rows = append(rows, []any{p.Name, p.Quantity})
	}

	return writeRows(f, topSheet, []string{"Product", "Units Sold"}, rows)
}

func writePlatformSheet(f *excelize.File, perf []reports.PlatformPerformance) error {
	if _, err := f.NewSheet(platformSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", platformSheet, err)
	}

	rows := make([][]any, 0, len(perf))
	for _, p := range perf {
		rows = append(rows, []any{p.Platform, p.Sales, p.Returns, p.Net, p.Percentage})
	}

	return writeRows(f, platformSheet, []string{"Platform", "Sales", "Returns", "Net", "Share %"}, rows)
}

func writeClosingStockSheet(f *excelize.File, closing []reports.ClosingStockRow) error {
	if _, err := f.NewSheet(closingSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", closingSheet, err)
	}

	rows := make([][]any, 0, len(closing))
	for _, r := range closing {
		rows = append(rows, []any{r.Name, r.Category, r.ClosingStock})
	}

	return writeRows(f, closingSheet, []string{"Product", "Category", "Closing Stock"}, rows)
}

// writeRows writes an optional header row followed by data rows,
// starting at A1.
func writeRows(f *excelize.File, sheet string, header []string, rows [][]any) error {
	rowNum := 1

	if len(header) > 0 {
		cells := make([]any, len(header))
		for i, h := range header {
			cells[i] = h
		}
		if err := setRow(f, sheet, rowNum, cells); err != nil {
			return err
		}
		rowNum++
	}

	for _, row := range rows {
		if err := setRow(f, sheet, rowNum, row); err != nil {
			return err
		}
		rowNum++
	}

	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
