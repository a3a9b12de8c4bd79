// Package export renders ledger summaries into downloadable documents.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
)

const (
	SheetSummary     = "Summary"
	SheetTopExpenses = "Top expenses"
	SheetCategories  = "By category"
	SheetEmployees   = "By employee"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	moneyFormat     = "#,##0.00"
)

// XLSXExporter renders a summary as an Excel workbook with one sheet per section.
type XLSXExporter struct {
	location *time.Location
}

var _ adapter.SummaryExporter = (*XLSXExporter)(nil)

// NewXLSXExporter creates an exporter that prints transaction dates in loc.
func NewXLSXExporter(loc *time.Location) *XLSXExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &XLSXExporter{location: loc}
}

// ContentType implements adapter.SummaryExporter.
func (e *XLSXExporter) ContentType() string { return xlsxContentType }

// FileExtension implements adapter.SummaryExporter.
func (e *XLSXExporter) FileExtension() string { return "xlsx" }

// Export implements adapter.SummaryExporter.
func (e *XLSXExporter) Export(ctx context.Context, w io.Writer, summary *entity.ReportSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetTopExpenses, SheetCategories, SheetEmployees} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}

	writers := []func(*excelize.File, sheetStyles, *entity.ReportSummary) error{
		writeSummarySheet,
		e.writeTopExpensesSheet,
		writeCategorySheet,
		writeEmployeeSheet,
	}
	for _, write := range writers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := write(f, styles, summary); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type sheetStyles struct {
	header int
	data   int
	money  int
	total  int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	format := moneyFormat

	var (
		s   sheetStyles
		err error
	)
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}
	if s.data, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	}); err != nil {
		return s, fmt.Errorf("failed to create data style: %w", err)
	}
	if s.money, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       border,
		CustomNumFmt: &format,
	}); err != nil {
		return s, fmt.Errorf("failed to create money style: %w", err)
	}
	if s.total, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border:       border,
		CustomNumFmt: &format,
	}); err != nil {
		return s, fmt.Errorf("failed to create total style: %w", err)
	}
	return s, nil
}

// row writes values left to right starting at column A.
// decimal.Decimal values are written as numbers with the money style. The
// float64 is display-only: amounts fit decimal(15,2) and the ledger never
// reads them back from a workbook.
func row(f *excelize.File, sheet string, r int, style int, styles sheetStyles, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, r)
		if err != nil {
			return err
		}
		cellStyle := style
		if d, ok := v.(decimal.Decimal); ok {
			if err := f.SetCellFloat(sheet, cell, d.InexactFloat64(), 2, 64); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
			if style == styles.data {
				cellStyle = styles.money
			}
		} else if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, cellStyle); err != nil {
			return fmt.Errorf("failed to style %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func widths(f *excelize.File, sheet string, cols ...float64) error {
	for i, width := range cols {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func scopeLabel(summary *entity.ReportSummary) string {
	if p, ok := summary.Scope.Period(); ok {
		return p.Label()
	}
	return "All time"
}

func writeSummarySheet(f *excelize.File, s sheetStyles, summary *entity.ReportSummary) error {
	if err := widths(f, SheetSummary, 20, 20); err != nil {
		return err
	}
	rows := [][]any{
		{"Scope", scopeLabel(summary)},
		{"Total income", summary.TotalIncome},
		{"Total expenses", summary.TotalExpenses},
		{"Transactions", summary.TransactionCount},
	}
	if err := row(f, SheetSummary, 1, s.header, s, "Metric", "Value"); err != nil {
		return err
	}
	for i, values := range rows {
		if err := row(f, SheetSummary, i+2, s.data, s, values...); err != nil {
			return err
		}
	}
	return row(f, SheetSummary, len(rows)+2, s.total, s, "Net profit", summary.NetProfit)
}

func (e *XLSXExporter) writeTopExpensesSheet(f *excelize.File, s sheetStyles, summary *entity.ReportSummary) error {
	if err := widths(f, SheetTopExpenses, 6, 12, 24, 24, 36, 38, 14); err != nil {
		return err
	}
	if err := row(f, SheetTopExpenses, 1, s.header, s,
		"Rank", "Date", "Category", "Source", "Description", "Employee", "Amount"); err != nil {
		return err
	}
	for i, top := range summary.TopExpenses {
		tx := top.Transaction
		employee := ""
		if tx.EmployeeID != nil {
			employee = tx.EmployeeID.String()
		}
		if err := row(f, SheetTopExpenses, i+2, s.data, s,
			i+1,
			tx.TransactionDate.In(e.location).Format("2006-01-02"),
			top.CategoryName,
			top.SourceName,
			tx.Description,
			employee,
			tx.Amount,
		); err != nil {
			return err
		}
	}
	return nil
}

func writeCategorySheet(f *excelize.File, s sheetStyles, summary *entity.ReportSummary) error {
	if err := widths(f, SheetCategories, 10, 28, 14, 14); err != nil {
		return err
	}
	if err := row(f, SheetCategories, 1, s.header, s, "Type", "Category", "Transactions", "Total"); err != nil {
		return err
	}

	r := 2
	sections := []struct {
		totals []entity.CategoryTotal
		label  string
		sum    decimal.Decimal
	}{
		{summary.IncomeByCategory, "Income", summary.TotalIncome},
		{summary.ExpensesByCategory, "Expenses", summary.TotalExpenses},
	}
	for _, section := range sections {
		count := 0
		for _, t := range section.totals {
			if err := row(f, SheetCategories, r, s.data, s, string(t.CategoryType), t.CategoryName, t.TransactionCount, t.Total); err != nil {
				return err
			}
			count += t.TransactionCount
			r++
		}
		if err := row(f, SheetCategories, r, s.total, s, section.label, "Total", count, section.sum); err != nil {
			return err
		}
		r += 2
	}
	return nil
}

func writeEmployeeSheet(f *excelize.File, s sheetStyles, summary *entity.ReportSummary) error {
	if err := widths(f, SheetEmployees, 38, 14, 14); err != nil {
		return err
	}
	if err := row(f, SheetEmployees, 1, s.header, s, "Employee", "Transactions", "Total"); err != nil {
		return err
	}
	for i, t := range summary.ExpensesByEmployee {
		if err := row(f, SheetEmployees, i+2, s.data, s, t.EmployeeID.String(), t.TransactionCount, t.Total); err != nil {
			return err
		}
	}
	return nil
}
