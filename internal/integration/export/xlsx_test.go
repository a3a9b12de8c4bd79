package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/print-shop/ledger/internal/domain/entity"
	"github.com/print-shop/ledger/internal/domain/valueobject"
)

func sampleSummary(t *testing.T) *entity.ReportSummary {
	t.Helper()

	period, err := valueobject.NewPeriod(2024, 5)
	require.NoError(t, err)

	employeeID := uuid.New()
	paper := &entity.Transaction{
		ID:              uuid.New(),
		Type:            entity.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("1200.50"),
		TransactionDate: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		Description:     "A3 paper",
	}
	salary := &entity.Transaction{
		ID:              uuid.New(),
		Type:            entity.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("800"),
		TransactionDate: time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC),
		EmployeeID:      &employeeID,
	}

	return &entity.ReportSummary{
		Scope:            valueobject.MonthScope(period),
		TotalIncome:      decimal.RequireFromString("5000"),
		TotalExpenses:    decimal.RequireFromString("2000.50"),
		NetProfit:        decimal.RequireFromString("2999.50"),
		TransactionCount: 3,
		TopExpenses: []entity.TopExpense{
			{Transaction: paper, CategoryName: "Supplies", SourceName: "Paper Co"},
			{Transaction: salary, CategoryName: "Salaries", SourceName: "Payroll"},
		},
		IncomeByCategory: []entity.CategoryTotal{
			{CategoryID: uuid.New(), CategoryName: "Printing", CategoryType: entity.CategoryTypeIncome, Total: decimal.RequireFromString("5000"), TransactionCount: 1},
		},
		ExpensesByCategory: []entity.CategoryTotal{
			{CategoryID: uuid.New(), CategoryName: "Supplies", CategoryType: entity.CategoryTypeExpense, Total: decimal.RequireFromString("1200.50"), TransactionCount: 1},
			{CategoryID: uuid.New(), CategoryName: "Salaries", CategoryType: entity.CategoryTypeExpense, Total: decimal.RequireFromString("800"), TransactionCount: 1},
		},
		ExpensesByEmployee: []entity.EmployeeTotal{
			{EmployeeID: employeeID, Total: decimal.RequireFromString("800"), TransactionCount: 1},
		},
	}
}

func openWorkbook(t *testing.T, content []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content), excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, name string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

// assertMoney compares the raw numeric value of a money cell, ignoring the
// display format.
func assertMoney(t *testing.T, f *excelize.File, sheet, name, expected string) {
	t.Helper()
	raw := cell(t, f, sheet, name)
	actual, err := decimal.NewFromString(raw)
	require.NoError(t, err, "%s!%s holds %q", sheet, name, raw)
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "%s!%s: expected %s, got %s", sheet, name, expected, raw)
}

func TestXLSXExporterWritesAllSheets(t *testing.T) {
	exporter := NewXLSXExporter(time.UTC)
	summary := sampleSummary(t)

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(context.Background(), &buf, summary))

	f := openWorkbook(t, buf.Bytes())
	assert.Equal(t, []string{SheetSummary, SheetTopExpenses, SheetCategories, SheetEmployees}, f.GetSheetList())

	assert.Equal(t, "May 2024", cell(t, f, SheetSummary, "B2"))
	assertMoney(t, f, SheetSummary, "B3", "5000.00")
	assertMoney(t, f, SheetSummary, "B4", "2000.50")
	assert.Equal(t, "3", cell(t, f, SheetSummary, "B5"))
	assert.Equal(t, "Net profit", cell(t, f, SheetSummary, "A6"))
	assertMoney(t, f, SheetSummary, "B6", "2999.50")

	assert.Equal(t, "2024-05-03", cell(t, f, SheetTopExpenses, "B2"))
	assert.Equal(t, "Supplies", cell(t, f, SheetTopExpenses, "C2"))
	assertMoney(t, f, SheetTopExpenses, "G2", "1200.50")
	assert.Equal(t, summary.ExpensesByEmployee[0].EmployeeID.String(), cell(t, f, SheetTopExpenses, "F3"))

	assert.Equal(t, "Printing", cell(t, f, SheetCategories, "B2"))
	assert.Equal(t, "Income", cell(t, f, SheetCategories, "A3"))
	assert.Equal(t, "Supplies", cell(t, f, SheetCategories, "B5"))
	assertMoney(t, f, SheetCategories, "D7", "2000.50")

	assertMoney(t, f, SheetEmployees, "C2", "800.00")
}

func TestXLSXExporterDatesUseLocation(t *testing.T) {
	exporter := NewXLSXExporter(time.FixedZone("BRT", -3*60*60))
	summary := sampleSummary(t)

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(context.Background(), &buf, summary))

	f := openWorkbook(t, buf.Bytes())
	assert.Equal(t, "2024-05-02", cell(t, f, SheetTopExpenses, "B2"))
}

func TestXLSXExporterAllTimeScope(t *testing.T) {
	summary := &entity.ReportSummary{Scope: valueobject.AllScope()}

	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter(nil).Export(context.Background(), &buf, summary))

	f := openWorkbook(t, buf.Bytes())
	assert.Equal(t, "All time", cell(t, f, SheetSummary, "B2"))
	assertMoney(t, f, SheetSummary, "B6", "0.00")
}

func TestXLSXExporterHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewXLSXExporter(time.UTC).Export(ctx, &buf, sampleSummary(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}
