package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/print-shop/ledger/internal/domain/valueobject"
)

// ReportSummary is the derived aggregate of the ledger over a scope. It is
// never persisted.
type ReportSummary struct {
	Scope              valueobject.Scope
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetProfit          decimal.Decimal // TotalIncome - TotalExpenses, exact
	TransactionCount   int
	TopExpenses        []TopExpense
	IncomeByCategory   []CategoryTotal
	ExpensesByCategory []CategoryTotal
	ExpensesByEmployee []EmployeeTotal
}

// TopExpense is one of the largest expense transactions of a scope, with the
// labels a dashboard needs to render it.
type TopExpense struct {
	Transaction  *Transaction
	CategoryName string
	SourceName   string
}

// CategoryTotal is the sum of the transactions of one category within a scope.
type CategoryTotal struct {
	CategoryID       uuid.UUID
	CategoryName     string
	CategoryType     CategoryType
	ParentCategoryID *uuid.UUID
	Total            decimal.Decimal
	TransactionCount int
}

// EmployeeTotal is the sum of expenses attributed to one employee within a
// scope, across categories that require an employee.
type EmployeeTotal struct {
	EmployeeID       uuid.UUID
	Total            decimal.Decimal
	TransactionCount int
}
