package dto

import (
	"time"

	"github.com/print-shop/ledger/internal/domain/entity"
	"github.com/print-shop/ledger/internal/domain/valueobject"
)

// SummaryResponse represents a ledger summary in API responses.
type SummaryResponse struct {
	Scope              ScopeResponse           `json:"scope"`
	TotalIncome        string                  `json:"total_income"`
	TotalExpenses      string                  `json:"total_expenses"`
	NetProfit          string                  `json:"net_profit"`
	TransactionCount   int                     `json:"transaction_count"`
	TopExpenses        []TopExpenseResponse    `json:"top_expenses"`
	IncomeByCategory   []CategoryTotalResponse `json:"income_by_category"`
	ExpensesByCategory []CategoryTotalResponse `json:"expenses_by_category"`
	ExpensesByEmployee []EmployeeTotalResponse `json:"expenses_by_employee"`
}

// ScopeResponse describes the period a summary covers.
type ScopeResponse struct {
	Kind  string `json:"kind"`
	Year  int    `json:"year,omitempty"`
	Month int    `json:"month,omitempty"`
	Label string `json:"label"`
}

// TopExpenseResponse is one of the largest expenses of a summary.
type TopExpenseResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	CategoryName string              `json:"category_name"`
	SourceName   string              `json:"source_name"`
}

// CategoryTotalResponse is the total of one category.
type CategoryTotalResponse struct {
	CategoryID       string  `json:"category_id"`
	CategoryName     string  `json:"category_name"`
	ParentCategoryID *string `json:"parent_category_id"`
	Total            string  `json:"total"`
	TransactionCount int     `json:"transaction_count"`
}

// EmployeeTotalResponse is the total paid to one employee.
type EmployeeTotalResponse struct {
	EmployeeID       string `json:"employee_id"`
	Total            string `json:"total"`
	TransactionCount int    `json:"transaction_count"`
}

// PeriodResponse is a month that has at least one transaction.
type PeriodResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
}

// PeriodListResponse represents the response for listing active periods.
type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// ToScopeResponse converts a Scope to a ScopeResponse DTO.
func ToScopeResponse(scope valueobject.Scope) ScopeResponse {
	response := ScopeResponse{Kind: string(scope.Kind()), Label: "All time"}
	if p, ok := scope.Period(); ok {
		response.Year = p.Year
		response.Month = int(p.Month)
		response.Label = p.Label()
	}
	return response
}

// ToSummaryResponse converts a ReportSummary to a SummaryResponse DTO.
func ToSummaryResponse(summary *entity.ReportSummary, loc *time.Location) SummaryResponse {
	response := SummaryResponse{
		Scope:              ToScopeResponse(summary.Scope),
		TotalIncome:        summary.TotalIncome.StringFixed(2),
		TotalExpenses:      summary.TotalExpenses.StringFixed(2),
		NetProfit:          summary.NetProfit.StringFixed(2),
		TransactionCount:   summary.TransactionCount,
		TopExpenses:        make([]TopExpenseResponse, 0, len(summary.TopExpenses)),
		IncomeByCategory:   toCategoryTotals(summary.IncomeByCategory),
		ExpensesByCategory: toCategoryTotals(summary.ExpensesByCategory),
		ExpensesByEmployee: make([]EmployeeTotalResponse, 0, len(summary.ExpensesByEmployee)),
	}

	for _, top := range summary.TopExpenses {
		response.TopExpenses = append(response.TopExpenses, TopExpenseResponse{
			Transaction:  ToTransactionResponse(top.Transaction, loc),
			CategoryName: top.CategoryName,
			SourceName:   top.SourceName,
		})
	}
	for _, emp := range summary.ExpensesByEmployee {
		response.ExpensesByEmployee = append(response.ExpensesByEmployee, EmployeeTotalResponse{
			EmployeeID:       emp.EmployeeID.String(),
			Total:            emp.Total.StringFixed(2),
			TransactionCount: emp.TransactionCount,
		})
	}

	return response
}

func toCategoryTotals(totals []entity.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		var parentID *string
		if t.ParentCategoryID != nil {
			id := t.ParentCategoryID.String()
			parentID = &id
		}
		out = append(out, CategoryTotalResponse{
			CategoryID:       t.CategoryID.String(),
			CategoryName:     t.CategoryName,
			ParentCategoryID: parentID,
			Total:            t.Total.StringFixed(2),
			TransactionCount: t.TransactionCount,
		})
	}
	return out
}

// ToPeriodListResponse converts active periods to a PeriodListResponse DTO.
func ToPeriodListResponse(periods []valueobject.Period) PeriodListResponse {
	response := PeriodListResponse{
		Periods: make([]PeriodResponse, 0, len(periods)),
	}
	for _, p := range periods {
		response.Periods = append(response.Periods, PeriodResponse{
			Year:  p.Year,
			Month: int(p.Month),
			Label: p.Label(),
		})
	}
	return response
}
