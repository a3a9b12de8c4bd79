// Package report contains the read-only reporting use cases.
package report

import (
	"container/heap"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// rankedBefore reports whether a ranks ahead of b among top expenses:
// larger amount first, then earlier date, then lower id.
func rankedBefore(a, b *entity.Transaction) bool {
	if c := a.Amount.Cmp(b.Amount); c != 0 {
		return c > 0
	}
	if !a.TransactionDate.Equal(b.TransactionDate) {
		return a.TransactionDate.Before(b.TransactionDate)
	}
	return entity.CompareIDs(a.ID, b.ID) < 0
}

// expenseHeap is a min-heap keyed on rank: the root is the expense that
// would drop out first.
type expenseHeap []*entity.Transaction

func (h expenseHeap) Len() int           { return len(h) }
func (h expenseHeap) Less(i, j int) bool { return rankedBefore(h[j], h[i]) }
func (h expenseHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *expenseHeap) Push(x any) { *h = append(*h, x.(*entity.Transaction)) }

func (h *expenseHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// topK keeps the k best ranked expenses seen so far.
type topK struct {
	k     int
	items expenseHeap
}

func newTopK(k int) *topK {
	return &topK{k: k, items: make(expenseHeap, 0, k+1)}
}

func (t *topK) offer(tx *entity.Transaction) {
	if len(t.items) == t.k && !rankedBefore(tx, t.items[0]) {
		return
	}
	heap.Push(&t.items, tx)
	if len(t.items) > t.k {
		heap.Pop(&t.items)
	}
}

// sorted returns the kept expenses best first.
func (t *topK) sorted() []*entity.Transaction {
	out := make([]*entity.Transaction, len(t.items))
	copy(out, t.items)
	sort.Slice(out, func(i, j int) bool { return rankedBefore(out[i], out[j]) })
	return out
}

// accumulator folds a transaction set into a summary in a single pass.
type accumulator struct {
	categories map[uuid.UUID]*entity.Category
	sources    map[uuid.UUID]*entity.Source

	income    decimal.Decimal
	expenses  decimal.Decimal
	count     int
	byIncome  map[uuid.UUID]*entity.CategoryTotal
	byExpense map[uuid.UUID]*entity.CategoryTotal
	employees map[uuid.UUID]*entity.EmployeeTotal
	top       *topK
}

func newAccumulator(categories []*entity.Category, sources []*entity.Source, k int) *accumulator {
	acc := &accumulator{
		categories: make(map[uuid.UUID]*entity.Category, len(categories)),
		sources:    make(map[uuid.UUID]*entity.Source, len(sources)),
		income:     decimal.Zero,
		expenses:   decimal.Zero,
		byIncome:   make(map[uuid.UUID]*entity.CategoryTotal),
		byExpense:  make(map[uuid.UUID]*entity.CategoryTotal),
		employees:  make(map[uuid.UUID]*entity.EmployeeTotal),
		top:        newTopK(k),
	}
	for _, c := range categories {
		acc.categories[c.ID] = c
	}
	for _, s := range sources {
		acc.sources[s.ID] = s
	}
	return acc
}

func (a *accumulator) add(tx *entity.Transaction) {
	a.count++

	bucket := a.byIncome
	if tx.Type == entity.TransactionTypeExpense {
		bucket = a.byExpense
		a.expenses = a.expenses.Add(tx.Amount)
		a.top.offer(tx)
	} else {
		a.income = a.income.Add(tx.Amount)
	}

	total := a.categoryTotal(bucket, tx.CategoryID)
	total.Total = total.Total.Add(tx.Amount)
	total.TransactionCount++

	category := a.categories[tx.CategoryID]
	if tx.Type == entity.TransactionTypeExpense && category != nil && category.RequiresEmployee && tx.EmployeeID != nil {
		employee, ok := a.employees[*tx.EmployeeID]
		if !ok {
			employee = &entity.EmployeeTotal{EmployeeID: *tx.EmployeeID, Total: decimal.Zero}
			a.employees[*tx.EmployeeID] = employee
		}
		employee.Total = employee.Total.Add(tx.Amount)
		employee.TransactionCount++
	}
}

func (a *accumulator) categoryTotal(bucket map[uuid.UUID]*entity.CategoryTotal, id uuid.UUID) *entity.CategoryTotal {
	if total, ok := bucket[id]; ok {
		return total
	}
	total := &entity.CategoryTotal{CategoryID: id, Total: decimal.Zero}
	if c, ok := a.categories[id]; ok {
		total.CategoryName = c.Name
		total.CategoryType = c.Type
		total.ParentCategoryID = c.ParentCategoryID
	}
	bucket[id] = total
	return total
}

// includeEmpty adds a zero total for every known category without transactions.
func (a *accumulator) includeEmpty() {
	for id, c := range a.categories {
		if c.Type == entity.CategoryTypeExpense {
			a.categoryTotal(a.byExpense, id)
		} else {
			a.categoryTotal(a.byIncome, id)
		}
	}
}

func (a *accumulator) summary() *entity.ReportSummary {
	top := a.top.sorted()
	topExpenses := make([]entity.TopExpense, 0, len(top))
	for _, tx := range top {
		item := entity.TopExpense{Transaction: tx}
		if c, ok := a.categories[tx.CategoryID]; ok {
			item.CategoryName = c.Name
		}
		if s, ok := a.sources[tx.SourceID]; ok {
			item.SourceName = s.Name
		}
		topExpenses = append(topExpenses, item)
	}

	employees := make([]entity.EmployeeTotal, 0, len(a.employees))
	for _, e := range a.employees {
		employees = append(employees, *e)
	}
	sort.Slice(employees, func(i, j int) bool {
		if c := employees[i].Total.Cmp(employees[j].Total); c != 0 {
			return c > 0
		}
		return entity.CompareIDs(employees[i].EmployeeID, employees[j].EmployeeID) < 0
	})

	return &entity.ReportSummary{
		TotalIncome:        a.income,
		TotalExpenses:      a.expenses,
		NetProfit:          a.income.Sub(a.expenses),
		TransactionCount:   a.count,
		TopExpenses:        topExpenses,
		IncomeByCategory:   sortedTotals(a.byIncome),
		ExpensesByCategory: sortedTotals(a.byExpense),
		ExpensesByEmployee: employees,
	}
}

// sortedTotals orders totals descending, breaking ties by name then id.
func sortedTotals(bucket map[uuid.UUID]*entity.CategoryTotal) []entity.CategoryTotal {
	totals := make([]entity.CategoryTotal, 0, len(bucket))
	for _, t := range bucket {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Total.Cmp(totals[j].Total); c != 0 {
			return c > 0
		}
		if totals[i].CategoryName != totals[j].CategoryName {
			return totals[i].CategoryName < totals[j].CategoryName
		}
		return entity.CompareIDs(totals[i].CategoryID, totals[j].CategoryID) < 0
	})
	return totals
}
