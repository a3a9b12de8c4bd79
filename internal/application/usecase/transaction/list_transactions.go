package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
	"github.com/print-shop/ledger/internal/domain/valueobject"
)

// ListTransactionsOutput represents the output of a ledger listing.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase selects ledger entries by month, by year or without
// bounds. Results are ordered by transaction date descending, then id ascending.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	location        *time.Location
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
// Calendar months and years are resolved in loc.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, loc *time.Location) *ListTransactionsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		location:        loc,
	}
}

// ByMonth returns the transactions dated within one calendar month.
func (uc *ListTransactionsUseCase) ByMonth(ctx context.Context, period valueobject.Period) (*ListTransactionsOutput, error) {
	start, end := period.Bounds(uc.location)
	return uc.byRange(ctx, start, end)
}

// ByYear returns the transactions dated within one calendar year.
func (uc *ListTransactionsUseCase) ByYear(ctx context.Context, year int) (*ListTransactionsOutput, error) {
	if err := valueobject.ValidateYear(year); err != nil {
		return nil, err
	}
	start, end := valueobject.YearBounds(year, uc.location)
	return uc.byRange(ctx, start, end)
}

// All returns every transaction of the ledger.
func (uc *ListTransactionsUseCase) All(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}

// ByScope dispatches to ByMonth or All.
func (uc *ListTransactionsUseCase) ByScope(ctx context.Context, scope valueobject.Scope) (*ListTransactionsOutput, error) {
	if period, ok := scope.Period(); ok {
		return uc.ByMonth(ctx, period)
	}
	return uc.All(ctx)
}

func (uc *ListTransactionsUseCase) byRange(ctx context.Context, start, end time.Time) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}
