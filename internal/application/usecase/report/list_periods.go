package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/valueobject"
)

// ListActivePeriodsUseCase lists the calendar months that hold at least one
// transaction, newest first.
type ListActivePeriodsUseCase struct {
	transactionRepo adapter.TransactionRepository
	location        *time.Location
}

// NewListActivePeriodsUseCase creates a new ListActivePeriodsUseCase instance.
func NewListActivePeriodsUseCase(transactionRepo adapter.TransactionRepository, loc *time.Location) *ListActivePeriodsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ListActivePeriodsUseCase{
		transactionRepo: transactionRepo,
		location:        loc,
	}
}

// Execute returns the distinct active periods.
func (uc *ListActivePeriodsUseCase) Execute(ctx context.Context) ([]valueobject.Period, error) {
	dates, err := uc.transactionRepo.FindDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction dates: %w", err)
	}

	seen := make(map[valueobject.Period]struct{})
	periods := make([]valueobject.Period, 0)
	for _, d := range dates {
		p := valueobject.PeriodOf(d, uc.location)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		periods = append(periods, p)
	}

	sort.Slice(periods, func(i, j int) bool { return periods[i].After(periods[j]) })
	return periods, nil
}
