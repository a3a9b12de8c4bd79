package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/domain/valueobject"
)

const (
	// DefaultTopExpenses is the number of top expenses reported when neither
	// the caller nor the deployment chooses one.
	DefaultTopExpenses = 5
	// MaxTopExpenses caps the number of top expenses per report.
	MaxTopExpenses = 100
)

// ComputeSummaryInput represents the input for computing a report summary.
type ComputeSummaryInput struct {
	Scope                  valueobject.Scope
	TopExpenses            int // Zero selects the configured default
	IncludeEmptyCategories bool
}

// ComputeSummaryOutput represents the output of computing a report summary.
type ComputeSummaryOutput struct {
	Summary *entity.ReportSummary
}

// ComputeSummaryUseCase aggregates the ledger over a scope. Nothing is cached;
// every call reflects the ledger at call time.
type ComputeSummaryUseCase struct {
	transactionRepo    adapter.TransactionRepository
	categoryRepo       adapter.CategoryRepository
	sourceRepo         adapter.SourceRepository
	location           *time.Location
	defaultTopExpenses int
}

// NewComputeSummaryUseCase creates a new ComputeSummaryUseCase instance.
func NewComputeSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	sourceRepo adapter.SourceRepository,
	loc *time.Location,
	defaultTopExpenses int,
) *ComputeSummaryUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if defaultTopExpenses < 1 || defaultTopExpenses > MaxTopExpenses {
		defaultTopExpenses = DefaultTopExpenses
	}
	return &ComputeSummaryUseCase{
		transactionRepo:    transactionRepo,
		categoryRepo:       categoryRepo,
		sourceRepo:         sourceRepo,
		location:           loc,
		defaultTopExpenses: defaultTopExpenses,
	}
}

// Execute computes the summary.
func (uc *ComputeSummaryUseCase) Execute(ctx context.Context, input ComputeSummaryInput) (*ComputeSummaryOutput, error) {
	if input.Scope.Kind() == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingScope,
			"a month or the all-time scope is required",
			domainerror.ErrMissingScope,
		)
	}

	k := input.TopExpenses
	if k == 0 {
		k = uc.defaultTopExpenses
	}
	if k < 1 || k > MaxTopExpenses {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidTopExpenses,
			fmt.Sprintf("top expenses must be between 1 and %d", MaxTopExpenses),
			domainerror.ErrInvalidTopExpenses,
		)
	}

	var (
		transactions []*entity.Transaction
		categories   []*entity.Category
		sources      []*entity.Source
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if period, ok := input.Scope.Period(); ok {
			start, end := period.Bounds(uc.location)
			transactions, err = uc.transactionRepo.FindByDateRange(gctx, start, end)
		} else {
			transactions, err = uc.transactionRepo.FindAll(gctx)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if categories, err = uc.categoryRepo.FindAll(gctx); err != nil {
			return fmt.Errorf("failed to fetch categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sources, err = uc.sourceRepo.FindAll(gctx); err != nil {
			return fmt.Errorf("failed to fetch sources: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := newAccumulator(categories, sources, k)
	for _, tx := range transactions {
		acc.add(tx)
	}
	if input.IncludeEmptyCategories {
		acc.includeEmpty()
	}

	summary := acc.summary()
	summary.Scope = input.Scope

	slog.Debug("Report summary computed",
		"scope", input.Scope.String(),
		"transactions", summary.TransactionCount,
		"netProfit", summary.NetProfit.String(),
	)

	return &ComputeSummaryOutput{
		Summary: summary,
	}, nil
}
