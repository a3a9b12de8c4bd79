package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/testsupport"
)

func TestCategoryRepositoryOrderingAndReferences(t *testing.T) {
	ctx := context.Background()
	ledger := testsupport.NewLedger(t)

	rent := entity.NewCategory("Rent", entity.CategoryTypeExpense, nil, false)
	ink := entity.NewCategory("Ink", entity.CategoryTypeExpense, nil, false)
	inkTwin := entity.NewCategory("Ink", entity.CategoryTypeExpense, nil, false)
	sales := entity.NewCategory("Sales", entity.CategoryTypeIncome, nil, false)
	for _, c := range []*entity.Category{rent, ink, inkTwin, sales} {
		require.NoError(t, ledger.Categories.Create(ctx, c))
	}

	inkTwin.IsActive = false
	require.NoError(t, ledger.Categories.Update(ctx, inkTwin))

	expenses, err := ledger.Categories.FindByType(ctx, entity.CategoryTypeExpense, false)
	require.NoError(t, err)
	require.Len(t, expenses, 3)
	assert.Equal(t, "Ink", expenses[0].Name)
	assert.Equal(t, "Ink", expenses[1].Name)
	assert.Negative(t, entity.CompareIDs(expenses[0].ID, expenses[1].ID))
	assert.Equal(t, rent.ID, expenses[2].ID)

	active, err := ledger.Categories.FindByType(ctx, entity.CategoryTypeExpense, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	child := entity.NewCategory("Toner", entity.CategoryTypeExpense, &ink.ID, false)
	require.NoError(t, ledger.Categories.Create(ctx, child))
	source := entity.NewSource("Supplier", ink.ID)
	require.NoError(t, ledger.Sources.Create(ctx, source))
	tx := entity.NewTransaction(entity.TransactionTypeExpense, ink.ID, source.ID, decimal.NewFromInt(10), time.Now(), "", nil)
	require.NoError(t, ledger.Transactions.Create(ctx, tx))

	refs, err := ledger.Categories.CountReferences(ctx, ink.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryReferences{Sources: 1, Transactions: 1, Children: 1}, refs)
	assert.Equal(t, int64(3), refs.Total())

	_, err = ledger.Categories.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerror.ErrCategoryNotFound))
}

func TestTransactionRepositoryRoundTripAndOrder(t *testing.T) {
	ctx := context.Background()
	ledger := testsupport.NewLedger(t)

	category := entity.NewCategory("Payroll", entity.CategoryTypeExpense, nil, true)
	require.NoError(t, ledger.Categories.Create(ctx, category))
	source := entity.NewSource("Bank", category.ID)
	require.NoError(t, ledger.Sources.Create(ctx, source))

	employee := uuid.New()
	may1 := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	may20 := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	first := entity.NewTransaction(entity.TransactionTypeExpense, category.ID, source.ID, decimal.RequireFromString("1234.56"), may1, "salary", &employee)
	second := entity.NewTransaction(entity.TransactionTypeExpense, category.ID, source.ID, decimal.RequireFromString("0.01"), may20, "", &employee)
	sameDay := entity.NewTransaction(entity.TransactionTypeExpense, category.ID, source.ID, decimal.NewFromInt(7), may20, "", &employee)
	june := entity.NewTransaction(entity.TransactionTypeExpense, category.ID, source.ID, decimal.NewFromInt(3), may20.AddDate(0, 1, 0), "", &employee)
	for _, tx := range []*entity.Transaction{first, second, sameDay, june} {
		require.NoError(t, ledger.Transactions.Create(ctx, tx))
	}

	got, err := ledger.Transactions.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Type, got.Type)
	assert.Equal(t, first.CategoryID, got.CategoryID)
	assert.Equal(t, first.SourceID, got.SourceID)
	assert.True(t, first.Amount.Equal(got.Amount), "amount %s", got.Amount)
	assert.True(t, first.TransactionDate.Equal(got.TransactionDate))
	assert.Equal(t, "salary", got.Description)
	require.NotNil(t, got.EmployeeID)
	assert.Equal(t, employee, *got.EmployeeID)

	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	inMay, err := ledger.Transactions.FindByDateRange(ctx, start, start.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, inMay, 3)

	// Date descending, then id ascending.
	assert.True(t, inMay[0].TransactionDate.Equal(may20))
	assert.True(t, inMay[1].TransactionDate.Equal(may20))
	assert.Negative(t, entity.CompareIDs(inMay[0].ID, inMay[1].ID))
	assert.Equal(t, first.ID, inMay[2].ID)

	all, err := ledger.Transactions.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, june.ID, all[0].ID)

	dates, err := ledger.Transactions.FindDates(ctx)
	require.NoError(t, err)
	assert.Len(t, dates, 4)

	require.NoError(t, ledger.Transactions.Delete(ctx, june.ID))
	err = ledger.Transactions.Delete(ctx, june.ID)
	assert.True(t, errors.Is(err, domainerror.ErrTransactionNotFound))
}

func TestAtomicWriterRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	ledger := testsupport.NewLedger(t)

	category := entity.NewCategory("Rent", entity.CategoryTypeExpense, nil, false)
	boom := errors.New("boom")

	err := ledger.Writer.Do(ctx, func(ctx context.Context) error {
		if err := ledger.Categories.Create(ctx, category); err != nil {
			return err
		}

		// Nested units join the enclosing transaction.
		return ledger.Writer.Do(ctx, func(ctx context.Context) error {
			_, err := ledger.Categories.FindByID(ctx, category.ID)
			require.NoError(t, err)
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	_, err = ledger.Categories.FindByID(ctx, category.ID)
	assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)

	err = ledger.Writer.Do(ctx, func(ctx context.Context) error {
		return ledger.Categories.Create(ctx, category)
	})
	require.NoError(t, err)

	_, err = ledger.Categories.FindByID(ctx, category.ID)
	assert.NoError(t, err)
}
