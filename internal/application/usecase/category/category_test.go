package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/testsupport"
)

type categoryUseCases struct {
	ledger *testsupport.Ledger
	create *CreateCategoryUseCase
	update *UpdateCategoryUseCase
	delete *DeleteCategoryUseCase
	list   *ListCategoriesUseCase
	get    *GetCategoryUseCase
}

func newCategoryUseCases(t *testing.T) *categoryUseCases {
	ledger := testsupport.NewLedger(t)
	return &categoryUseCases{
		ledger: ledger,
		create: NewCreateCategoryUseCase(ledger.Categories, ledger.Writer),
		update: NewUpdateCategoryUseCase(ledger.Categories, ledger.Writer),
		delete: NewDeleteCategoryUseCase(ledger.Categories, ledger.Writer),
		list:   NewListCategoriesUseCase(ledger.Categories),
		get:    NewGetCategoryUseCase(ledger.Categories),
	}
}

func (uc *categoryUseCases) mustCreate(t *testing.T, input CreateCategoryInput) *entity.Category {
	t.Helper()
	out, err := uc.create.Execute(context.Background(), input)
	require.NoError(t, err)
	return out.Category
}

func typePtr(t entity.CategoryType) *entity.CategoryType { return &t }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCases(t)

	t.Run("creates an active category with a trimmed name", func(t *testing.T) {
		out, err := uc.create.Execute(ctx, CreateCategoryInput{Name: "  Rent ", Type: entity.CategoryTypeExpense})
		require.NoError(t, err)
		assert.Equal(t, "Rent", out.Category.Name)
		assert.True(t, out.Category.IsActive)

		got, err := uc.get.Execute(ctx, out.Category.ID)
		require.NoError(t, err)
		assert.Equal(t, out.Category.Name, got.Name)
	})

	parent := uc.mustCreate(t, CreateCategoryInput{Name: "Sales", Type: entity.CategoryTypeIncome})

	tests := []struct {
		name  string
		input CreateCategoryInput
		want  error
	}{
		{"empty name", CreateCategoryInput{Name: "   ", Type: entity.CategoryTypeExpense}, domainerror.ErrCategoryNameRequired},
		{"long name", CreateCategoryInput{Name: strings.Repeat("a", MaxCategoryNameLength+1), Type: entity.CategoryTypeExpense}, domainerror.ErrCategoryNameTooLong},
		{"invalid type", CreateCategoryInput{Name: "X", Type: "transfer"}, domainerror.ErrInvalidCategoryType},
		{"missing parent", CreateCategoryInput{Name: "X", Type: entity.CategoryTypeExpense, ParentCategoryID: ptrID(uuid.New())}, domainerror.ErrParentCategoryNotFound},
		{"mixed-type parent", CreateCategoryInput{Name: "X", Type: entity.CategoryTypeExpense, ParentCategoryID: &parent.ID}, domainerror.ErrParentCategoryTypeMismatch},
		{"employee flag on income", CreateCategoryInput{Name: "X", Type: entity.CategoryTypeIncome, RequiresEmployee: true}, domainerror.ErrEmployeeFlagOnIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.create.Execute(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, domainerror.ErrValidation))
		})
	}
}

func ptrID(id uuid.UUID) *uuid.UUID { return &id }

func TestDeleteCategoryReferencedByChild(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCases(t)

	parent := uc.mustCreate(t, CreateCategoryInput{Name: "A", Type: entity.CategoryTypeExpense})
	child := uc.mustCreate(t, CreateCategoryInput{Name: "B", Type: entity.CategoryTypeExpense, ParentCategoryID: &parent.ID})

	_, err := uc.delete.Execute(ctx, DeleteCategoryInput{CategoryID: parent.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrConflict))

	var categoryErr *domainerror.CategoryError
	require.True(t, errors.As(err, &categoryErr))
	assert.GreaterOrEqual(t, categoryErr.ReferencingCount, int64(1))

	_, err = uc.delete.Execute(ctx, DeleteCategoryInput{CategoryID: child.ID})
	require.NoError(t, err)

	_, err = uc.delete.Execute(ctx, DeleteCategoryInput{CategoryID: parent.ID})
	require.NoError(t, err)

	_, err = uc.get.Execute(ctx, parent.ID)
	assert.True(t, errors.Is(err, domainerror.ErrNotFound))

	_, err = uc.delete.Execute(ctx, DeleteCategoryInput{CategoryID: parent.ID})
	assert.True(t, errors.Is(err, domainerror.ErrNotFound))
}

func TestDeleteCategoryCountsAllReferences(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCases(t)

	category := uc.mustCreate(t, CreateCategoryInput{Name: "Ink", Type: entity.CategoryTypeExpense})
	uc.mustCreate(t, CreateCategoryInput{Name: "Toner", Type: entity.CategoryTypeExpense, ParentCategoryID: &category.ID})

	source := entity.NewSource("Supplier", category.ID)
	require.NoError(t, uc.ledger.Sources.Create(ctx, source))
	for i := 0; i < 2; i++ {
		tx := entity.NewTransaction(entity.TransactionTypeExpense, category.ID, source.ID, decimal.NewFromInt(5), source.CreatedAt, "", nil)
		require.NoError(t, uc.ledger.Transactions.Create(ctx, tx))
	}

	_, err := uc.delete.Execute(ctx, DeleteCategoryInput{CategoryID: category.ID})
	var categoryErr *domainerror.CategoryError
	require.True(t, errors.As(err, &categoryErr))
	assert.Equal(t, domainerror.ErrCodeCategoryInUse, categoryErr.Code)
	assert.Equal(t, int64(4), categoryErr.ReferencingCount)
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCases(t)

	t.Run("type changes while unreferenced", func(t *testing.T) {
		c := uc.mustCreate(t, CreateCategoryInput{Name: "Misc", Type: entity.CategoryTypeExpense})

		out, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, Type: typePtr(entity.CategoryTypeIncome)})
		require.NoError(t, err)
		assert.Equal(t, entity.CategoryTypeIncome, out.Category.Type)
	})

	t.Run("type is locked once a source references it", func(t *testing.T) {
		c := uc.mustCreate(t, CreateCategoryInput{Name: "Rent", Type: entity.CategoryTypeExpense})
		require.NoError(t, uc.ledger.Sources.Create(ctx, entity.NewSource("Landlord", c.ID)))

		_, err := uc.update.Execute(ctx, UpdateCategoryInput{
			CategoryID: c.ID,
			Name:       strPtr("Renamed"),
			Type:       typePtr(entity.CategoryTypeIncome),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrConflict))
		assert.True(t, errors.Is(err, domainerror.ErrCategoryTypeLocked))

		got, err := uc.get.Execute(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rent", got.Name)
		assert.Equal(t, entity.CategoryTypeExpense, got.Type)
	})

	t.Run("patching the same type is not a change", func(t *testing.T) {
		c := uc.mustCreate(t, CreateCategoryInput{Name: "Paper", Type: entity.CategoryTypeExpense})
		require.NoError(t, uc.ledger.Sources.Create(ctx, entity.NewSource("Mill", c.ID)))

		out, err := uc.update.Execute(ctx, UpdateCategoryInput{
			CategoryID: c.ID,
			Type:       typePtr(entity.CategoryTypeExpense),
			IsActive:   boolPtr(false),
		})
		require.NoError(t, err)
		assert.False(t, out.Category.IsActive)
	})

	t.Run("rejects cycles", func(t *testing.T) {
		a := uc.mustCreate(t, CreateCategoryInput{Name: "A", Type: entity.CategoryTypeExpense})
		b := uc.mustCreate(t, CreateCategoryInput{Name: "B", Type: entity.CategoryTypeExpense, ParentCategoryID: &a.ID})
		c := uc.mustCreate(t, CreateCategoryInput{Name: "C", Type: entity.CategoryTypeExpense, ParentCategoryID: &b.ID})

		_, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: a.ID, ParentCategoryID: &c.ID})
		assert.True(t, errors.Is(err, domainerror.ErrCategoryCycle))

		_, err = uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: a.ID, ParentCategoryID: &a.ID})
		assert.True(t, errors.Is(err, domainerror.ErrCategoryCycle))
		assert.True(t, errors.Is(err, domainerror.ErrValidation))
	})

	t.Run("rejects mixed-type parent and clears parent", func(t *testing.T) {
		income := uc.mustCreate(t, CreateCategoryInput{Name: "Sales", Type: entity.CategoryTypeIncome})
		parent := uc.mustCreate(t, CreateCategoryInput{Name: "Ops", Type: entity.CategoryTypeExpense})
		c := uc.mustCreate(t, CreateCategoryInput{Name: "Fuel", Type: entity.CategoryTypeExpense, ParentCategoryID: &parent.ID})

		_, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, ParentCategoryID: &income.ID})
		assert.True(t, errors.Is(err, domainerror.ErrParentCategoryTypeMismatch))

		out, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, ClearParent: true})
		require.NoError(t, err)
		assert.Nil(t, out.Category.ParentCategoryID)
	})

	t.Run("requires employee only on expenses", func(t *testing.T) {
		c := uc.mustCreate(t, CreateCategoryInput{Name: "Salaries", Type: entity.CategoryTypeExpense, RequiresEmployee: true})

		_, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, Type: typePtr(entity.CategoryTypeIncome)})
		assert.True(t, errors.Is(err, domainerror.ErrEmployeeFlagOnIncome))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: uuid.New(), Name: strPtr("x")})
		assert.True(t, errors.Is(err, domainerror.ErrNotFound))
	})
}

func TestRequireEmployeeLockedByExistingTransactions(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCases(t)

	c := uc.mustCreate(t, CreateCategoryInput{Name: "Wages", Type: entity.CategoryTypeExpense})
	source := entity.NewSource("Payroll", c.ID)
	require.NoError(t, uc.ledger.Sources.Create(ctx, source))

	employeeID := uuid.New()
	withEmployee := entity.NewTransaction(entity.TransactionTypeExpense, c.ID, source.ID, decimal.NewFromInt(900), source.CreatedAt, "", &employeeID)
	require.NoError(t, uc.ledger.Transactions.Create(ctx, withEmployee))
	for i := 0; i < 2; i++ {
		tx := entity.NewTransaction(entity.TransactionTypeExpense, c.ID, source.ID, decimal.NewFromInt(50), source.CreatedAt, "", nil)
		require.NoError(t, uc.ledger.Transactions.Create(ctx, tx))
	}

	_, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, RequiresEmployee: boolPtr(true)})
	var categoryErr *domainerror.CategoryError
	require.True(t, errors.As(err, &categoryErr))
	assert.Equal(t, domainerror.ErrCodeEmployeeFlagLocked, categoryErr.Code)
	assert.Equal(t, int64(2), categoryErr.ReferencingCount)
	assert.True(t, errors.Is(err, domainerror.ErrConflict))

	got, err := uc.get.Execute(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, got.RequiresEmployee)

	t.Run("allowed once every transaction names an employee", func(t *testing.T) {
		other := uc.mustCreate(t, CreateCategoryInput{Name: "Bonuses", Type: entity.CategoryTypeExpense})
		src := entity.NewSource("HR", other.ID)
		require.NoError(t, uc.ledger.Sources.Create(ctx, src))
		tx := entity.NewTransaction(entity.TransactionTypeExpense, other.ID, src.ID, decimal.NewFromInt(10), src.CreatedAt, "", &employeeID)
		require.NoError(t, uc.ledger.Transactions.Create(ctx, tx))

		out, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: other.ID, RequiresEmployee: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, out.Category.RequiresEmployee)
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	uc := newCategoryUseCases(t)

	uc.mustCreate(t, CreateCategoryInput{Name: "Sales", Type: entity.CategoryTypeIncome})
	uc.mustCreate(t, CreateCategoryInput{Name: "Rent", Type: entity.CategoryTypeExpense})
	ink := uc.mustCreate(t, CreateCategoryInput{Name: "Ink", Type: entity.CategoryTypeExpense})
	_, err := uc.update.Execute(ctx, UpdateCategoryInput{CategoryID: ink.ID, IsActive: boolPtr(false)})
	require.NoError(t, err)

	out, err := uc.list.Execute(ctx, ListCategoriesInput{Type: typePtr(entity.CategoryTypeExpense)})
	require.NoError(t, err)
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Ink", out.Categories[0].Name)
	assert.Equal(t, "Rent", out.Categories[1].Name)

	out, err = uc.list.Execute(ctx, ListCategoriesInput{Type: typePtr(entity.CategoryTypeExpense), ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "Rent", out.Categories[0].Name)

	out, err = uc.list.Execute(ctx, ListCategoriesInput{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, out.Categories, 2)

	_, err = uc.list.Execute(ctx, ListCategoriesInput{Type: typePtr("other")})
	assert.True(t, errors.Is(err, domainerror.ErrValidation))
}
