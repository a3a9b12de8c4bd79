package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/persistence/model"
)

// ledgerOrder is the ordering of every transaction listing.
const ledgerOrder = "transaction_date DESC, id ASC"

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return conn(ctx, r.db).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByDateRange retrieves transactions dated within [start, end).
func (r *transactionRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := conn(ctx, r.db).
		Where("transaction_date >= ? AND transaction_date < ?", start.UTC(), end.UTC()).
		Order(ledgerOrder).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactions(transactionModels), nil
}

// FindAll retrieves every transaction of the ledger.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := conn(ctx, r.db).Order(ledgerOrder).Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactions(transactionModels), nil
}

// FindDates retrieves the transaction date of every transaction.
func (r *transactionRepository) FindDates(ctx context.Context) ([]time.Time, error) {
	var rows []model.TransactionModel
	result := conn(ctx, r.db).
		Select("transaction_date").
		Order("transaction_date DESC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.TransactionDate.UTC()
	}
	return dates, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return conn(ctx, r.db).Save(model.TransactionFromEntity(transaction)).Error
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

func toTransactions(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
