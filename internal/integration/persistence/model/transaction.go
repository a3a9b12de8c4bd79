package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	SourceID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TransactionDate time.Time       `gorm:"not null;index"`
	Description     string          `gorm:"type:varchar(500)"`
	EmployeeID      *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		Type:            entity.TransactionType(m.Type),
		CategoryID:      m.CategoryID,
		SourceID:        m.SourceID,
		Amount:          m.Amount,
		TransactionDate: m.TransactionDate.UTC(),
		Description:     m.Description,
		EmployeeID:      m.EmployeeID,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		Type:            string(transaction.Type),
		CategoryID:      transaction.CategoryID,
		SourceID:        transaction.SourceID,
		Amount:          transaction.Amount,
		TransactionDate: transaction.TransactionDate.UTC(),
		Description:     transaction.Description,
		EmployeeID:      transaction.EmployeeID,
		CreatedAt:       transaction.CreatedAt.UTC(),
		UpdatedAt:       transaction.UpdatedAt.UTC(),
	}
}

// AllModels lists the models managed by AutoMigrate.
func AllModels() []any {
	return []any{
		&CategoryModel{},
		&SourceModel{},
		&TransactionModel{},
	}
}
