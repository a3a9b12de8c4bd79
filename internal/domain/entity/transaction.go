// Package entity defines the core business entities for the domain layer.
package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Matches reports whether the transaction type agrees with a category type.
func (t TransactionType) Matches(categoryType CategoryType) bool {
	return string(t) == string(categoryType)
}

// Transaction represents a single dated monetary entry of the ledger.
type Transaction struct {
	ID              uuid.UUID
	Type            TransactionType
	CategoryID      uuid.UUID
	SourceID        uuid.UUID
	Amount          decimal.Decimal // Always positive, the sign lives in Type
	TransactionDate time.Time
	Description     string
	EmployeeID      *uuid.UUID // Only meaningful for categories that require an employee
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	categoryID uuid.UUID,
	sourceID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
	employeeID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:              uuid.Must(uuid.NewV7()),
		Type:            transactionType,
		CategoryID:      categoryID,
		SourceID:        sourceID,
		Amount:          amount,
		TransactionDate: date.UTC(),
		Description:     description,
		EmployeeID:      employeeID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Clone returns a copy of the transaction that shares no pointers with the original.
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.EmployeeID != nil {
		id := *t.EmployeeID
		c.EmployeeID = &id
	}
	return &c
}

// CompareIDs orders two ids by their byte representation.
func CompareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
