package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// DateLayout is the calendar date format used by request and response bodies.
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for recording a transaction.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required"`
	CategoryID  string          `json:"category_id" binding:"required"`
	SourceID    string          `json:"source_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description,omitempty"`
	EmployeeID  *string         `json:"employee_id,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type          *string          `json:"type,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	SourceID      *string          `json:"source_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Date          *string          `json:"date,omitempty"`
	Description   *string          `json:"description,omitempty"`
	EmployeeID    *string          `json:"employee_id,omitempty"`
	ClearEmployee bool             `json:"clear_employee,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	CategoryID  string    `json:"category_id"`
	SourceID    string    `json:"source_id"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	EmployeeID  *string   `json:"employee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ParseDate accepts a calendar date, read as midnight in loc, or an RFC 3339 timestamp.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, raw, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
// The date is rendered as a calendar date in loc.
func ToTransactionResponse(txn *entity.Transaction, loc *time.Location) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		Type:        string(txn.Type),
		CategoryID:  txn.CategoryID.String(),
		SourceID:    txn.SourceID.String(),
		Amount:      txn.Amount.StringFixed(2),
		Date:        txn.TransactionDate.In(loc).Format(DateLayout),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.EmployeeID != nil {
		employeeID := txn.EmployeeID.String()
		response.EmployeeID = &employeeID
	}

	return response
}

// ToTransactionListResponse converts a list of transactions to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction, loc *time.Location) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
		Count:        len(transactions),
	}
	for _, txn := range transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(txn, loc))
	}
	return response
}
