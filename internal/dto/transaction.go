package dto

import (
	"time"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records one income or expense event. Deposit-typed
// transactions are created by the engine only and cannot be submitted here.
type CreateTransactionRequest struct {
	Title    string          `json:"title" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Type     string          `json:"type" binding:"required,oneof=income expense"`
	Category string          `json:"category" binding:"required"`
	Date     *time.Time      `json:"date,omitempty"`
}

// ToDomain maps the request to a domain transaction; the engine assigns the
// id and defaults the date.
func (r CreateTransactionRequest) ToDomain() domain.Transaction {
	txn := domain.Transaction{
		Title:    r.Title,
		Amount:   r.Amount,
		Type:     domain.TransactionType(r.Type),
		Category: domain.Category(r.Category),
	}
	if r.Date != nil {
		txn.Date = *r.Date
	}
	return txn
}

// TransactionResponse mirrors a stored transaction.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	DepositID string          `json:"depositId,omitempty"`
}

// ToTransactionResponse maps a domain transaction to its response shape.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID,
		Title:     txn.Title,
		Amount:    txn.Amount,
		Type:      string(txn.Type),
		Category:  string(txn.Category),
		Date:      txn.Date,
		DepositID: txn.DepositID,
	}
}

// ToTransactionResponses maps a transaction list.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return out
}
