package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies how a transaction affects the spendable balance.
// The stored amount is always positive; the type alone decides the sign.
type TransactionType string

const (
	Income         TransactionType = "income"
	Expense        TransactionType = "expense"
	Deposit        TransactionType = "deposit"
	DepositMatured TransactionType = "deposit_matured"
)

// IsCredit reports whether transactions of this type increase the balance.
func (t TransactionType) IsCredit() bool {
	return t == Income || t == DepositMatured
}

// IsDebit reports whether transactions of this type decrease the balance.
func (t TransactionType) IsDebit() bool {
	return t == Expense || t == Deposit
}

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t.IsCredit() || t.IsDebit()
}

// Category is the fixed spending category enumeration.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryEducation     Category = "Education"
	CategoryPocketMoney   Category = "Pocket Money"
	CategoryGift          Category = "Gift"
	CategoryOther         Category = "Other"
	CategoryDeposit       Category = "Deposit"
)

// Categories lists every valid spending category.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryEducation,
		CategoryPocketMoney,
		CategoryGift,
		CategoryOther,
		CategoryDeposit,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is an immutable record of one balance-affecting event.
// Transactions are append-only; they are never edited in place.
type Transaction struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"` // Positive value; sign comes from Type
	Type     TransactionType `json:"type"`
	Category Category        `json:"category"`
	Date     time.Time       `json:"date"`
	// DepositID links deposit and deposit_matured transactions to the deposit
	// that produced them. It is the deduplication key for maturation credits.
	DepositID string `json:"depositId,omitempty"`
}

// SignedAmount returns the amount with the sign implied by the transaction type.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}
