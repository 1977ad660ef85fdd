// Package model defines the core data structures for the finance-advisor application.
package model

import "time"

// TransactionType classifies the direction of money movement.
type TransactionType string

const (
	// TypeExpense represents money leaving the account.
	TypeExpense TransactionType = "expense"
	// TypeIncome represents money entering the account.
	TypeIncome TransactionType = "income"
	// TypeTransfer represents movement between accounts.
	TypeTransfer TransactionType = "transfer"
)

// ParseTransactionType converts a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case TypeExpense, TypeIncome, TypeTransfer:
		return TransactionType(s), true
	}
	return "", false
}

// InferTransactionType derives the type from the sign of the amount. It is
// used only when the caller did not supply a type; a supplied type is
// authoritative even if it disagrees with the sign.
func InferTransactionType(amount float64) TransactionType {
	if amount > 0 {
		return TypeIncome
	}
	return TypeExpense
}

// Transaction represents a single financial transaction.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Confidence  *float64 // Classifier confidence in [0,1]; nil when user-assigned
	Merchant    string
	Notes       string
	Category    Category
	Type        TransactionType
	Tags        []string
	ID          int64
	Amount      float64 // Signed: income positive, expense negative
	IsRecurring bool
}

// AbsAmount returns the magnitude of the transaction amount.
func (t *Transaction) AbsAmount() float64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome reports whether the transaction is income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}
