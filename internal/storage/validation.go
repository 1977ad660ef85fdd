// Package storage provides the data persistence layer for finance-advisor.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidTxn       = errors.New("invalid transaction")
	ErrInvalidBudget    = errors.New("invalid budget")
	ErrInvalidGoal      = errors.New("invalid goal")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTxn)
	}
	if strings.TrimSpace(txn.Merchant) == "" {
		return fmt.Errorf("%w: missing merchant", ErrInvalidTxn)
	}
	if !txn.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidTxn, txn.Category)
	}
	if _, ok := model.ParseTransactionType(string(txn.Type)); !ok {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTxn, txn.Type)
	}
	if txn.Confidence != nil && (*txn.Confidence < 0 || *txn.Confidence > 1) {
		return fmt.Errorf("%w: confidence must be between 0 and 1", ErrInvalidTxn)
	}
	return nil
}

// validateBudget validates a budget.
func validateBudget(budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if !budget.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidBudget, budget.Category)
	}
	if _, ok := model.ParseBudgetPeriod(string(budget.Period)); !ok {
		return fmt.Errorf("%w: unknown period %q", ErrInvalidBudget, budget.Period)
	}
	if budget.Amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidBudget)
	}
	if budget.AlertThreshold < 0 || budget.AlertThreshold > 1 {
		return fmt.Errorf("%w: alert threshold must be between 0 and 1", ErrInvalidBudget)
	}
	return nil
}

// validateGoal validates a financial goal.
func validateGoal(goal *model.FinancialGoal) error {
	if goal == nil {
		return fmt.Errorf("%w: goal", ErrNilParameter)
	}
	if strings.TrimSpace(goal.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidGoal)
	}
	if goal.TargetAmount < 0 {
		return fmt.Errorf("%w: target amount cannot be negative", ErrInvalidGoal)
	}
	return nil
}
