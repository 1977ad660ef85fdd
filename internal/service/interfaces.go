// Package service defines the interfaces consumed by the finance engine.
package service

import (
	"context"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// TransactionFilter defines pagination options for transaction queries.
type TransactionFilter struct {
	Limit  int
	Offset int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Transaction operations
	InsertTransaction(ctx context.Context, txn *model.Transaction) (int64, error)
	GetTransaction(ctx context.Context, id int64) (*model.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	GetTransactionsByCategory(ctx context.Context, category model.Category) ([]model.Transaction, error)
	SearchTransactions(ctx context.Context, query string) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) (bool, error)
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
	CountTransactions(ctx context.Context) (int, error)

	// Budget operations
	InsertBudget(ctx context.Context, budget *model.Budget) (int64, error)
	GetBudget(ctx context.Context, id int64) (*model.Budget, error)
	GetBudgetByCategory(ctx context.Context, category model.Category) (*model.Budget, error)
	ListBudgets(ctx context.Context) ([]model.Budget, error)
	UpdateBudget(ctx context.Context, budget *model.Budget) (bool, error)
	DeleteBudget(ctx context.Context, id int64) (bool, error)

	// Goal operations
	InsertGoal(ctx context.Context, goal *model.FinancialGoal) (int64, error)
	GetGoal(ctx context.Context, id int64) (*model.FinancialGoal, error)
	ListGoals(ctx context.Context) ([]model.FinancialGoal, error)
	UpdateGoal(ctx context.Context, goal *model.FinancialGoal) (bool, error)
	DeleteGoal(ctx context.Context, id int64) (bool, error)

	// Database management
	Migrate(ctx context.Context) error
	Stats(ctx context.Context) (*DatabaseStats, error)
	Close() error
}

// DatabaseStats summarizes the contents of the store.
type DatabaseStats struct {
	Transactions int
	Budgets      int
	Goals        int
	SizeBytes    int64
}
