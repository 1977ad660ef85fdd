package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/Goutham-1610/finance-advisor/internal/common"
	"github.com/Goutham-1610/finance-advisor/internal/model"
)

const budgetColumns = `id, category, amount, period, start_date, end_date, alert_threshold`

// InsertBudget saves a new budget and returns its id.
func (s *SQLiteStorage) InsertBudget(ctx context.Context, budget *model.Budget) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateBudget(budget); err != nil {
		return 0, err
	}

	if budget.StartDate.IsZero() {
		budget.StartDate = time.Now()
	}

	var id int64
	err := s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, `
			INSERT INTO budgets (category, amount, period, start_date, end_date, alert_threshold)
			VALUES (?, ?, ?, ?, ?, ?)`,
			string(budget.Category),
			budget.Amount,
			string(budget.Period),
			budget.StartDate,
			budget.EndDate,
			budget.AlertThreshold,
		)
		if execErr != nil {
			var sqliteErr sqlite3.Error
			if errors.As(execErr, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
				return fmt.Errorf("%w: %s budget for period %s", common.ErrDuplicateEntry, budget.Category, budget.Period)
			}
			return fmt.Errorf("failed to insert budget: %w", execErr)
		}
		id, execErr = result.LastInsertId()
		if execErr != nil {
			return fmt.Errorf("failed to get budget id: %w", execErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	budget.ID = id
	return id, nil
}

// GetBudget returns a budget by id, or nil if it does not exist.
func (s *SQLiteStorage) GetBudget(ctx context.Context, id int64) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM budgets WHERE id = ?", budgetColumns)
	budget, err := scanBudget(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query budget %d: %w", id, err)
	}
	return budget, nil
}

// GetBudgetByCategory returns the most recently created budget for a category,
// or nil if none exists.
func (s *SQLiteStorage) GetBudgetByCategory(ctx context.Context, category model.Category) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(string(category), "category"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM budgets
		WHERE category = ?
		ORDER BY created_at DESC LIMIT 1`, budgetColumns)
	budget, err := scanBudget(s.db.QueryRowContext(ctx, query, string(category)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query budget for %s: %w", category, err)
	}
	return budget, nil
}

// ListBudgets returns all budgets ordered by category.
func (s *SQLiteStorage) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM budgets ORDER BY category", budgetColumns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		budget, scanErr := scanBudget(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", scanErr)
		}
		budgets = append(budgets, *budget)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}
	return budgets, nil
}

// UpdateBudget updates an existing budget. It reports false when no budget
// with the given id exists.
func (s *SQLiteStorage) UpdateBudget(ctx context.Context, budget *model.Budget) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateBudget(budget); err != nil {
		return false, err
	}

	var updated bool
	err := s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, `
			UPDATE budgets SET
				category = ?, amount = ?, period = ?, start_date = ?,
				end_date = ?, alert_threshold = ?, updated_at = ?
			WHERE id = ?`,
			string(budget.Category),
			budget.Amount,
			string(budget.Period),
			budget.StartDate,
			budget.EndDate,
			budget.AlertThreshold,
			time.Now(),
			budget.ID,
		)
		if execErr != nil {
			return fmt.Errorf("failed to update budget %d: %w", budget.ID, execErr)
		}
		rows, execErr := result.RowsAffected()
		if execErr != nil {
			return fmt.Errorf("failed to get affected rows: %w", execErr)
		}
		updated = rows > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// DeleteBudget removes a budget. It reports false when no budget with the
// given id exists.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, id int64) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	var deleted bool
	err := s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, "DELETE FROM budgets WHERE id = ?", id)
		if execErr != nil {
			return fmt.Errorf("failed to delete budget %d: %w", id, execErr)
		}
		rows, execErr := result.RowsAffected()
		if execErr != nil {
			return fmt.Errorf("failed to get affected rows: %w", execErr)
		}
		deleted = rows > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func scanBudget(row rowScanner) (*model.Budget, error) {
	var (
		budget   model.Budget
		category string
		period   string
		endDate  sql.NullTime
	)

	if err := row.Scan(
		&budget.ID,
		&category,
		&budget.Amount,
		&period,
		&budget.StartDate,
		&endDate,
		&budget.AlertThreshold,
	); err != nil {
		return nil, err
	}

	cat, err := model.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	budget.Category = cat
	budget.Period = model.BudgetPeriod(period)
	if endDate.Valid {
		budget.EndDate = &endDate.Time
	}

	return &budget, nil
}
