package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

const goalColumns = `id, name, target_amount, current_amount, deadline, category, priority`

// InsertGoal saves a new financial goal and returns its id.
func (s *SQLiteStorage) InsertGoal(ctx context.Context, goal *model.FinancialGoal) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateGoal(goal); err != nil {
		return 0, err
	}

	var id int64
	err := s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, `
			INSERT INTO goals (name, target_amount, current_amount, deadline, category, priority)
			VALUES (?, ?, ?, ?, ?, ?)`,
			goal.Name,
			goal.TargetAmount,
			goal.CurrentAmount,
			goal.Deadline,
			goal.Category,
			goal.Priority,
		)
		if execErr != nil {
			return fmt.Errorf("failed to insert goal: %w", execErr)
		}
		id, execErr = result.LastInsertId()
		if execErr != nil {
			return fmt.Errorf("failed to get goal id: %w", execErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	goal.ID = id
	return id, nil
}

// GetGoal returns a goal by id, or nil if it does not exist.
func (s *SQLiteStorage) GetGoal(ctx context.Context, id int64) (*model.FinancialGoal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM goals WHERE id = ?", goalColumns)
	goal, err := scanGoal(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goal %d: %w", id, err)
	}
	return goal, nil
}

// ListGoals returns all goals ordered by priority, then deadline.
func (s *SQLiteStorage) ListGoals(ctx context.Context) ([]model.FinancialGoal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM goals ORDER BY priority, deadline", goalColumns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.FinancialGoal
	for rows.Next() {
		goal, scanErr := scanGoal(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", scanErr)
		}
		goals = append(goals, *goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal updates an existing goal. It reports false when no goal with the
// given id exists.
func (s *SQLiteStorage) UpdateGoal(ctx context.Context, goal *model.FinancialGoal) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateGoal(goal); err != nil {
		return false, err
	}

	var updated bool
	err := s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, `
			UPDATE goals SET
				name = ?, target_amount = ?, current_amount = ?,
				deadline = ?, category = ?, priority = ?, updated_at = ?
			WHERE id = ?`,
			goal.Name,
			goal.TargetAmount,
			goal.CurrentAmount,
			goal.Deadline,
			goal.Category,
			goal.Priority,
			time.Now(),
			goal.ID,
		)
		if execErr != nil {
			return fmt.Errorf("failed to update goal %d: %w", goal.ID, execErr)
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

// DeleteGoal removes a goal. It reports false when no goal with the given id
// exists.
func (s *SQLiteStorage) DeleteGoal(ctx context.Context, id int64) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	var deleted bool
	err := s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
		if execErr != nil {
			return fmt.Errorf("failed to delete goal %d: %w", id, execErr)
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

func scanGoal(row rowScanner) (*model.FinancialGoal, error) {
	var (
		goal     model.FinancialGoal
		deadline sql.NullTime
	)

	if err := row.Scan(
		&goal.ID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&deadline,
		&goal.Category,
		&goal.Priority,
	); err != nil {
		return nil, err
	}

	if deadline.Valid {
		goal.Deadline = &deadline.Time
	}
	return &goal, nil
}
