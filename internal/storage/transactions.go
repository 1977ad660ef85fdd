package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/model"
	"github.com/Goutham-1610/finance-advisor/internal/service"
)

const transactionColumns = `id, date, amount, merchant, category, transaction_type,
	notes, tags, is_recurring, confidence_score, created_at, updated_at`

// InsertTransaction saves a new transaction and returns its id.
func (s *SQLiteStorage) InsertTransaction(ctx context.Context, txn *model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(txn); err != nil {
		return 0, err
	}

	tagsJSON, err := json.Marshal(txn.Tags)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal tags: %w", err)
	}

	now := time.Now()
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.UpdatedAt = now

	var id int64
	err = s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, `
			INSERT INTO transactions (
				date, amount, merchant, category, transaction_type,
				notes, tags, is_recurring, confidence_score, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			txn.Date,
			txn.Amount,
			txn.Merchant,
			string(txn.Category),
			string(txn.Type),
			txn.Notes,
			string(tagsJSON),
			txn.IsRecurring,
			nullableFloat(txn.Confidence),
			txn.CreatedAt,
			txn.UpdatedAt,
		)
		if execErr != nil {
			return fmt.Errorf("failed to insert transaction: %w", execErr)
		}
		id, execErr = result.LastInsertId()
		if execErr != nil {
			return fmt.Errorf("failed to get transaction id: %w", execErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	txn.ID = id
	slog.Debug("inserted transaction", "id", id, "merchant", txn.Merchant)
	return id, nil
}

// GetTransaction returns a transaction by id, or nil if it does not exist.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM transactions WHERE id = ?", transactionColumns)
	row := s.db.QueryRowContext(ctx, query, id)

	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %d: %w", id, err)
	}
	return txn, nil
}

// ListTransactions returns transactions ordered by date descending with
// optional pagination.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM transactions ORDER BY date DESC", transactionColumns)
	args := []any{}
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	return s.queryTransactions(ctx, query, args...)
}

// GetTransactionsByDateRange returns transactions with dates in [start, end],
// inclusive at both ends on the full timestamp.
func (s *SQLiteStorage) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %v is before start date %v", ErrInvalidDateRange, end, start)
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC`, transactionColumns)
	return s.queryTransactions(ctx, query, start, end)
}

// GetTransactionsByCategory returns all transactions in a category.
func (s *SQLiteStorage) GetTransactionsByCategory(ctx context.Context, category model.Category) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(string(category), "category"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions
		WHERE category = ?
		ORDER BY date DESC`, transactionColumns)
	return s.queryTransactions(ctx, query, string(category))
}

// SearchTransactions returns transactions whose merchant or notes contain the
// query text.
func (s *SQLiteStorage) SearchTransactions(ctx context.Context, query string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(query, "query"); err != nil {
		return nil, err
	}

	pattern := "%" + query + "%"
	sqlQuery := fmt.Sprintf(`SELECT %s FROM transactions
		WHERE merchant LIKE ? OR notes LIKE ?
		ORDER BY date DESC`, transactionColumns)
	return s.queryTransactions(ctx, sqlQuery, pattern, pattern)
}

// UpdateTransaction updates an existing transaction. It reports false when no
// transaction with the given id exists.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, txn *model.Transaction) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateTransaction(txn); err != nil {
		return false, err
	}

	tagsJSON, err := json.Marshal(txn.Tags)
	if err != nil {
		return false, fmt.Errorf("failed to marshal tags: %w", err)
	}

	txn.UpdatedAt = time.Now()

	var updated bool
	err = s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, `
			UPDATE transactions SET
				date = ?, amount = ?, merchant = ?, category = ?,
				transaction_type = ?, notes = ?, tags = ?,
				is_recurring = ?, confidence_score = ?, updated_at = ?
			WHERE id = ?`,
			txn.Date,
			txn.Amount,
			txn.Merchant,
			string(txn.Category),
			string(txn.Type),
			txn.Notes,
			string(tagsJSON),
			txn.IsRecurring,
			nullableFloat(txn.Confidence),
			txn.UpdatedAt,
			txn.ID,
		)
		if execErr != nil {
			return fmt.Errorf("failed to update transaction %d: %w", txn.ID, execErr)
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

// DeleteTransaction removes a transaction. It reports false when no
// transaction with the given id exists.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	var deleted bool
	err := s.execInTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
		if execErr != nil {
			return fmt.Errorf("failed to delete transaction %d: %w", id, execErr)
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

// CountTransactions returns the total number of stored transactions.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func (s *SQLiteStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		transactions = append(transactions, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		txn        model.Transaction
		category   string
		txnType    string
		tagsJSON   string
		confidence sql.NullFloat64
	)

	if err := row.Scan(
		&txn.ID,
		&txn.Date,
		&txn.Amount,
		&txn.Merchant,
		&category,
		&txnType,
		&txn.Notes,
		&tagsJSON,
		&txn.IsRecurring,
		&confidence,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	); err != nil {
		return nil, err
	}

	cat, err := model.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	txn.Category = cat
	txn.Type = model.TransactionType(txnType)

	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &txn.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	if confidence.Valid {
		txn.Confidence = &confidence.Float64
	}

	return &txn, nil
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
