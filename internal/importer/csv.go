// Package importer handles bulk CSV import and export of transactions.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Goutham-1610/finance-advisor/internal/common"
	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// maxReportedErrors caps how many row errors are kept in an ImportResult.
const maxReportedErrors = 10

// dateLayouts are the accepted date formats for the import date column.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	time.RFC3339,
}

// TransactionAdder is the subset of the engine the importer needs. Each row
// goes through the same classify-and-persist path as manual entry.
type TransactionAdder interface {
	AddTransaction(ctx context.Context, input NewTransactionInput) (*model.Transaction, error)
}

// NewTransactionInput mirrors engine.NewTransaction so the importer does not
// depend on the engine package.
type NewTransactionInput struct {
	Date     time.Time
	Category *model.Category
	Merchant string
	Notes    string
	Amount   float64
}

// ImportResult reports the outcome of a bulk import. Rows that fail are
// skipped; already-imported rows stay committed.
type ImportResult struct {
	Errors   []string
	Imported int
	Failed   int
}

// Importer reads transactions from tabular text.
type Importer struct {
	adder TransactionAdder
}

// NewImporter creates an Importer that feeds rows to the given adder.
func NewImporter(adder TransactionAdder) *Importer {
	return &Importer{adder: adder}
}

// ProgressFunc is called after each processed row.
type ProgressFunc func()

// Import reads CSV rows with columns {date, amount, merchant, category?,
// notes?} and creates a transaction per row. Per-row failures are collected
// and counted; the batch is never rolled back.
func (im *Importer) Import(ctx context.Context, r io.Reader, progress ProgressFunc) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Column count varies with optional fields

	header, err := reader.Read()
	if err == io.EOF {
		return &ImportResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := indexColumns(header)

	result := &ImportResult{}
	for line := 2; ; line++ {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			result.recordError(fmt.Sprintf("row %d: %v", line, readErr))
			continue
		}

		if rowErr := im.importRow(ctx, columns, record); rowErr != nil {
			result.recordError(fmt.Sprintf("row %d: %v", line, rowErr))
		} else {
			result.Imported++
		}

		if progress != nil {
			progress()
		}
	}

	return result, nil
}

func (im *Importer) importRow(ctx context.Context, columns map[string]int, record []string) error {
	date, err := parseDate(field(record, columns, "date"))
	if err != nil {
		return err
	}

	amount, err := parseAmount(field(record, columns, "amount"))
	if err != nil {
		return err
	}

	merchant := field(record, columns, "merchant")
	if merchant == "" {
		merchant = "Unknown"
	}

	input := NewTransactionInput{
		Date:     date,
		Amount:   amount,
		Merchant: merchant,
		Notes:    field(record, columns, "notes"),
	}

	// An unknown category string falls back to auto-classification rather
	// than failing the row.
	if categoryStr := field(record, columns, "category"); categoryStr != "" {
		if category, parseErr := model.ParseCategory(categoryStr); parseErr == nil {
			input.Category = &category
		}
	}

	_, err = im.adder.AddTransaction(ctx, input)
	return err
}

func (r *ImportResult) recordError(msg string) {
	r.Failed++
	if len(r.Errors) < maxReportedErrors {
		r.Errors = append(r.Errors, msg)
	}
}

// indexColumns maps lower-cased header names to their positions.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: missing date", common.ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, s); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, s)
}

// parseAmount parses the amount with exact decimal arithmetic, rounding to
// cents before conversion.
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing amount", common.ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidAmount, s)
	}
	amount, _ := d.Round(2).Float64()
	return amount, nil
}
