package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// exportHeader defines the export column order.
var exportHeader = []string{
	"id", "date", "merchant", "amount", "category", "transaction_type", "notes", "tags",
}

// Export writes transactions as CSV with columns {id, date, merchant, amount,
// category, transaction_type, notes, tags}. Tags are comma-joined. Exported
// rows re-import cleanly: the shared columns round-trip count, amounts, and
// merchants.
func Export(w io.Writer, transactions []model.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range transactions {
		txn := &transactions[i]
		record := []string{
			strconv.FormatInt(txn.ID, 10),
			txn.Date.Format("2006-01-02"),
			txn.Merchant,
			strconv.FormatFloat(txn.Amount, 'f', 2, 64),
			string(txn.Category),
			string(txn.Type),
			txn.Notes,
			strings.Join(txn.Tags, ","),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", txn.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
