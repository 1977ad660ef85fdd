package engine

import (
	"context"

	"github.com/Goutham-1610/finance-advisor/internal/importer"
	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// importAdapter routes imported rows through the normal AddTransaction path
// so they are classified and retrain the merchant history like manual entry.
type importAdapter struct {
	engine *FinanceEngine
}

func (a importAdapter) AddTransaction(ctx context.Context, input importer.NewTransactionInput) (*model.Transaction, error) {
	return a.engine.AddTransaction(ctx, NewTransaction{
		Date:     input.Date,
		Amount:   input.Amount,
		Merchant: input.Merchant,
		Category: input.Category,
		Notes:    input.Notes,
	})
}

// NewImporter returns a CSV importer backed by this engine.
func (e *FinanceEngine) NewImporter() *importer.Importer {
	return importer.NewImporter(importAdapter{engine: e})
}
