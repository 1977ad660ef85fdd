package importer

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// recordingAdder collects the inputs it receives and assigns sequential ids.
type recordingAdder struct {
	inputs []NewTransactionInput
	fail   func(input NewTransactionInput) bool
}

func (a *recordingAdder) AddTransaction(_ context.Context, input NewTransactionInput) (*model.Transaction, error) {
	if a.fail != nil && a.fail(input) {
		return nil, assert.AnError
	}
	a.inputs = append(a.inputs, input)
	category := model.CategoryOtherExpense
	if input.Category != nil {
		category = *input.Category
	}
	return &model.Transaction{
		ID:       int64(len(a.inputs)),
		Date:     input.Date,
		Amount:   input.Amount,
		Merchant: input.Merchant,
		Category: category,
		Type:     model.InferTransactionType(input.Amount),
	}, nil
}

func TestImport(t *testing.T) {
	csvData := `date,amount,merchant,category,notes
2026-01-15,-45.50,Safeway,Groceries,weekly shop
01/20/2026,-12.99,Netflix,,
2026-01-25,2500.00,ACME Payroll,Salary,january
`
	adder := &recordingAdder{}
	result, err := NewImporter(adder).Import(context.Background(), strings.NewReader(csvData), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Zero(t, result.Failed)
	require.Len(t, adder.inputs, 3)

	first := adder.inputs[0]
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.InDelta(t, -45.50, first.Amount, 1e-9)
	assert.Equal(t, "Safeway", first.Merchant)
	require.NotNil(t, first.Category)
	assert.Equal(t, model.CategoryGroceries, *first.Category)
	assert.Equal(t, "weekly shop", first.Notes)

	// US-style date and blank category pass through for auto-classification.
	second := adder.inputs[1]
	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), second.Date)
	assert.Nil(t, second.Category)
}

func TestImportUnknownCategoryFallsBack(t *testing.T) {
	csvData := `date,amount,merchant,category
2026-01-15,-10.00,Corner Shop,Doodads
`
	adder := &recordingAdder{}
	result, err := NewImporter(adder).Import(context.Background(), strings.NewReader(csvData), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, adder.inputs, 1)
	assert.Nil(t, adder.inputs[0].Category, "unknown category should trigger auto-classification")
}

func TestImportBadRowsAreSkipped(t *testing.T) {
	csvData := `date,amount,merchant
2026-01-15,-10.00,Good Row
not-a-date,-10.00,Bad Date
2026-01-16,lots,Bad Amount
2026-01-17,-20.00,Another Good Row
`
	adder := &recordingAdder{}
	result, err := NewImporter(adder).Import(context.Background(), strings.NewReader(csvData), nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "row 3")
	assert.Contains(t, result.Errors[1], "row 4")
}

func TestImportErrorListIsCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("date,amount,merchant\n")
	for i := 0; i < 25; i++ {
		sb.WriteString("bogus,-1.00,Merchant\n")
	}

	adder := &recordingAdder{}
	result, err := NewImporter(adder).Import(context.Background(), strings.NewReader(sb.String()), nil)

	require.NoError(t, err)
	assert.Equal(t, 25, result.Failed)
	assert.Len(t, result.Errors, 10)
}

func TestImportMissingMerchantDefaultsToUnknown(t *testing.T) {
	csvData := `date,amount
2026-01-15,-10.00
`
	adder := &recordingAdder{}
	result, err := NewImporter(adder).Import(context.Background(), strings.NewReader(csvData), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, "Unknown", adder.inputs[0].Merchant)
}

func TestImportEmptyFile(t *testing.T) {
	adder := &recordingAdder{}
	result, err := NewImporter(adder).Import(context.Background(), strings.NewReader(""), nil)

	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Failed)
}

func TestImportReportsProgress(t *testing.T) {
	csvData := `date,amount,merchant
2026-01-15,-10.00,A
2026-01-16,-20.00,B
`
	calls := 0
	adder := &recordingAdder{}
	_, err := NewImporter(adder).Import(context.Background(), strings.NewReader(csvData), func() { calls++ })

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestExportRoundTrip(t *testing.T) {
	transactions := []model.Transaction{
		{
			ID:       1,
			Date:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			Merchant: "Safeway",
			Amount:   -45.50,
			Category: model.CategoryGroceries,
			Type:     model.TypeExpense,
			Notes:    "weekly shop",
			Tags:     []string{"food", "weekly"},
		},
		{
			ID:       2,
			Date:     time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
			Merchant: "ACME Payroll",
			Amount:   2500,
			Category: model.CategorySalary,
			Type:     model.TypeIncome,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, transactions))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,date,merchant,amount,category,transaction_type,notes,tags", lines[0])
	assert.Equal(t, `1,2026-01-15,Safeway,-45.50,Groceries,expense,weekly shop,"food,weekly"`, lines[1])

	// Exported rows import back with the same count, amounts, and merchants.
	adder := &recordingAdder{}
	result, err := NewImporter(adder).Import(context.Background(), &buf, nil)
	require.NoError(t, err)
	require.Equal(t, 2, result.Imported)

	assert.Equal(t, "Safeway", adder.inputs[0].Merchant)
	assert.InDelta(t, -45.50, adder.inputs[0].Amount, 1e-9)
	assert.Equal(t, transactions[0].Date, adder.inputs[0].Date)
	assert.Equal(t, "ACME Payroll", adder.inputs[1].Merchant)
	assert.InDelta(t, 2500, adder.inputs[1].Amount, 1e-9)
}
