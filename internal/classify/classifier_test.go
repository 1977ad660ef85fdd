package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

func txn(day int, merchant string, amount float64, category model.Category) model.Transaction {
	return model.Transaction{
		Date:     time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
		Merchant: merchant,
		Amount:   amount,
		Category: category,
		Type:     model.InferTransactionType(amount),
	}
}

func TestRuleTableMatch(t *testing.T) {
	rt := NewRuleTable(nil)

	tests := []struct {
		name     string
		merchant string
		want     model.Category
		matched  bool
	}{
		{"exact keyword", "starbucks", model.CategoryDining, true},
		{"case insensitive", "STARBUCKS #1234", model.CategoryDining, true},
		{"substring", "Uber Trip 4821", model.CategoryTransport, true},
		{"income rule", "ACME Corp Salary", model.CategorySalary, true},
		{"no match", "Joe's Hardware", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rt.Match(tt.merchant)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPredictHistoryWins(t *testing.T) {
	c := NewClassifier()
	// "Whole Foods" would keyword-match Groceries; history overrides it.
	c.Retrain([]model.Transaction{
		txn(1, "Whole Foods Market", -40, model.CategoryShopping),
	})

	p := c.Predict("Whole Foods Market", -40)
	assert.Equal(t, model.CategoryShopping, p.Category)
	assert.InDelta(t, HistoryConfidence, p.Confidence, 1e-9)
}

func TestPredictHistoryIsCaseSensitive(t *testing.T) {
	c := NewClassifier()
	c.Retrain([]model.Transaction{
		txn(1, "Blue Bottle", -6, model.CategoryDining),
	})

	// A differently cased merchant misses history and falls through to
	// keyword scoring, which finds nothing here.
	p := c.Predict("BLUE BOTTLE", -6)
	assert.Equal(t, model.CategoryOtherExpense, p.Category)
	assert.InDelta(t, FallbackConfidence, p.Confidence, 1e-9)
}

func TestPredictKeywordScoring(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name       string
		merchant   string
		want       model.Category
		confidence float64
	}{
		{"single hit", "Lyft Ride", model.CategoryTransport, 1.0 / 3},
		{"two hits", "Corner Pizza Grill", model.CategoryDining, 2.0 / 3},
		{"capped at one", "Starbucks Coffee Cafe", model.CategoryDining, 1.0},
		{"income keywords", "Payroll Direct Deposit", model.CategorySalary, 2.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := c.Predict(tt.merchant, -25)
			assert.Equal(t, tt.want, p.Category)
			assert.InDelta(t, tt.confidence, p.Confidence, 1e-9)
		})
	}
}

func TestPredictSignFallback(t *testing.T) {
	c := NewClassifier()

	expense := c.Predict("Xyzzy Plugh", -50)
	assert.Equal(t, model.CategoryOtherExpense, expense.Category)
	assert.InDelta(t, FallbackConfidence, expense.Confidence, 1e-9)

	income := c.Predict("Xyzzy Plugh", 50)
	assert.Equal(t, model.CategoryOtherIncome, income.Category)
	assert.InDelta(t, FallbackConfidence, income.Confidence, 1e-9)
}

func TestRetrainMostFrequentCategoryWins(t *testing.T) {
	c := NewClassifier()
	stats := c.Retrain([]model.Transaction{
		txn(1, "Corner Market", -30, model.CategoryGroceries),
		txn(2, "Corner Market", -12, model.CategoryDining),
		txn(3, "Corner Market", -28, model.CategoryGroceries),
		txn(4, "Corner Market", -31, model.CategoryGroceries),
	})

	require.Equal(t, 4, stats.TrainingSamples)
	require.Equal(t, 1, stats.UniqueMerchants)

	p := c.Predict("Corner Market", -30)
	assert.Equal(t, model.CategoryGroceries, p.Category)
}

func TestRetrainTieGoesToFirstToReachMax(t *testing.T) {
	c := NewClassifier()
	// Two categories end tied 2-2; Shopping reached count 2 first
	// (on day 3), so it wins regardless of input slice order.
	transactions := []model.Transaction{
		txn(4, "Ambiguous Co", -10, model.CategoryDining),
		txn(1, "Ambiguous Co", -10, model.CategoryDining),
		txn(2, "Ambiguous Co", -10, model.CategoryShopping),
		txn(3, "Ambiguous Co", -10, model.CategoryShopping),
	}
	c.Retrain(transactions)

	p := c.Predict("Ambiguous Co", -10)
	assert.Equal(t, model.CategoryShopping, p.Category)
}

func TestRetrainReplacesHistory(t *testing.T) {
	c := NewClassifier()
	c.Retrain([]model.Transaction{
		txn(1, "Old Merchant", -10, model.CategoryDining),
	})
	require.Equal(t, 1, c.HistorySize())

	c.Retrain(nil)
	assert.Equal(t, 0, c.HistorySize())
}
