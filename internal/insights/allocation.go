package insights

import (
	"math"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// SuggestAllocation splits a total budget across categories in proportion to
// each category's share of average monthly spend over the last 90 days.
// Categories with no spend history receive no suggestion.
func SuggestAllocation(transactions []model.Transaction, totalBudget float64, now time.Time) map[model.Category]float64 {
	windowStart := now.AddDate(0, 0, -90)

	averages := make(map[model.Category]float64)
	var totalSpending float64
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		if txn.Date.Before(windowStart) || txn.Date.After(now) {
			continue
		}
		averages[txn.Category] += txn.AbsAmount() / 3
		totalSpending += txn.AbsAmount() / 3
	}

	suggested := make(map[model.Category]float64)
	if totalSpending <= 0 {
		return suggested
	}

	for category, amount := range averages {
		proportion := amount / totalSpending
		suggested[category] = math.Round(totalBudget*proportion*100) / 100
	}
	return suggested
}
