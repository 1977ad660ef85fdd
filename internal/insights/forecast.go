package insights

import (
	"math"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// Forecast method tags.
const (
	MethodMovingAverage = "moving_average"
	MethodNoData        = "no_data"
)

// Forecast predicts next-month spending from recent history.
type Forecast struct {
	Method           string
	PredictedAmount  float64
	Confidence       float64
	MinExpense       float64
	MaxExpense       float64
	StdDev           float64
	MonthlyBreakdown []float64
}

// ForecastNextMonth predicts next month's spending from the last 90 days of
// expenses, optionally restricted to one category. The 90-day window is
// treated as three equal months; confidence comes from the variation across
// three 30-day sub-windows, clamped to [0.3, 0.9].
func ForecastNextMonth(transactions []model.Transaction, category *model.Category, now time.Time) Forecast {
	windowStart := now.AddDate(0, 0, -90)

	var expenses []model.Transaction
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		if txn.Date.Before(windowStart) || txn.Date.After(now) {
			continue
		}
		if category != nil && txn.Category != *category {
			continue
		}
		expenses = append(expenses, *txn)
	}

	if len(expenses) == 0 {
		return Forecast{Method: MethodNoData}
	}

	var sum float64
	minExpense := math.Inf(1)
	maxExpense := 0.0
	for i := range expenses {
		amount := expenses[i].AbsAmount()
		sum += amount
		if amount < minExpense {
			minExpense = amount
		}
		if amount > maxExpense {
			maxExpense = amount
		}
	}

	// The window is treated as exactly three months regardless of day span.
	avgMonthly := sum / 3

	monthlyTotals := make([]float64, 0, 3)
	for offset := 0; offset < 3; offset++ {
		monthStart := now.AddDate(0, 0, -(offset+1)*30)
		monthEnd := now.AddDate(0, 0, -offset*30)

		var total float64
		for i := range expenses {
			d := expenses[i].Date
			if !d.Before(monthStart) && !d.After(monthEnd) {
				total += expenses[i].AbsAmount()
			}
		}
		monthlyTotals = append(monthlyTotals, total)
	}

	var variance float64
	for _, total := range monthlyTotals {
		diff := total - avgMonthly
		variance += diff * diff
	}
	variance /= float64(len(monthlyTotals))
	stdDev := math.Sqrt(variance)

	confidence := 0.3
	if avgMonthly > 0 {
		confidence = 1 - stdDev/avgMonthly
		if confidence > 0.9 {
			confidence = 0.9
		}
		if confidence < 0.3 {
			confidence = 0.3
		}
	}

	return Forecast{
		Method:           MethodMovingAverage,
		PredictedAmount:  avgMonthly,
		Confidence:       confidence,
		MinExpense:       minExpense,
		MaxExpense:       maxExpense,
		StdDev:           stdDev,
		MonthlyBreakdown: monthlyTotals,
	}
}
