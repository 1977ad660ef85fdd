package model

import "time"

// BudgetPeriod is the recurrence period a budget covers.
type BudgetPeriod string

const (
	// PeriodWeekly covers a rolling week.
	PeriodWeekly BudgetPeriod = "weekly"
	// PeriodMonthly covers a rolling month.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodYearly covers a rolling year.
	PeriodYearly BudgetPeriod = "yearly"
)

// ParseBudgetPeriod converts a string into a BudgetPeriod.
func ParseBudgetPeriod(s string) (BudgetPeriod, bool) {
	switch BudgetPeriod(s) {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return BudgetPeriod(s), true
	}
	return "", false
}

// DefaultAlertThreshold is the budget fraction at which a warning is raised.
const DefaultAlertThreshold = 0.8

// Budget is a spending limit for one category over a period. Status is always
// derived from transactions, never stored.
type Budget struct {
	StartDate      time.Time
	EndDate        *time.Time
	Category       Category
	Period         BudgetPeriod
	ID             int64
	Amount         float64
	AlertThreshold float64
}

// BudgetStatusLabel classifies how a budget is tracking against spend.
type BudgetStatusLabel string

const (
	// BudgetGood means spend is below the alert threshold.
	BudgetGood BudgetStatusLabel = "good"
	// BudgetWarning means spend has crossed the alert threshold.
	BudgetWarning BudgetStatusLabel = "warning"
	// BudgetExceeded means spend has reached or passed the budgeted amount.
	BudgetExceeded BudgetStatusLabel = "exceeded"
)
