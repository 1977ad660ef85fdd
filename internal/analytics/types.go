package analytics

import "github.com/Goutham-1610/finance-advisor/internal/model"

// Summary is a financial overview of a transaction set.
type Summary struct {
	TotalIncome      float64
	TotalExpenses    float64
	Net              float64
	TransactionCount int
	ExpenseCount     int
	IncomeCount      int
	AverageExpense   float64
	SavingsRate      float64 // percent; 0 when there is no income
}

// CategoryBreakdown reports per-category expense totals.
type CategoryBreakdown struct {
	Totals      map[model.Category]float64
	Counts      map[model.Category]int
	Percentages map[model.Category]float64
	TopCategory *model.Category // nil when there are no expenses
	TotalSpent  float64
}

// Trend classifies the direction of recent spending.
type Trend string

const (
	// TrendStable means recent spending is within 5% of the overall mean.
	TrendStable Trend = "stable"
	// TrendIncreasing means recent spending is above the overall mean.
	TrendIncreasing Trend = "increasing"
	// TrendDecreasing means recent spending is below the overall mean.
	TrendDecreasing Trend = "decreasing"
)

// TrendReport summarizes daily spending direction.
type TrendReport struct {
	DailySpending map[string]float64 // keyed by YYYY-MM-DD
	AverageDaily  float64
	RecentAverage float64
	Trend         Trend
	ChangePercent float64
}

// MerchantStat aggregates expenses for a single merchant.
type MerchantStat struct {
	Merchant string
	Total    float64
	Average  float64
	Count    int
}

// MerchantReport ranks merchants by expense total.
type MerchantReport struct {
	Top            []MerchantStat // at most 10, descending by total
	TopMerchant    string
	TotalMerchants int
}

// TimeReport buckets expense totals by weekday and ISO week.
type TimeReport struct {
	ByWeekday          map[string]float64
	ByWeek             map[string]float64
	HighestSpendingDay string
}

// PeriodChanges holds percentage deltas between two period summaries.
type PeriodChanges struct {
	Income   float64
	Expenses float64
	Net      float64
}

// PeriodComparison compares two independent period summaries.
type PeriodComparison struct {
	Period1 Summary
	Period2 Summary
	Changes PeriodChanges
}

// BudgetStatus is the derived state of one budget against actual spend.
type BudgetStatus struct {
	Category    model.Category
	Budgeted    float64
	Spent       float64
	Remaining   float64
	PercentUsed float64
	Status      model.BudgetStatusLabel
}

// BudgetReport is the status of all budgets for a period.
type BudgetReport struct {
	Budgets       []BudgetStatus
	TotalBudgeted float64
	TotalSpent    float64
}
