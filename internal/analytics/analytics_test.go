package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

func txn(day int, merchant string, amount float64, category model.Category) model.Transaction {
	return model.Transaction{
		Date:     time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC),
		Merchant: merchant,
		Amount:   amount,
		Category: category,
		Type:     model.InferTransactionType(amount),
	}
}

func TestSummarize(t *testing.T) {
	transactions := []model.Transaction{
		txn(1, "ACME Payroll", 3000, model.CategorySalary),
		txn(2, "Safeway", -500, model.CategoryGroceries),
		txn(3, "Landlord LLC", -300, model.CategoryRent),
	}

	s := Summarize(transactions)

	assert.Equal(t, 3, s.TransactionCount)
	assert.Equal(t, 2, s.ExpenseCount)
	assert.Equal(t, 1, s.IncomeCount)
	assert.InDelta(t, 3000, s.TotalIncome, 1e-9)
	assert.InDelta(t, 800, s.TotalExpenses, 1e-9)
	assert.InDelta(t, 2200, s.Net, 1e-9)
	assert.InDelta(t, 400, s.AverageExpense, 1e-9)
	assert.InDelta(t, 2200.0/3000*100, s.SavingsRate, 1e-9)
}

func TestSummarizeNoIncome(t *testing.T) {
	s := Summarize([]model.Transaction{
		txn(1, "Safeway", -50, model.CategoryGroceries),
	})

	assert.Zero(t, s.SavingsRate)
	assert.InDelta(t, -50, s.Net, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TransactionCount)
	assert.Zero(t, s.AverageExpense)
}

func TestBreakdownByCategory(t *testing.T) {
	transactions := []model.Transaction{
		txn(1, "Safeway", -300, model.CategoryGroceries),
		txn(2, "Safeway", -100, model.CategoryGroceries),
		txn(3, "Chipotle", -100, model.CategoryDining),
		txn(4, "ACME Payroll", 5000, model.CategorySalary), // ignored
	}

	b := BreakdownByCategory(transactions)

	assert.InDelta(t, 500, b.TotalSpent, 1e-9)
	assert.InDelta(t, 400, b.Totals[model.CategoryGroceries], 1e-9)
	assert.Equal(t, 2, b.Counts[model.CategoryGroceries])
	assert.InDelta(t, 80, b.Percentages[model.CategoryGroceries], 1e-9)
	assert.InDelta(t, 20, b.Percentages[model.CategoryDining], 1e-9)

	require.NotNil(t, b.TopCategory)
	assert.Equal(t, model.CategoryGroceries, *b.TopCategory)

	var sum float64
	for _, pct := range b.Percentages {
		sum += pct
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestBreakdownNoExpenses(t *testing.T) {
	b := BreakdownByCategory([]model.Transaction{
		txn(1, "ACME Payroll", 5000, model.CategorySalary),
	})

	assert.Nil(t, b.TopCategory)
	assert.Zero(t, b.TotalSpent)
}

func TestDetectTrendStableWithFewDays(t *testing.T) {
	transactions := []model.Transaction{
		txn(1, "Safeway", -10, model.CategoryGroceries),
		txn(2, "Safeway", -90, model.CategoryGroceries),
	}

	report := DetectTrend(transactions)

	assert.Equal(t, TrendStable, report.Trend)
	assert.InDelta(t, 50, report.AverageDaily, 1e-9)
	assert.InDelta(t, 50, report.RecentAverage, 1e-9)
}

func TestDetectTrendIncreasing(t *testing.T) {
	var transactions []model.Transaction
	// Three quiet days followed by seven expensive ones.
	for day := 1; day <= 3; day++ {
		transactions = append(transactions, txn(day, "Safeway", -10, model.CategoryGroceries))
	}
	for day := 4; day <= 10; day++ {
		transactions = append(transactions, txn(day, "Safeway", -100, model.CategoryGroceries))
	}

	report := DetectTrend(transactions)

	assert.Equal(t, TrendIncreasing, report.Trend)
	assert.InDelta(t, 73, report.AverageDaily, 1e-9)
	assert.InDelta(t, 100, report.RecentAverage, 1e-9)
	assert.Greater(t, report.ChangePercent, 5.0)
}

func TestDetectTrendDecreasing(t *testing.T) {
	var transactions []model.Transaction
	for day := 1; day <= 3; day++ {
		transactions = append(transactions, txn(day, "Safeway", -100, model.CategoryGroceries))
	}
	for day := 4; day <= 10; day++ {
		transactions = append(transactions, txn(day, "Safeway", -10, model.CategoryGroceries))
	}

	report := DetectTrend(transactions)

	assert.Equal(t, TrendDecreasing, report.Trend)
	assert.Less(t, report.ChangePercent, -5.0)
}

func TestAnalyzeMerchants(t *testing.T) {
	transactions := []model.Transaction{
		txn(1, "Safeway", -60, model.CategoryGroceries),
		txn(2, "Safeway", -40, model.CategoryGroceries),
		txn(3, "Chipotle", -30, model.CategoryDining),
		txn(4, "ACME Payroll", 5000, model.CategorySalary), // ignored
	}

	report := AnalyzeMerchants(transactions)

	require.Len(t, report.Top, 2)
	assert.Equal(t, "Safeway", report.TopMerchant)
	assert.Equal(t, 2, report.TotalMerchants)
	assert.InDelta(t, 100, report.Top[0].Total, 1e-9)
	assert.InDelta(t, 50, report.Top[0].Average, 1e-9)
	assert.Equal(t, 2, report.Top[0].Count)
}

func TestAnalyzeMerchantsCapsAtTen(t *testing.T) {
	var transactions []model.Transaction
	for i := 0; i < 12; i++ {
		transactions = append(transactions,
			txn(i%28+1, fmt.Sprintf("Merchant %02d", i), -float64(i+1), model.CategoryShopping))
	}

	report := AnalyzeMerchants(transactions)

	assert.Len(t, report.Top, 10)
	assert.Equal(t, 12, report.TotalMerchants)
	assert.Equal(t, "Merchant 11", report.TopMerchant)
}

func TestAnalyzeTime(t *testing.T) {
	// 2026-03-02 is a Monday, 2026-03-03 a Tuesday.
	transactions := []model.Transaction{
		txn(2, "Safeway", -10, model.CategoryGroceries),
		txn(2, "Chipotle", -20, model.CategoryDining),
		txn(3, "Safeway", -5, model.CategoryGroceries),
	}

	report := AnalyzeTime(transactions)

	assert.InDelta(t, 30, report.ByWeekday["Monday"], 1e-9)
	assert.InDelta(t, 5, report.ByWeekday["Tuesday"], 1e-9)
	assert.Equal(t, "Monday", report.HighestSpendingDay)
	assert.InDelta(t, 35, report.ByWeek["Week 10"], 1e-9)
}

func TestComparePeriods(t *testing.T) {
	period1 := []model.Transaction{
		txn(1, "ACME Payroll", 1000, model.CategorySalary),
		txn(2, "Safeway", -200, model.CategoryGroceries),
	}
	period2 := []model.Transaction{
		txn(15, "ACME Payroll", 1500, model.CategorySalary),
		txn(16, "Safeway", -100, model.CategoryGroceries),
	}

	c := ComparePeriods(period1, period2)

	assert.InDelta(t, 50, c.Changes.Income, 1e-9)
	assert.InDelta(t, -50, c.Changes.Expenses, 1e-9)
	assert.InDelta(t, 75, c.Changes.Net, 1e-9)
}

func TestComparePeriodsZeroBaseline(t *testing.T) {
	period2 := []model.Transaction{
		txn(15, "Safeway", -100, model.CategoryGroceries),
	}

	c := ComparePeriods(nil, period2)

	assert.Zero(t, c.Changes.Income)
	assert.Zero(t, c.Changes.Expenses)
	assert.Zero(t, c.Changes.Net)
}

func TestEvaluateBudgets(t *testing.T) {
	budgets := []model.Budget{
		{Category: model.CategoryGroceries, Amount: 500, AlertThreshold: 0.8},
		{Category: model.CategoryDining, Amount: 100, AlertThreshold: 0.8},
		{Category: model.CategoryShopping, Amount: 200, AlertThreshold: 0.8},
	}
	transactions := []model.Transaction{
		txn(1, "Safeway", -450, model.CategoryGroceries), // 90%, warning
		txn(2, "Chipotle", -120, model.CategoryDining),   // 120%, exceeded
		txn(3, "Macy's", -50, model.CategoryShopping),    // 25%, good
	}

	report := EvaluateBudgets(budgets, transactions)

	require.Len(t, report.Budgets, 3)
	assert.Equal(t, model.BudgetWarning, report.Budgets[0].Status)
	assert.Equal(t, model.BudgetExceeded, report.Budgets[1].Status)
	assert.Equal(t, model.BudgetGood, report.Budgets[2].Status)
	assert.InDelta(t, 90, report.Budgets[0].PercentUsed, 1e-9)
	assert.InDelta(t, -20, report.Budgets[1].Remaining, 1e-9)
	assert.InDelta(t, 800, report.TotalBudgeted, 1e-9)
	assert.InDelta(t, 620, report.TotalSpent, 1e-9)
}

func TestEvaluateBudgetsDefaultThreshold(t *testing.T) {
	budgets := []model.Budget{
		{Category: model.CategoryGroceries, Amount: 100},
	}
	transactions := []model.Transaction{
		txn(1, "Safeway", -85, model.CategoryGroceries),
	}

	report := EvaluateBudgets(budgets, transactions)

	require.Len(t, report.Budgets, 1)
	assert.Equal(t, model.BudgetWarning, report.Budgets[0].Status)
}
