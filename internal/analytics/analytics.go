// Package analytics computes summaries and reports over transaction sets.
// All functions are pure: they take a snapshot of transactions (already
// filtered to the caller's date range) and never touch storage.
package analytics

import (
	"fmt"
	"sort"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// Summarize computes income, expense, and savings figures for a transaction set.
func Summarize(transactions []model.Transaction) Summary {
	var s Summary
	s.TransactionCount = len(transactions)

	for i := range transactions {
		txn := &transactions[i]
		switch {
		case txn.IsIncome():
			s.TotalIncome += txn.Amount
		case txn.IsExpense():
			s.TotalExpenses += txn.AbsAmount()
			s.ExpenseCount++
		}
	}

	s.IncomeCount = s.TransactionCount - s.ExpenseCount
	s.Net = s.TotalIncome - s.TotalExpenses
	if s.ExpenseCount > 0 {
		s.AverageExpense = s.TotalExpenses / float64(s.ExpenseCount)
	}
	if s.TotalIncome > 0 {
		s.SavingsRate = s.Net / s.TotalIncome * 100
	}

	return s
}

// BreakdownByCategory totals expenses per category with percentages of the
// grand total. TopCategory is nil when the set contains no expenses.
func BreakdownByCategory(transactions []model.Transaction) CategoryBreakdown {
	breakdown := CategoryBreakdown{
		Totals:      make(map[model.Category]float64),
		Counts:      make(map[model.Category]int),
		Percentages: make(map[model.Category]float64),
	}

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		breakdown.Totals[txn.Category] += txn.AbsAmount()
		breakdown.Counts[txn.Category]++
		breakdown.TotalSpent += txn.AbsAmount()
	}

	if breakdown.TotalSpent <= 0 {
		return breakdown
	}

	var top model.Category
	var topTotal float64
	for _, category := range model.ExpenseCategories() {
		total, ok := breakdown.Totals[category]
		if !ok {
			continue
		}
		breakdown.Percentages[category] = total / breakdown.TotalSpent * 100
		if total > topTotal {
			top = category
			topTotal = total
		}
	}
	breakdown.TopCategory = &top

	return breakdown
}

// DetectTrend buckets expenses by calendar day and compares the mean of the
// last 7 days against the overall mean. With 7 or fewer daily buckets the
// trend is always stable.
func DetectTrend(transactions []model.Transaction) TrendReport {
	report := TrendReport{
		DailySpending: make(map[string]float64),
		Trend:         TrendStable,
	}

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		day := txn.Date.Format("2006-01-02")
		report.DailySpending[day] += txn.AbsAmount()
	}

	days := make([]string, 0, len(report.DailySpending))
	for day := range report.DailySpending {
		days = append(days, day)
	}
	sort.Strings(days)

	if len(days) <= 7 {
		if len(days) > 0 {
			var total float64
			for _, day := range days {
				total += report.DailySpending[day]
			}
			report.AverageDaily = total / float64(len(days))
		}
		report.RecentAverage = report.AverageDaily
		return report
	}

	var total float64
	for _, day := range days {
		total += report.DailySpending[day]
	}
	report.AverageDaily = total / float64(len(days))

	var recent float64
	for _, day := range days[len(days)-7:] {
		recent += report.DailySpending[day]
	}
	report.RecentAverage = recent / 7

	if report.AverageDaily > 0 {
		report.ChangePercent = (report.RecentAverage - report.AverageDaily) / report.AverageDaily * 100
	}

	switch {
	case report.ChangePercent < 5 && report.ChangePercent > -5:
		report.Trend = TrendStable
	case report.RecentAverage > report.AverageDaily:
		report.Trend = TrendIncreasing
	default:
		report.Trend = TrendDecreasing
	}

	return report
}

// AnalyzeMerchants aggregates expenses per merchant, keeping the top 10 by
// total spend.
func AnalyzeMerchants(transactions []model.Transaction) MerchantReport {
	totals := make(map[string]*MerchantStat)

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		stat, ok := totals[txn.Merchant]
		if !ok {
			stat = &MerchantStat{Merchant: txn.Merchant}
			totals[txn.Merchant] = stat
		}
		stat.Total += txn.AbsAmount()
		stat.Count++
	}

	stats := make([]MerchantStat, 0, len(totals))
	for _, stat := range totals {
		stat.Average = stat.Total / float64(stat.Count)
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Merchant < stats[j].Merchant
	})

	report := MerchantReport{TotalMerchants: len(stats)}
	if len(stats) > 0 {
		report.TopMerchant = stats[0].Merchant
	}
	if len(stats) > 10 {
		stats = stats[:10]
	}
	report.Top = stats

	return report
}

// AnalyzeTime buckets expense totals by weekday name and by ISO week number.
func AnalyzeTime(transactions []model.Transaction) TimeReport {
	report := TimeReport{
		ByWeekday: make(map[string]float64),
		ByWeek:    make(map[string]float64),
	}

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		report.ByWeekday[txn.Date.Weekday().String()] += txn.AbsAmount()

		_, week := txn.Date.ISOWeek()
		report.ByWeek[fmt.Sprintf("Week %d", week)] += txn.AbsAmount()
	}

	var best float64
	for day, total := range report.ByWeekday {
		if total > best || (total == best && report.HighestSpendingDay == "") {
			best = total
			report.HighestSpendingDay = day
		}
	}

	return report
}

// ComparePeriods produces summaries of two transaction sets and the
// percentage change between them. Changes are 0 when the baseline is 0.
func ComparePeriods(period1, period2 []model.Transaction) PeriodComparison {
	s1 := Summarize(period1)
	s2 := Summarize(period2)

	return PeriodComparison{
		Period1: s1,
		Period2: s2,
		Changes: PeriodChanges{
			Income:   percentChange(s1.TotalIncome, s2.TotalIncome),
			Expenses: percentChange(s1.TotalExpenses, s2.TotalExpenses),
			Net:      percentChange(s1.Net, s2.Net),
		},
	}
}

// EvaluateBudgets joins budgets against category spend for the period.
func EvaluateBudgets(budgets []model.Budget, transactions []model.Transaction) BudgetReport {
	breakdown := BreakdownByCategory(transactions)

	report := BudgetReport{}
	for i := range budgets {
		budget := &budgets[i]
		spent := breakdown.Totals[budget.Category]

		status := BudgetStatus{
			Category:  budget.Category,
			Budgeted:  budget.Amount,
			Spent:     spent,
			Remaining: budget.Amount - spent,
			Status:    model.BudgetGood,
		}
		if budget.Amount > 0 {
			status.PercentUsed = spent / budget.Amount * 100
		}

		threshold := budget.AlertThreshold
		if threshold <= 0 {
			threshold = model.DefaultAlertThreshold
		}
		switch {
		case status.PercentUsed >= 100:
			status.Status = model.BudgetExceeded
		case status.PercentUsed >= threshold*100:
			status.Status = model.BudgetWarning
		}

		report.Budgets = append(report.Budgets, status)
		report.TotalBudgeted += budget.Amount
		report.TotalSpent += spent
	}

	return report
}

func percentChange(old, new float64) float64 {
	if old == 0 {
		return 0
	}
	return (new - old) / old * 100
}
