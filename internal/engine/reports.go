package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/analytics"
	"github.com/Goutham-1610/finance-advisor/internal/insights"
	"github.com/Goutham-1610/finance-advisor/internal/model"
	"github.com/Goutham-1610/finance-advisor/internal/service"
)

// Dashboard aggregates the standard overview reports for one period.
type Dashboard struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Summary     analytics.Summary
	Breakdown   analytics.CategoryBreakdown
	Trend       analytics.TrendReport
	Merchants   analytics.MerchantReport
	Anomalies   []model.Transaction // at most 5, largest first
	PeriodDays  int
}

// Dashboard builds the overview for the trailing number of days. Anomaly
// detection runs over the full history, not just the period.
func (e *FinanceEngine) Dashboard(ctx context.Context, days int) (*Dashboard, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	period, err := e.store.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load period transactions: %w", err)
	}
	all, err := e.store.ListTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	anomalies := insights.FindAnomalies(all, insights.DefaultAnomalyThreshold)
	if len(anomalies) > 5 {
		anomalies = anomalies[:5]
	}

	return &Dashboard{
		PeriodStart: start,
		PeriodEnd:   end,
		PeriodDays:  days,
		Summary:     analytics.Summarize(period),
		Breakdown:   analytics.BreakdownByCategory(period),
		Trend:       analytics.DetectTrend(period),
		Merchants:   analytics.AnalyzeMerchants(period),
		Anomalies:   anomalies,
	}, nil
}

// AnalyticsReport bundles the detailed per-range reports.
type AnalyticsReport struct {
	Summary   analytics.Summary
	Breakdown analytics.CategoryBreakdown
	Merchants analytics.MerchantReport
	Time      analytics.TimeReport
}

// Analytics computes detailed reports for an explicit date range, inclusive
// at both ends.
func (e *FinanceEngine) Analytics(ctx context.Context, start, end time.Time) (*AnalyticsReport, error) {
	transactions, err := e.store.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &AnalyticsReport{
		Summary:   analytics.Summarize(transactions),
		Breakdown: analytics.BreakdownByCategory(transactions),
		Merchants: analytics.AnalyzeMerchants(transactions),
		Time:      analytics.AnalyzeTime(transactions),
	}, nil
}

// ComparePeriods summarizes two date ranges and the change between them.
func (e *FinanceEngine) ComparePeriods(ctx context.Context, start1, end1, start2, end2 time.Time) (*analytics.PeriodComparison, error) {
	period1, err := e.store.GetTransactionsByDateRange(ctx, start1, end1)
	if err != nil {
		return nil, fmt.Errorf("failed to load first period: %w", err)
	}
	period2, err := e.store.GetTransactionsByDateRange(ctx, start2, end2)
	if err != nil {
		return nil, fmt.Errorf("failed to load second period: %w", err)
	}

	comparison := analytics.ComparePeriods(period1, period2)
	return &comparison, nil
}

// InsightsReport pairs unusual category spikes with recurring charges.
type InsightsReport struct {
	GeneratedAt time.Time
	Spikes      []insights.Spike
	Recurring   []insights.RecurringPattern // at most 5, most confident first
}

// Insights detects category spikes and recurring charges over full history.
func (e *FinanceEngine) Insights(ctx context.Context) (*InsightsReport, error) {
	all, err := e.store.ListTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	recurring := insights.DetectRecurring(all)
	if len(recurring) > 5 {
		recurring = recurring[:5]
	}

	return &InsightsReport{
		GeneratedAt: time.Now(),
		Spikes:      insights.DetectSpikes(all, time.Now()),
		Recurring:   recurring,
	}, nil
}

// Anomalies returns outlier expenses over the full history.
func (e *FinanceEngine) Anomalies(ctx context.Context, threshold float64) ([]model.Transaction, error) {
	all, err := e.store.ListTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return insights.FindAnomalies(all, threshold), nil
}

// Recurring returns every detected recurring charge.
func (e *FinanceEngine) Recurring(ctx context.Context) ([]insights.RecurringPattern, error) {
	all, err := e.store.ListTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return insights.DetectRecurring(all), nil
}

// Forecast predicts next-month spending, optionally for one category.
func (e *FinanceEngine) Forecast(ctx context.Context, category *model.Category) (*insights.Forecast, error) {
	all, err := e.store.ListTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	forecast := insights.ForecastNextMonth(all, category, time.Now())
	return &forecast, nil
}

// BudgetReport evaluates all budgets against spend in the trailing days.
func (e *FinanceEngine) BudgetReport(ctx context.Context, days int) (*analytics.BudgetReport, error) {
	budgets, err := e.store.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	transactions, err := e.store.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	report := analytics.EvaluateBudgets(budgets, transactions)
	return &report, nil
}

// SuggestBudgets proposes a budget split proportional to recent spending.
func (e *FinanceEngine) SuggestBudgets(ctx context.Context, totalBudget float64) (map[model.Category]float64, error) {
	all, err := e.store.ListTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return insights.SuggestAllocation(all, totalBudget, time.Now()), nil
}
