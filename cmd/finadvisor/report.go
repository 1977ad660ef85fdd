package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Goutham-1610/finance-advisor/internal/analytics"
	"github.com/Goutham-1610/finance-advisor/internal/cli"
	"github.com/Goutham-1610/finance-advisor/internal/model"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending reports and analytics",
	}

	cmd.AddCommand(dashboardCmd())
	cmd.AddCommand(summaryCmd())
	cmd.AddCommand(compareCmd())

	return cmd
}

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Overview of recent activity",
		RunE:  runDashboard,
	}

	cmd.Flags().Int("days", 30, "number of trailing days to cover")

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	days, _ := cmd.Flags().GetInt("days")

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	dash, err := eng.Dashboard(cmd.Context(), days)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s Last %d days (%s to %s)",
		cli.ChartIcon,
		dash.PeriodDays,
		dash.PeriodStart.Format("2006-01-02"),
		dash.PeriodEnd.Format("2006-01-02"))
	cmd.Println(cli.RenderBox(title, summaryText(dash.Summary)))

	cmd.Println(cli.FormatTitle("Spending by category"))
	printBreakdown(cmd, dash.Breakdown)

	cmd.Println()
	cmd.Println(cli.FormatTitle("Trend"))
	cmd.Printf("  %s (recent daily average %s vs overall %s, %s)\n",
		dash.Trend.Trend,
		cli.FormatCurrency(dash.Trend.RecentAverage),
		cli.FormatCurrency(dash.Trend.AverageDaily),
		cli.FormatPercent(dash.Trend.ChangePercent))

	if len(dash.Merchants.Top) > 0 {
		cmd.Println()
		cmd.Println(cli.FormatTitle("Top merchants"))
		printMerchants(cmd, dash.Merchants)
	}

	if len(dash.Anomalies) > 0 {
		cmd.Println()
		cmd.Println(cli.FormatWarning("Unusual transactions"))
		printTransactions(cmd, dash.Anomalies)
	}
	return nil
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <start> <end>",
		Short: "Detailed report for a date range",
		Args:  cobra.ExactArgs(2),
		RunE:  runSummary,
	}

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	start, err := parseDateArg(args[0])
	if err != nil {
		return err
	}
	end, err := parseDateArg(args[1])
	if err != nil {
		return err
	}

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	report, err := eng.Analytics(cmd.Context(), start, end)
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatTitle(fmt.Sprintf("%s to %s", args[0], args[1])))
	printSummary(cmd, report.Summary)

	cmd.Println()
	cmd.Println(cli.FormatTitle("Spending by category"))
	printBreakdown(cmd, report.Breakdown)

	if len(report.Merchants.Top) > 0 {
		cmd.Println()
		cmd.Println(cli.FormatTitle("Top merchants"))
		printMerchants(cmd, report.Merchants)
	}

	if report.Time.HighestSpendingDay != "" {
		cmd.Println()
		cmd.Println(cli.FormatTitle("Spending by weekday"))
		printWeekdays(cmd, report.Time)
	}
	return nil
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <start1> <end1> <start2> <end2>",
		Short: "Compare two date ranges",
		Args:  cobra.ExactArgs(4),
		RunE:  runCompare,
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	dates := make([]time.Time, 4)
	for i, arg := range args {
		parsed, err := parseDateArg(arg)
		if err != nil {
			return err
		}
		dates[i] = parsed
	}

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	comparison, err := eng.ComparePeriods(cmd.Context(), dates[0], dates[1], dates[2], dates[3])
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatTitle(fmt.Sprintf("Period 1: %s to %s", args[0], args[1])))
	printSummary(cmd, comparison.Period1)
	cmd.Println()
	cmd.Println(cli.FormatTitle(fmt.Sprintf("Period 2: %s to %s", args[2], args[3])))
	printSummary(cmd, comparison.Period2)
	cmd.Println()
	cmd.Println(cli.FormatTitle("Change"))
	cmd.Printf("  Income:   %s\n", cli.FormatPercent(comparison.Changes.Income))
	cmd.Printf("  Expenses: %s\n", cli.FormatPercent(comparison.Changes.Expenses))
	cmd.Printf("  Net:      %s\n", cli.FormatPercent(comparison.Changes.Net))
	return nil
}

func summaryText(s analytics.Summary) string {
	return fmt.Sprintf(
		"Income:       %s (%d transactions)\n"+
			"Expenses:     %s (%d transactions)\n"+
			"Net:          %s\n"+
			"Avg expense:  %s\n"+
			"Savings rate: %s",
		cli.FormatCurrency(s.TotalIncome), s.IncomeCount,
		cli.FormatCurrency(s.TotalExpenses), s.ExpenseCount,
		cli.FormatCurrency(s.Net),
		cli.FormatCurrency(s.AverageExpense),
		cli.FormatPercent(s.SavingsRate))
}

func printSummary(cmd *cobra.Command, s analytics.Summary) {
	cmd.Println(summaryText(s))
}

func printBreakdown(cmd *cobra.Command, b analytics.CategoryBreakdown) {
	if len(b.Totals) == 0 {
		cmd.Println(cli.FormatSubtle("  No expenses in this period."))
		return
	}

	categories := make([]model.Category, 0, len(b.Totals))
	for category := range b.Totals {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return b.Totals[categories[i]] > b.Totals[categories[j]]
	})

	for _, category := range categories {
		cmd.Printf("  %-25s %12s  %6s  (%d)\n",
			category,
			cli.FormatCurrency(b.Totals[category]),
			cli.FormatPercent(b.Percentages[category]),
			b.Counts[category])
	}
}

func printMerchants(cmd *cobra.Command, m analytics.MerchantReport) {
	for _, stat := range m.Top {
		cmd.Printf("  %-25s %12s  (%d, avg %s)\n",
			stat.Merchant,
			cli.FormatCurrency(stat.Total),
			stat.Count,
			cli.FormatCurrency(stat.Average))
	}
}

func printWeekdays(cmd *cobra.Command, t analytics.TimeReport) {
	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for _, day := range weekdays {
		total, ok := t.ByWeekday[day]
		if !ok {
			continue
		}
		marker := ""
		if day == t.HighestSpendingDay {
			marker = "  " + cli.FormatSubtle("highest")
		}
		cmd.Printf("  %-10s %12s%s\n", day, cli.FormatCurrency(total), marker)
	}
}
