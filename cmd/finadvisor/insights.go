package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Goutham-1610/finance-advisor/internal/cli"
	"github.com/Goutham-1610/finance-advisor/internal/insights"
)

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Spending patterns, forecasts, and anomalies",
		RunE:  runInsights,
	}

	cmd.AddCommand(anomaliesCmd())
	cmd.AddCommand(recurringCmd())
	cmd.AddCommand(forecastCmd())

	return cmd
}

func runInsights(cmd *cobra.Command, _ []string) error {
	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	report, err := eng.Insights(cmd.Context())
	if err != nil {
		return err
	}

	if len(report.Spikes) == 0 && len(report.Recurring) == 0 {
		cmd.Println(cli.FormatSubtle("No notable patterns detected."))
		return nil
	}

	if len(report.Spikes) > 0 {
		cmd.Println(cli.FormatTitle("Category spikes (last 30 days vs prior 30)"))
		for _, spike := range report.Spikes {
			line := fmt.Sprintf("  %-25s %s → %s  (+%s)",
				spike.Category,
				cli.FormatCurrency(spike.PreviousAmount),
				cli.FormatCurrency(spike.CurrentAmount),
				cli.FormatPercent(spike.IncreasePercent))
			if spike.Severity == insights.SeverityHigh {
				line += "  " + cli.FormatWarning("high")
			}
			cmd.Println(line)
		}
	}

	if len(report.Recurring) > 0 {
		cmd.Println()
		cmd.Println(cli.FormatTitle("Recurring charges"))
		printRecurring(cmd, report.Recurring)
	}
	return nil
}

func anomaliesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Find unusually large expenses",
		RunE:  runAnomalies,
	}

	cmd.Flags().Float64("threshold", insights.DefaultAnomalyThreshold,
		"standard deviations above the mean to flag")

	return cmd
}

func runAnomalies(cmd *cobra.Command, _ []string) error {
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	anomalies, err := eng.Anomalies(cmd.Context(), threshold)
	if err != nil {
		return err
	}

	if len(anomalies) == 0 {
		cmd.Println(cli.FormatSubtle("No anomalies found."))
		return nil
	}

	cmd.Println(cli.FormatTitle(fmt.Sprintf("%d unusual expenses", len(anomalies))))
	printTransactions(cmd, anomalies)
	return nil
}

func recurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recurring",
		Short: "Detect recurring charges like subscriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, store, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			patterns, err := eng.Recurring(cmd.Context())
			if err != nil {
				return err
			}

			if len(patterns) == 0 {
				cmd.Println(cli.FormatSubtle("No recurring charges detected."))
				return nil
			}

			printRecurring(cmd, patterns)
			return nil
		},
	}
}

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Predict next month's spending",
		RunE:  runForecast,
	}

	cmd.Flags().String("category", "", "forecast a single category")

	return cmd
}

func runForecast(cmd *cobra.Command, _ []string) error {
	categoryStr, _ := cmd.Flags().GetString("category")
	category, err := parseCategoryFlag(categoryStr)
	if err != nil {
		return err
	}

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	forecast, err := eng.Forecast(cmd.Context(), category)
	if err != nil {
		return err
	}

	if forecast.Method == insights.MethodNoData {
		cmd.Println(cli.FormatSubtle("Not enough recent expenses to forecast."))
		return nil
	}

	scope := "total spending"
	if category != nil {
		scope = string(*category)
	}
	cmd.Println(cli.FormatTitle("Next month forecast: " + scope))
	cmd.Printf("  Predicted:  %s\n", cli.FormatCurrency(forecast.PredictedAmount))
	cmd.Printf("  Confidence: %s\n", cli.FormatPercent(forecast.Confidence*100))
	cmd.Printf("  Range seen: %s to %s per expense\n",
		cli.FormatCurrency(forecast.MinExpense), cli.FormatCurrency(forecast.MaxExpense))
	return nil
}

func printRecurring(cmd *cobra.Command, patterns []insights.RecurringPattern) {
	for _, p := range patterns {
		cmd.Printf("  %-25s %10s every %d days  (%d seen, next ~%s, confidence %s)\n",
			p.Merchant,
			cli.FormatCurrency(p.Amount),
			p.FrequencyDays,
			p.Occurrences,
			p.NextExpected.Format("2006-01-02"),
			cli.FormatPercent(p.Confidence*100))
	}
}
