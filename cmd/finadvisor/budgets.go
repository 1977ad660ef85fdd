package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Goutham-1610/finance-advisor/internal/cli"
	"github.com/Goutham-1610/finance-advisor/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetDeleteCmd())
	cmd.AddCommand(budgetStatusCmd())
	cmd.AddCommand(budgetSuggestCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Create or update a budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE:  runBudgetSet,
	}

	cmd.Flags().String("period", string(model.PeriodMonthly), "budget period (weekly, monthly, yearly)")
	cmd.Flags().Float64("alert", model.DefaultAlertThreshold, "alert threshold as a fraction of the budget")

	return cmd
}

func runBudgetSet(cmd *cobra.Command, args []string) error {
	category, err := model.ParseCategory(args[0])
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}

	periodStr, _ := cmd.Flags().GetString("period")
	period, ok := model.ParseBudgetPeriod(periodStr)
	if !ok {
		return fmt.Errorf("invalid period %q", periodStr)
	}
	alert, _ := cmd.Flags().GetFloat64("alert")

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	existing, err := eng.Store().GetBudgetByCategory(cmd.Context(), category)
	if err != nil {
		return err
	}

	if existing != nil {
		existing.Amount = amount
		existing.Period = period
		existing.AlertThreshold = alert
		if _, err := eng.Store().UpdateBudget(cmd.Context(), existing); err != nil {
			return err
		}
		cmd.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s budget: %s per %s",
			category, cli.FormatCurrency(amount), period)))
		return nil
	}

	budget := &model.Budget{
		StartDate:      time.Now(),
		Category:       category,
		Amount:         amount,
		Period:         period,
		AlertThreshold: alert,
	}
	if _, err := eng.Store().InsertBudget(cmd.Context(), budget); err != nil {
		return err
	}
	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Set %s budget: %s per %s",
		category, cli.FormatCurrency(amount), period)))
	return nil
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, store, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := eng.Store().ListBudgets(cmd.Context())
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				cmd.Println(cli.FormatSubtle("No budgets set."))
				return nil
			}

			for i := range budgets {
				b := &budgets[i]
				cmd.Printf("%4d  %-25s %12s per %s\n",
					b.ID, b.Category, cli.FormatCurrency(b.Amount), b.Period)
			}
			return nil
		},
	}
}

func budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			eng, store, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			deleted, err := eng.Store().DeleteBudget(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				cmd.Println(cli.FormatWarning(fmt.Sprintf("No budget with id %d", id)))
				return nil
			}
			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted budget %d", id)))
			return nil
		},
	}
}

func budgetStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show spending against each budget",
		RunE:  runBudgetStatus,
	}

	cmd.Flags().Int("days", 30, "number of trailing days of spend to count")

	return cmd
}

func runBudgetStatus(cmd *cobra.Command, _ []string) error {
	days, _ := cmd.Flags().GetInt("days")

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	report, err := eng.BudgetReport(cmd.Context(), days)
	if err != nil {
		return err
	}

	if len(report.Budgets) == 0 {
		cmd.Println(cli.FormatSubtle("No budgets set."))
		return nil
	}

	cmd.Println(cli.FormatTitle(fmt.Sprintf("Budget status (last %d days)", days)))
	for _, status := range report.Budgets {
		label := string(status.Status)
		switch status.Status {
		case model.BudgetExceeded:
			label = cli.FormatError(label)
		case model.BudgetWarning:
			label = cli.FormatWarning(label)
		default:
			label = cli.FormatSuccess(label)
		}
		cmd.Printf("  %-25s %s of %s  (%s, %s remaining)  %s\n",
			status.Category,
			cli.FormatCurrency(status.Spent),
			cli.FormatCurrency(status.Budgeted),
			cli.FormatPercent(status.PercentUsed),
			cli.FormatCurrency(status.Remaining),
			label)
	}
	cmd.Printf("\n  Total: %s of %s\n",
		cli.FormatCurrency(report.TotalSpent), cli.FormatCurrency(report.TotalBudgeted))
	return nil
}

func budgetSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <total>",
		Short: "Suggest per-category budgets from recent spending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid total %q: %w", args[0], err)
			}

			eng, store, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			allocation, err := eng.SuggestBudgets(cmd.Context(), total)
			if err != nil {
				return err
			}
			if len(allocation) == 0 {
				cmd.Println(cli.FormatSubtle("Not enough spending history to suggest budgets."))
				return nil
			}

			categories := make([]model.Category, 0, len(allocation))
			for category := range allocation {
				categories = append(categories, category)
			}
			sort.Slice(categories, func(i, j int) bool {
				return allocation[categories[i]] > allocation[categories[j]]
			})

			cmd.Println(cli.FormatTitle(fmt.Sprintf("Suggested split of %s per month", cli.FormatCurrency(total))))
			for _, category := range categories {
				cmd.Printf("  %-25s %12s\n", category, cli.FormatCurrency(allocation[category]))
			}
			return nil
		},
	}
}
