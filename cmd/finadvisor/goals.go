package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Goutham-1610/finance-advisor/internal/cli"
	"github.com/Goutham-1610/finance-advisor/internal/model"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalListCmd())
	cmd.AddCommand(goalUpdateCmd())
	cmd.AddCommand(goalDeleteCmd())

	return cmd
}

func goalAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE:  runGoalAdd,
	}

	cmd.Flags().String("deadline", "", "target date (YYYY-MM-DD)")
	cmd.Flags().String("category", "", "free-form category label")
	cmd.Flags().Int("priority", 1, "priority, lower is more important")
	cmd.Flags().Float64("current", 0, "amount already saved")

	return cmd
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	target, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", args[1], err)
	}

	var deadline *time.Time
	if deadlineStr, _ := cmd.Flags().GetString("deadline"); deadlineStr != "" {
		parsed, parseErr := parseDateArg(deadlineStr)
		if parseErr != nil {
			return parseErr
		}
		deadline = &parsed
	}

	category, _ := cmd.Flags().GetString("category")
	priority, _ := cmd.Flags().GetInt("priority")
	current, _ := cmd.Flags().GetFloat64("current")

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	goal := &model.FinancialGoal{
		Name:          args[0],
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Category:      category,
		Priority:      priority,
	}
	id, err := eng.Store().InsertGoal(cmd.Context(), goal)
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Created goal #%d: %s (%s)",
		id, goal.Name, cli.FormatCurrency(goal.TargetAmount))))
	return nil
}

func goalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, store, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			goals, err := eng.Store().ListGoals(cmd.Context())
			if err != nil {
				return err
			}

			if len(goals) == 0 {
				cmd.Println(cli.FormatSubtle("No goals yet."))
				return nil
			}

			for i := range goals {
				g := &goals[i]
				deadline := ""
				if g.Deadline != nil {
					deadline = "  by " + g.Deadline.Format("2006-01-02")
				}
				cmd.Printf("%4d  %-25s %s of %s  (%s)%s\n",
					g.ID, g.Name,
					cli.FormatCurrency(g.CurrentAmount),
					cli.FormatCurrency(g.TargetAmount),
					cli.FormatPercent(g.Progress()),
					cli.FormatSubtle(deadline))
			}
			return nil
		},
	}
}

func goalUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <saved>",
		Short: "Update the saved amount on a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			saved, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			eng, store, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			goal, err := eng.Store().GetGoal(cmd.Context(), id)
			if err != nil {
				return err
			}
			if goal == nil {
				cmd.Println(cli.FormatWarning(fmt.Sprintf("No goal with id %d", id)))
				return nil
			}

			goal.CurrentAmount = saved
			if _, err := eng.Store().UpdateGoal(cmd.Context(), goal); err != nil {
				return err
			}

			msg := fmt.Sprintf("%s: %s of %s (%s)",
				goal.Name,
				cli.FormatCurrency(goal.CurrentAmount),
				cli.FormatCurrency(goal.TargetAmount),
				cli.FormatPercent(goal.Progress()))
			if goal.CurrentAmount >= goal.TargetAmount && goal.TargetAmount > 0 {
				cmd.Println(cli.FormatSuccess("Goal reached! " + msg))
			} else {
				cmd.Println(cli.FormatSuccess(msg))
			}
			return nil
		},
	}
}

func goalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
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

			deleted, err := eng.Store().DeleteGoal(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				cmd.Println(cli.FormatWarning(fmt.Sprintf("No goal with id %d", id)))
				return nil
			}
			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted goal %d", id)))
			return nil
		},
	}
}
