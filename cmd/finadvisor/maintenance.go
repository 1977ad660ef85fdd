package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Goutham-1610/finance-advisor/internal/cli"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo transactions",
		RunE:  runSeed,
	}

	cmd.Flags().Int("count", 120, "number of demo transactions to create")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	count, _ := cmd.Flags().GetInt("count")

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := eng.SeedDemoData(cmd.Context(), count); err != nil {
		return err
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Seeded %d demo transactions", count)))
	return nil
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, store, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatTitle("Database"))
			cmd.Printf("  Transactions: %d\n", stats.Transactions)
			cmd.Printf("  Budgets:      %d\n", stats.Budgets)
			cmd.Printf("  Goals:        %d\n", stats.Goals)
			cmd.Printf("  Size:         %.1f KB\n", float64(stats.SizeBytes)/1024)
			return nil
		},
	}
}
