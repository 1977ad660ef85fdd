package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Goutham-1610/finance-advisor/internal/cli"
	"github.com/Goutham-1610/finance-advisor/internal/importer"
	"github.com/Goutham-1610/finance-advisor/internal/service"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV file with a header row. Recognized
columns are date, amount, merchant, category, and notes. Rows with an
unknown or missing category are auto-categorized.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Importing"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	result, err := eng.NewImporter().Import(cmd.Context(), f, func() {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions", result.Imported)))
	if result.Failed > 0 {
		cmd.Println(cli.FormatWarning(fmt.Sprintf("%d rows failed:", result.Failed)))
		for _, msg := range result.Errors {
			cmd.Println("  " + cli.FormatSubtle(msg))
		}
	}
	return nil
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions to CSV",
		RunE:  runExport,
	}

	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	transactions, err := eng.Store().ListTransactions(cmd.Context(), service.TransactionFilter{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		f, createErr := os.Create(output)
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", output, createErr)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := importer.Export(out, transactions); err != nil {
		return err
	}
	if output != "" {
		cmd.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(transactions), output)))
	}
	return nil
}
