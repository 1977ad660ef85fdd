package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Goutham-1610/finance-advisor/internal/cli"
	"github.com/Goutham-1610/finance-advisor/internal/engine"
	"github.com/Goutham-1610/finance-advisor/internal/model"
	"github.com/Goutham-1610/finance-advisor/internal/service"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <amount> <merchant>",
		Short: "Add a transaction",
		Long: `Add a transaction. Negative amounts are expenses, positive amounts income.
When --category is omitted the transaction is auto-categorized.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAdd,
	}

	cmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().String("category", "", "category (default: auto-categorize)")
	cmd.Flags().String("type", "", "transaction type (expense, income, transfer; default: inferred from sign)")
	cmd.Flags().String("notes", "", "free-text notes")
	cmd.Flags().StringSlice("tags", nil, "comma-separated tags")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	merchant := strings.Join(args[1:], " ")

	date := time.Now()
	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		if date, err = parseDateArg(dateStr); err != nil {
			return err
		}
	}

	categoryStr, _ := cmd.Flags().GetString("category")
	category, err := parseCategoryFlag(categoryStr)
	if err != nil {
		return err
	}

	var txnType *model.TransactionType
	if typeStr, _ := cmd.Flags().GetString("type"); typeStr != "" {
		parsed, ok := model.ParseTransactionType(typeStr)
		if !ok {
			return fmt.Errorf("invalid transaction type %q", typeStr)
		}
		txnType = &parsed
	}

	notes, _ := cmd.Flags().GetString("notes")
	tags, _ := cmd.Flags().GetStringSlice("tags")

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txn, err := eng.AddTransaction(cmd.Context(), engine.NewTransaction{
		Date:     date,
		Amount:   amount,
		Merchant: merchant,
		Category: category,
		Type:     txnType,
		Notes:    notes,
		Tags:     tags,
	})
	if err != nil {
		return err
	}

	confidence := ""
	if txn.Confidence != nil && *txn.Confidence < 1 {
		confidence = cli.FormatSubtle(fmt.Sprintf(" (confidence %.0f%%)", *txn.Confidence*100))
	}
	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Added #%d: %s %s → %s%s",
		txn.ID, txn.Merchant, cli.FormatCurrency(txn.Amount), txn.Category, confidence)))
	return nil
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE:  runList,
	}

	cmd.Flags().Int("limit", 20, "maximum transactions to show")
	cmd.Flags().Int("offset", 0, "number of transactions to skip")
	cmd.Flags().String("category", "", "only show one category")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	categoryStr, _ := cmd.Flags().GetString("category")

	eng, store, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var transactions []model.Transaction
	if categoryStr != "" {
		category, parseErr := model.ParseCategory(categoryStr)
		if parseErr != nil {
			return parseErr
		}
		transactions, err = eng.Store().GetTransactionsByCategory(cmd.Context(), category)
	} else {
		transactions, err = eng.Store().ListTransactions(cmd.Context(), service.TransactionFilter{
			Limit:  limit,
			Offset: offset,
		})
	}
	if err != nil {
		return err
	}

	printTransactions(cmd, transactions)
	return nil
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search transactions by merchant or notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := eng.Store().SearchTransactions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printTransactions(cmd, transactions)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
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

			deleted, err := eng.DeleteTransaction(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				cmd.Println(cli.FormatWarning(fmt.Sprintf("No transaction with id %d", id)))
				return nil
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
			return nil
		},
	}
}

func printTransactions(cmd *cobra.Command, transactions []model.Transaction) {
	if len(transactions) == 0 {
		cmd.Println(cli.FormatSubtle("No transactions found."))
		return
	}

	for i := range transactions {
		txn := &transactions[i]
		sign := "-"
		if txn.Amount > 0 {
			sign = "+"
		}
		cmd.Printf("%6d  %s  %s%s  %-25s %s\n",
			txn.ID,
			txn.Date.Format("2006-01-02"),
			sign,
			cli.FormatCurrency(txn.Amount),
			txn.Merchant,
			cli.FormatSubtle(string(txn.Category)),
		)
	}
}
