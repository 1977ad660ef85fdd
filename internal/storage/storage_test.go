package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goutham-1610/finance-advisor/internal/common"
	"github.com/Goutham-1610/finance-advisor/internal/model"
	"github.com/Goutham-1610/finance-advisor/internal/service"
	"github.com/Goutham-1610/finance-advisor/internal/storage"
	"github.com/Goutham-1610/finance-advisor/internal/testutil"
)

func newTransaction(date time.Time, merchant string, amount float64, category model.Category) *model.Transaction {
	return &model.Transaction{
		Date:     date,
		Merchant: merchant,
		Amount:   amount,
		Category: category,
		Type:     model.InferTransactionType(amount),
	}
}

func TestTransactionCRUD(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	confidence := 0.75
	txn := &model.Transaction{
		Date:       time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		Merchant:   "Safeway",
		Amount:     -82.50,
		Category:   model.CategoryGroceries,
		Type:       model.TypeExpense,
		Notes:      "weekly shop",
		Tags:       []string{"food", "weekly"},
		Confidence: &confidence,
	}

	id, err := store.InsertTransaction(ctx, txn)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := store.GetTransaction(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Safeway", got.Merchant)
	assert.InDelta(t, -82.50, got.Amount, 1e-9)
	assert.Equal(t, model.CategoryGroceries, got.Category)
	assert.Equal(t, model.TypeExpense, got.Type)
	assert.Equal(t, "weekly shop", got.Notes)
	assert.Equal(t, []string{"food", "weekly"}, got.Tags)
	require.NotNil(t, got.Confidence)
	assert.InDelta(t, 0.75, *got.Confidence, 1e-9)

	got.Amount = -90
	got.Category = model.CategoryDining
	updated, err := store.UpdateTransaction(ctx, got)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err = store.GetTransaction(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -90, got.Amount, 1e-9)
	assert.Equal(t, model.CategoryDining, got.Category)

	deleted, err := store.DeleteTransaction(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = store.GetTransaction(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetTransactionNotFound(t *testing.T) {
	store := testutil.SetupTestDB(t)

	got, err := store.GetTransaction(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateAndDeleteMissingTransaction(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	missing := newTransaction(time.Now(), "Ghost", -1, model.CategoryOtherExpense)
	missing.ID = 12345

	updated, err := store.UpdateTransaction(ctx, missing)
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := store.DeleteTransaction(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInsertTransactionValidation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := store.InsertTransaction(ctx, nil)
	assert.Error(t, err)

	_, err = store.InsertTransaction(ctx, &model.Transaction{
		Date: time.Now(), Amount: -5, Category: model.CategoryDining, Type: model.TypeExpense,
	})
	assert.Error(t, err, "missing merchant should be rejected")

	_, err = store.InsertTransaction(ctx, &model.Transaction{
		Date: time.Now(), Amount: -5, Merchant: "X",
		Category: "Not A Category", Type: model.TypeExpense,
	})
	assert.Error(t, err, "unknown category should be rejected")
}

func TestListTransactionsPagination(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.InsertTransaction(ctx,
			newTransaction(base.AddDate(0, 0, i), "Safeway", -float64(i+1), model.CategoryGroceries))
		require.NoError(t, err)
	}

	all, err := store.ListTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	// Newest first.
	assert.InDelta(t, -5, all[0].Amount, 1e-9)

	page, err := store.ListTransactions(ctx, service.TransactionFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.InDelta(t, -3, page[0].Amount, 1e-9)

	count, err := store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestGetTransactionsByDateRange(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		_, err := store.InsertTransaction(ctx,
			newTransaction(base.AddDate(0, 0, i), "Safeway", -10, model.CategoryGroceries))
		require.NoError(t, err)
	}

	// Inclusive at both ends.
	got, err := store.GetTransactionsByDateRange(ctx, base.AddDate(0, 0, 2), base.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Len(t, got, 4)

	_, err = store.GetTransactionsByDateRange(ctx, base.AddDate(0, 0, 5), base)
	assert.Error(t, err, "inverted range should be rejected")
}

func TestSearchTransactions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	byMerchant := newTransaction(base, "Corner Coffee", -4, model.CategoryDining)
	_, err := store.InsertTransaction(ctx, byMerchant)
	require.NoError(t, err)

	byNotes := newTransaction(base, "Safeway", -30, model.CategoryGroceries)
	byNotes.Notes = "coffee beans and filters"
	_, err = store.InsertTransaction(ctx, byNotes)
	require.NoError(t, err)

	other := newTransaction(base, "Shell", -40, model.CategoryTransport)
	_, err = store.InsertTransaction(ctx, other)
	require.NoError(t, err)

	got, err := store.SearchTransactions(ctx, "coffee")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = store.SearchTransactions(ctx, "")
	assert.Error(t, err, "empty query should be rejected")
}

func TestBudgetCRUD(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	budget := &model.Budget{
		Category:       model.CategoryGroceries,
		Amount:         500,
		Period:         model.PeriodMonthly,
		AlertThreshold: 0.8,
	}
	id, err := store.InsertBudget(ctx, budget)
	require.NoError(t, err)
	require.Positive(t, id)
	assert.False(t, budget.StartDate.IsZero(), "insert should default the start date")

	got, err := store.GetBudget(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.CategoryGroceries, got.Category)
	assert.InDelta(t, 500, got.Amount, 1e-9)
	assert.Equal(t, model.PeriodMonthly, got.Period)

	byCategory, err := store.GetBudgetByCategory(ctx, model.CategoryGroceries)
	require.NoError(t, err)
	require.NotNil(t, byCategory)
	assert.Equal(t, id, byCategory.ID)

	got.Amount = 600
	updated, err := store.UpdateBudget(ctx, got)
	require.NoError(t, err)
	assert.True(t, updated)

	budgets, err := store.ListBudgets(ctx)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.InDelta(t, 600, budgets[0].Amount, 1e-9)

	deleted, err := store.DeleteBudget(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := store.GetBudgetByCategory(ctx, model.CategoryGroceries)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBudgetUniquePerCategoryAndPeriod(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	first := &model.Budget{
		Category: model.CategoryDining, Amount: 200,
		Period: model.PeriodMonthly, AlertThreshold: 0.8,
	}
	_, err := store.InsertBudget(ctx, first)
	require.NoError(t, err)

	duplicate := &model.Budget{
		Category: model.CategoryDining, Amount: 300,
		Period: model.PeriodMonthly, AlertThreshold: 0.8,
	}
	_, err = store.InsertBudget(ctx, duplicate)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	// A different period for the same category is fine.
	weekly := &model.Budget{
		Category: model.CategoryDining, Amount: 50,
		Period: model.PeriodWeekly, AlertThreshold: 0.8,
	}
	_, err = store.InsertBudget(ctx, weekly)
	assert.NoError(t, err)
}

func TestGoalCRUD(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	deadline := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	goal := &model.FinancialGoal{
		Name:          "Emergency fund",
		TargetAmount:  10000,
		CurrentAmount: 2500,
		Deadline:      &deadline,
		Category:      "savings",
		Priority:      1,
	}
	id, err := store.InsertGoal(ctx, goal)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := store.GetGoal(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Emergency fund", got.Name)
	assert.InDelta(t, 25, got.Progress(), 1e-9)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(deadline))

	got.CurrentAmount = 5000
	updated, err := store.UpdateGoal(ctx, got)
	require.NoError(t, err)
	assert.True(t, updated)

	goals, err := store.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.InDelta(t, 50, goals[0].Progress(), 1e-9)

	deleted, err := store.DeleteGoal(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := store.GetGoal(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.ExpectedSchemaVersion, version)
}

func TestStats(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := store.InsertTransaction(ctx,
		newTransaction(time.Now(), "Safeway", -10, model.CategoryGroceries))
	require.NoError(t, err)
	_, err = store.InsertBudget(ctx, &model.Budget{
		Category: model.CategoryGroceries, Amount: 100,
		Period: model.PeriodMonthly, AlertThreshold: 0.8,
	})
	require.NoError(t, err)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Transactions)
	assert.Equal(t, 1, stats.Budgets)
	assert.Equal(t, 0, stats.Goals)
}
