package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Groceries")
	require.NoError(t, err)
	assert.Equal(t, CategoryGroceries, c)

	_, err = ParseCategory("groceries")
	assert.Error(t, err, "matching is exact, not case-insensitive")

	_, err = ParseCategory("Doodads")
	assert.Error(t, err)
}

func TestCategoryType(t *testing.T) {
	assert.Equal(t, CategoryTypeExpense, CategoryGroceries.Type())
	assert.Equal(t, CategoryTypeExpense, CategoryOtherExpense.Type())
	assert.Equal(t, CategoryTypeIncome, CategorySalary.Type())
	assert.Equal(t, CategoryTypeIncome, CategoryInvestment.Type())
}

func TestAllCategoriesAreValid(t *testing.T) {
	all := AllCategories()
	assert.Len(t, all, 16)
	for _, c := range all {
		assert.True(t, c.IsValid(), "category %q", c)
	}
	assert.False(t, Category("Doodads").IsValid())
}

func TestInferTransactionType(t *testing.T) {
	assert.Equal(t, TypeIncome, InferTransactionType(100))
	assert.Equal(t, TypeExpense, InferTransactionType(-100))
	assert.Equal(t, TypeExpense, InferTransactionType(0))
}

func TestTransactionAmountHelpers(t *testing.T) {
	expense := Transaction{Amount: -42.5, Type: TypeExpense}
	assert.InDelta(t, 42.5, expense.AbsAmount(), 1e-9)
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())

	transfer := Transaction{Amount: -500, Type: TypeTransfer}
	assert.False(t, transfer.IsExpense())
	assert.False(t, transfer.IsIncome())
}

func TestGoalProgress(t *testing.T) {
	goal := FinancialGoal{TargetAmount: 1000, CurrentAmount: 250}
	assert.InDelta(t, 25, goal.Progress(), 1e-9)

	zero := FinancialGoal{TargetAmount: 0, CurrentAmount: 250}
	assert.Zero(t, zero.Progress())
}

func TestParseBudgetPeriod(t *testing.T) {
	p, ok := ParseBudgetPeriod("monthly")
	require.True(t, ok)
	assert.Equal(t, PeriodMonthly, p)

	_, ok = ParseBudgetPeriod("fortnightly")
	assert.False(t, ok)
}

func TestBudgetDatesAreOptional(t *testing.T) {
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	b := Budget{Category: CategoryGroceries, Amount: 100, Period: PeriodMonthly, EndDate: &end}
	require.NotNil(t, b.EndDate)
	assert.True(t, b.StartDate.IsZero())
}
