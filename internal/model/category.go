package model

import "fmt"

// CategoryType indicates whether a category applies to income or expense transactions.
type CategoryType string

const (
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
)

// Category is a closed set of transaction categories. Free-form strings are
// rejected at the boundaries so invalid categories are never persisted.
type Category string

// Expense categories.
const (
	CategoryGroceries     Category = "Groceries"
	CategoryDining        Category = "Dining & Restaurants"
	CategoryTransport     Category = "Transportation"
	CategoryUtilities     Category = "Utilities"
	CategoryRent          Category = "Rent/Mortgage"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryTravel        Category = "Travel"
	CategoryInsurance     Category = "Insurance"
	CategoryOtherExpense  Category = "Other Expense"
)

// Income categories.
const (
	CategorySalary      Category = "Salary"
	CategoryFreelance   Category = "Freelance"
	CategoryInvestment  Category = "Investment Income"
	CategoryOtherIncome Category = "Other Income"
)

// expenseCategories lists expense categories in their canonical enumeration
// order. This order breaks ties during keyword scoring, so it must stay stable.
var expenseCategories = []Category{
	CategoryGroceries,
	CategoryDining,
	CategoryTransport,
	CategoryUtilities,
	CategoryRent,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryInsurance,
	CategoryOtherExpense,
}

var incomeCategories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryOtherIncome,
}

// ExpenseCategories returns all expense categories in enumeration order.
func ExpenseCategories() []Category {
	out := make([]Category, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// IncomeCategories returns all income categories in enumeration order.
func IncomeCategories() []Category {
	out := make([]Category, len(incomeCategories))
	copy(out, incomeCategories)
	return out
}

// AllCategories returns every category, expenses first.
func AllCategories() []Category {
	out := make([]Category, 0, len(expenseCategories)+len(incomeCategories))
	out = append(out, expenseCategories...)
	out = append(out, incomeCategories...)
	return out
}

// ParseCategory converts a string into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Type reports whether the category is an income or expense category.
func (c Category) Type() CategoryType {
	for _, inc := range incomeCategories {
		if c == inc {
			return CategoryTypeIncome
		}
	}
	return CategoryTypeExpense
}

// IsValid reports whether the category is part of the closed set.
func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

func (c Category) String() string {
	return string(c)
}
