package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// demoMerchants are sample (merchant, category, amount) triples used for
// seeding a fresh database so the classifier has history to learn from.
var demoMerchants = []struct {
	merchant string
	category model.Category
	amount   float64
}{
	{"Starbucks", model.CategoryDining, -6.75},
	{"Uber", model.CategoryTransport, -18.40},
	{"Amazon", model.CategoryShopping, -64.99},
	{"Netflix", model.CategoryEntertainment, -15.49},
	{"Rent", model.CategoryRent, -1500},
	{"Salary", model.CategorySalary, 4200},
	{"Whole Foods", model.CategoryGroceries, -87.32},
	{"Shell", model.CategoryTransport, -45.10},
	{"Electricity Bill", model.CategoryUtilities, -92.50},
	{"CVS Pharmacy", model.CategoryHealthcare, -23.80},
}

// SeedDemoData inserts n synthetic transactions spread over the last 180
// days, categorized explicitly so the merchant history bootstraps.
func (e *FinanceEngine) SeedDemoData(ctx context.Context, n int) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < n; i++ {
		sample := demoMerchants[rng.Intn(len(demoMerchants))]
		daysAgo := rng.Intn(180) + 1

		category := sample.category
		if _, err := e.AddTransaction(ctx, NewTransaction{
			Date:     time.Now().AddDate(0, 0, -daysAgo),
			Amount:   sample.amount,
			Merchant: sample.merchant,
			Category: &category,
			Notes:    "Demo data",
		}); err != nil {
			return fmt.Errorf("failed to seed transaction %d: %w", i+1, err)
		}
	}

	return nil
}
