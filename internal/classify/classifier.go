// Package classify implements heuristic transaction categorization: merchant
// history, keyword scoring, and an amount-sign fallback.
package classify

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// HistoryConfidence is the fixed confidence for merchant-history matches.
const HistoryConfidence = 0.95

// FallbackConfidence is the confidence assigned by the amount-sign fallback.
const FallbackConfidence = 0.3

// Prediction is a category guess with a heuristic confidence in [0,1].
type Prediction struct {
	Category   model.Category
	Confidence float64
}

// Classifier resolves categories for (merchant, amount) pairs. It holds the
// merchant-history map rebuilt from the full transaction set; construct with
// NewClassifier and call Retrain after every mutating store operation so the
// history never lags behind persisted state.
type Classifier struct {
	history map[string]model.Category
}

// NewClassifier creates a classifier with empty merchant history.
func NewClassifier() *Classifier {
	return &Classifier{
		history: make(map[string]model.Category),
	}
}

// Predict resolves a category for a merchant and amount. Resolution order:
// exact merchant history, keyword scoring, then amount-sign fallback.
func (c *Classifier) Predict(merchant string, amount float64) Prediction {
	// Exact match on the raw merchant string, case-sensitive.
	if category, ok := c.history[merchant]; ok {
		return Prediction{Category: category, Confidence: HistoryConfidence}
	}

	if p, ok := c.scoreKeywords(merchant); ok {
		return p
	}

	if amount > 0 {
		return Prediction{Category: model.CategoryOtherIncome, Confidence: FallbackConfidence}
	}
	return Prediction{Category: model.CategoryOtherExpense, Confidence: FallbackConfidence}
}

// scoreKeywords counts keyword hits per category over the lower-cased
// merchant name. Ties resolve to the earliest category in enumeration order.
func (c *Classifier) scoreKeywords(merchant string) (Prediction, bool) {
	lowered := strings.ToLower(merchant)

	var (
		best      model.Category
		bestScore int
	)
	for _, category := range keywordCategories {
		score := 0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lowered, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	if bestScore == 0 {
		return Prediction{}, false
	}

	confidence := float64(bestScore) / 3
	if confidence > 1 {
		confidence = 1
	}
	return Prediction{Category: best, Confidence: confidence}, true
}

// Retrain rebuilds the merchant-history map from the full transaction set.
// For each merchant the most frequent historical category wins; on equal
// counts the category that reached the maximum first is kept, with
// transactions considered in date order for determinism.
func (c *Classifier) Retrain(transactions []model.Transaction) RetrainStats {
	ordered := make([]model.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	counts := make(map[string]map[model.Category]int)
	winners := make(map[string]model.Category)
	maxCounts := make(map[string]int)

	for _, txn := range ordered {
		if counts[txn.Merchant] == nil {
			counts[txn.Merchant] = make(map[model.Category]int)
		}
		counts[txn.Merchant][txn.Category]++

		// First category to reach the running maximum wins ties.
		if counts[txn.Merchant][txn.Category] > maxCounts[txn.Merchant] {
			maxCounts[txn.Merchant] = counts[txn.Merchant][txn.Category]
			winners[txn.Merchant] = txn.Category
		}
	}

	c.history = winners

	stats := RetrainStats{
		TrainingSamples: len(transactions),
		UniqueMerchants: len(winners),
	}
	slog.Debug("retrained merchant history",
		"samples", stats.TrainingSamples,
		"merchants", stats.UniqueMerchants)
	return stats
}

// HistorySize returns the number of merchants in the history map.
func (c *Classifier) HistorySize() int {
	return len(c.history)
}

// RetrainStats summarizes a retrain pass.
type RetrainStats struct {
	TrainingSamples int
	UniqueMerchants int
}
