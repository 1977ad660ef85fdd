package insights

import (
	"math"
	"sort"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// MaxRecurringConfidence caps confidence regardless of occurrence count.
const MaxRecurringConfidence = 0.95

// minRecurringOccurrences is how many times a charge must repeat before it is
// considered a candidate.
const minRecurringOccurrences = 3

// gapTolerance is the maximum relative deviation of any interval from the
// mean before a group is rejected.
const gapTolerance = 0.2

// RecurringPattern is a detected cluster of same-merchant, same-rounded-amount
// expenses at a consistent interval.
type RecurringPattern struct {
	LastDate      time.Time
	NextExpected  time.Time
	Merchant      string
	Amount        float64 // rounded to the nearest whole unit
	FrequencyDays int
	Occurrences   int
	Confidence    float64
}

type recurringKey struct {
	merchant string
	amount   float64
}

// DetectRecurring mines expense transactions for recurring charges. A group
// qualifies when it has at least 3 occurrences and every gap between
// consecutive occurrences deviates from the mean gap by less than 20%.
// Results are sorted descending by confidence.
func DetectRecurring(transactions []model.Transaction) []RecurringPattern {
	groups := make(map[recurringKey][]model.Transaction)
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		key := recurringKey{
			merchant: txn.Merchant,
			amount:   math.Round(txn.AbsAmount()),
		}
		groups[key] = append(groups[key], *txn)
	}

	var patterns []RecurringPattern
	for key, group := range groups {
		if len(group) < minRecurringOccurrences {
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		gaps := make([]float64, 0, len(group)-1)
		for i := 1; i < len(group); i++ {
			days := group[i].Date.Sub(group[i-1].Date).Hours() / 24
			gaps = append(gaps, math.Floor(days))
		}

		var sum float64
		for _, gap := range gaps {
			sum += gap
		}
		mean := sum / float64(len(gaps))
		if mean <= 0 {
			continue // same-day duplicates, not a schedule
		}

		consistent := true
		for _, gap := range gaps {
			if math.Abs(gap-mean)/mean >= gapTolerance {
				consistent = false
				break
			}
		}
		if !consistent {
			continue
		}

		last := group[len(group)-1]
		confidence := float64(len(group)) / 10
		if confidence > MaxRecurringConfidence {
			confidence = MaxRecurringConfidence
		}

		patterns = append(patterns, RecurringPattern{
			Merchant:      key.merchant,
			Amount:        key.amount,
			FrequencyDays: int(math.Round(mean)),
			Occurrences:   len(group),
			LastDate:      last.Date,
			NextExpected:  last.Date.AddDate(0, 0, int(math.Round(mean))),
			Confidence:    confidence,
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Confidence != patterns[j].Confidence {
			return patterns[i].Confidence > patterns[j].Confidence
		}
		return patterns[i].Merchant < patterns[j].Merchant
	})
	return patterns
}
