// Package insights detects spending patterns: anomalies, recurring charges,
// category spikes, and a moving-average forecast. Like analytics, every
// function is pure over a transaction snapshot.
package insights

import (
	"math"
	"sort"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// DefaultAnomalyThreshold is the number of standard deviations above the mean
// at which an expense is flagged.
const DefaultAnomalyThreshold = 2.0

// minAnomalySamples is the minimum expense count before anomaly detection runs.
const minAnomalySamples = 10

// FindAnomalies returns expense transactions whose magnitude exceeds
// mean + threshold*stddev over all expenses, sorted descending by magnitude.
// It returns nil when fewer than 10 expenses exist.
func FindAnomalies(transactions []model.Transaction, threshold float64) []model.Transaction {
	var expenses []model.Transaction
	for i := range transactions {
		if transactions[i].IsExpense() {
			expenses = append(expenses, transactions[i])
		}
	}

	if len(expenses) < minAnomalySamples {
		return nil
	}

	var sum float64
	for i := range expenses {
		sum += expenses[i].AbsAmount()
	}
	mean := sum / float64(len(expenses))

	var variance float64
	for i := range expenses {
		diff := expenses[i].AbsAmount() - mean
		variance += diff * diff
	}
	variance /= float64(len(expenses))
	stdDev := math.Sqrt(variance)

	cutoff := mean + threshold*stdDev

	var anomalies []model.Transaction
	for i := range expenses {
		if expenses[i].AbsAmount() > cutoff {
			anomalies = append(anomalies, expenses[i])
		}
	}

	sort.Slice(anomalies, func(i, j int) bool {
		return anomalies[i].AbsAmount() > anomalies[j].AbsAmount()
	})
	return anomalies
}
