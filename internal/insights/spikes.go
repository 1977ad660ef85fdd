package insights

import (
	"math"
	"sort"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// SpikeSeverity grades how sharp a category spending increase is.
type SpikeSeverity string

const (
	// SeverityMedium marks increases over 50%.
	SeverityMedium SpikeSeverity = "medium"
	// SeverityHigh marks increases over 100%.
	SeverityHigh SpikeSeverity = "high"
)

// spikeThresholdPercent is the minimum month-over-month increase reported.
const spikeThresholdPercent = 50

// Spike is a sudden month-over-month increase in category spending.
type Spike struct {
	Category        model.Category
	Severity        SpikeSeverity
	IncreasePercent float64
	PreviousAmount  float64
	CurrentAmount   float64
}

// DetectSpikes compares the current 30-day category totals against the
// preceding 30-day window and flags categories whose spend grew more than
// 50%. Categories absent from the prior window are skipped since no
// percentage can be computed against zero.
func DetectSpikes(transactions []model.Transaction, now time.Time) []Spike {
	currentStart := now.AddDate(0, 0, -30)
	previousStart := currentStart.AddDate(0, 0, -30)

	current := categoryTotals(transactions, currentStart, now)
	previous := categoryTotals(transactions, previousStart, currentStart)

	var spikes []Spike
	for category, amount := range current {
		prev := previous[category]
		if prev <= 0 {
			continue
		}
		increase := (amount - prev) / prev * 100
		if increase <= spikeThresholdPercent {
			continue
		}

		severity := SeverityMedium
		if increase > 100 {
			severity = SeverityHigh
		}
		spikes = append(spikes, Spike{
			Category:        category,
			IncreasePercent: math.Round(increase*100) / 100,
			PreviousAmount:  prev,
			CurrentAmount:   amount,
			Severity:        severity,
		})
	}

	sort.Slice(spikes, func(i, j int) bool {
		if spikes[i].IncreasePercent != spikes[j].IncreasePercent {
			return spikes[i].IncreasePercent > spikes[j].IncreasePercent
		}
		return spikes[i].Category < spikes[j].Category
	})
	return spikes
}

func categoryTotals(transactions []model.Transaction, start, end time.Time) map[model.Category]float64 {
	totals := make(map[model.Category]float64)
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		if txn.Date.Before(start) || txn.Date.After(end) {
			continue
		}
		totals[txn.Category] += txn.AbsAmount()
	}
	return totals
}
