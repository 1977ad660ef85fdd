package model

import "time"

// FinancialGoal is a user-defined savings target. CurrentAmount is updated
// manually by the user; it is not derived from transactions.
type FinancialGoal struct {
	Deadline      *time.Time
	Name          string
	Category      string
	ID            int64
	TargetAmount  float64
	CurrentAmount float64
	Priority      int
}

// Progress returns completion as a percentage, 0 when the target is zero.
func (g *FinancialGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}
