package domain

import (
	"time"
)

// Adjustment is the ephemeral result of the learning engine for one
// (user, task) pair. It is applied in memory during synthesis and never
// persisted.
type Adjustment struct {
	ShiftedStart *time.Time
	ShiftedEnd   *time.Time
	Multiplier   float64
	Reasons      []string
}

// NeutralAdjustment is the no-op result every learning failure degrades
// to: start unchanged, multiplier 1.0.
func NeutralAdjustment() Adjustment {
	return Adjustment{Multiplier: 1.0}
}

func (a Adjustment) IsNoop() bool {
	return a.ShiftedStart == nil && a.Multiplier == 1.0
}
