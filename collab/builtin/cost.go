package builtin

import "github.com/sayotte/glcplan/internal/state"

// TimeCost charges an arc's elapsed time, independent of the control applied
// — the "cost = arc time" model of spec.md §8 scenario 1. It is additive by
// construction: concatenated arcs' costs sum because each is just a
// difference of endpoints.
type TimeCost struct {
	lipCost float64
}

// NewTimeCost returns a TimeCost with the stated cost Lipschitz bound.
func NewTimeCost(lipCost float64) *TimeCost {
	return &TimeCost{lipCost: lipCost}
}

// LipCost returns the configured cost Lipschitz bound.
func (tc *TimeCost) LipCost() float64 {
	return tc.lipCost
}

// Cost returns the arc's elapsed time: its last sample time minus its first.
func (tc *TimeCost) Cost(tr state.Trajectory, _ state.Vector) (float64, error) {
	t0, _ := tr.First()
	t1, _ := tr.Last()
	return t1 - t0, nil
}
