package builtin

import (
	"math"

	"github.com/sayotte/glcplan/internal/state"
)

// EuclideanHeuristic lower-bounds the remaining time-cost-to-go by straight
// line distance to a fixed goal point over a worst-case speed bound, over
// the positional sub-vector of a DoubleIntegrator-shaped state. It remains
// admissible as long as maxSpeed truly bounds attainable speed, since no
// feasible trajectory can cover the remaining distance faster.
type EuclideanHeuristic struct {
	Dim      int
	Goal     state.Vector // positional sub-vector, length Dim
	MaxSpeed float64
}

// NewEuclideanHeuristic returns a heuristic targeting goal at maxSpeed.
func NewEuclideanHeuristic(dim int, goal state.Vector, maxSpeed float64) *EuclideanHeuristic {
	return &EuclideanHeuristic{Dim: dim, Goal: goal, MaxSpeed: maxSpeed}
}

// CostToGo returns ‖pos(x) - Goal‖ / MaxSpeed.
func (h *EuclideanHeuristic) CostToGo(x state.Vector) float64 {
	pos := x[:h.Dim]
	diff := pos.Add(h.Goal.Scale(-1))
	dist := math.Sqrt(diff.NormSq())
	if h.MaxSpeed <= 0 {
		return 0
	}
	return dist / h.MaxSpeed
}
