package builtin

import (
	"math"

	"github.com/sayotte/glcplan/internal/state"
)

// DiskGoal is a Euclidean ball around a target point in the positional
// sub-vector of a DoubleIntegrator-shaped state.
type DiskGoal struct {
	Dim    int
	Center state.Vector // positional sub-vector, length Dim
	Radius float64
}

// NewDiskGoal returns a goal region centered on center with the given
// radius.
func NewDiskGoal(dim int, center state.Vector, radius float64) *DiskGoal {
	return &DiskGoal{Dim: dim, Center: center, Radius: radius}
}

// InGoal reports whether any sample of tr falls within the disk, returning
// the first such sample's index for the tail-cost formula of spec.md §4.6.
func (g *DiskGoal) InGoal(tr state.Trajectory) (bool, int) {
	for i, x := range tr.States {
		pos := x[:g.Dim]
		diff := pos.Add(g.Center.Scale(-1))
		if math.Sqrt(diff.NormSq()) <= g.Radius {
			return true, i
		}
	}
	return false, -1
}
