package builtin

import "github.com/sayotte/glcplan/internal/state"

// Box is an axis-aligned hyperrectangle over a trajectory's positional
// sub-vector, given by its elementwise minimum and maximum corners.
type Box struct {
	Min, Max state.Vector
}

func (b Box) contains(pos state.Vector) bool {
	for i := range pos {
		if pos[i] < b.Min[i] || pos[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// BoxObstacles is a set of axis-aligned boxes in the positional sub-vector
// of a DoubleIntegrator-shaped state.
type BoxObstacles struct {
	Dim   int
	Boxes []Box
}

// NewBoxObstacles returns an obstacle set over the given spatial dimension.
func NewBoxObstacles(dim int, boxes ...Box) *BoxObstacles {
	return &BoxObstacles{Dim: dim, Boxes: boxes}
}

// CollisionFree checks every recorded state of tr — for a DoubleIntegrator
// arc, each fixed integrator step — and reports false if any sample's
// position falls inside a box. The check is deterministic; the path between
// two consecutive samples is not checked, so a box crossed entirely between
// samples is not detected.
func (bo *BoxObstacles) CollisionFree(tr state.Trajectory) bool {
	for _, x := range tr.States {
		pos := x[:bo.Dim]
		for _, b := range bo.Boxes {
			if b.contains(pos) {
				return false
			}
		}
	}
	return true
}
