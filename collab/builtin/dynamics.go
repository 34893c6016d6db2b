// Package builtin supplies concrete, runnable implementations of the
// collab interfaces so glcplan is an executable module rather than just a
// library shell (SPEC_FULL.md "Collaborators").
package builtin

import (
	"fmt"

	"github.com/sayotte/glcplan/internal/state"
)

// DoubleIntegrator implements ẍ = u over a fixed spatial dimension: state is
// [position (dim)... velocity (dim)...], and the control is an acceleration
// vector of length dim. This is the system spec.md §8's worked scenarios
// (1-5) are defined over.
type DoubleIntegrator struct {
	Dim      int
	Substeps int // RK4 steps per Sim call; 0 defaults to 8
	lipFlow  float64
}

// NewDoubleIntegrator returns a DoubleIntegrator of the given spatial
// dimension with the stated flow Lipschitz constant.
func NewDoubleIntegrator(dim int, lipFlow float64) *DoubleIntegrator {
	return &DoubleIntegrator{Dim: dim, Substeps: 8, lipFlow: lipFlow}
}

// LipFlow returns the configured flow Lipschitz bound.
func (di *DoubleIntegrator) LipFlow() float64 {
	return di.lipFlow
}

func (di *DoubleIntegrator) derivative(x, u state.Vector) state.Vector {
	dx := state.NewVector(2 * di.Dim)
	for i := 0; i < di.Dim; i++ {
		dx[i] = x[di.Dim+i] // dPos/dt = velocity
		dx[di.Dim+i] = u[i] // dVel/dt = control
	}
	return dx
}

// Sim integrates from x0 under u over [t0, t1] with fixed-step RK4,
// recording every substep so obstacle and cost collaborators can inspect the
// full arc, not just its endpoints.
func (di *DoubleIntegrator) Sim(t0, t1 float64, x0, u state.Vector) (state.Trajectory, error) {
	if len(x0) != 2*di.Dim {
		return state.Trajectory{}, fmt.Errorf("builtin: double integrator expected state of dimension %d, got %d", 2*di.Dim, len(x0))
	}
	if len(u) != di.Dim {
		return state.Trajectory{}, fmt.Errorf("builtin: double integrator expected control of dimension %d, got %d", di.Dim, len(u))
	}

	steps := di.Substeps
	if steps <= 0 {
		steps = 8
	}
	h := (t1 - t0) / float64(steps)

	tr := state.Trajectory{}
	tr.PushBack(t0, x0.Clone())

	x := x0
	t := t0
	for i := 0; i < steps; i++ {
		k1 := di.derivative(x, u)
		k2 := di.derivative(x.Add(k1.Scale(h/2)), u)
		k3 := di.derivative(x.Add(k2.Scale(h/2)), u)
		k4 := di.derivative(x.Add(k3.Scale(h)), u)

		sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
		x = x.Add(sum.Scale(h / 6))
		t += h
		tr.PushBack(t, x.Clone())
	}
	// Guard against float accumulation drifting the final sample off t1.
	tr.Times[len(tr.Times)-1] = t1
	return tr, nil
}
