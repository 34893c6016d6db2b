// Package collab declares the external collaborator interfaces the GLC core
// consumes (spec.md §6). The core treats each of these as an opaque,
// synchronous, pure, re-entrancy-free dependency; it never interprets state
// components itself.
package collab

import "github.com/sayotte/glcplan/internal/state"

// DynamicalSystem integrates the controlled ODE deterministically over
// [t0, t1] from x0 under control u. The returned trajectory's first time
// equals t0 and its last equals t1.
type DynamicalSystem interface {
	Sim(t0, t1 float64, x0 state.Vector, u state.Vector) (state.Trajectory, error)
	LipFlow() float64
}

// CostFunction assigns a non-negative cost to an arc under the control that
// produced it. Cost is additive: the cost of concatenated arcs equals the
// sum of their individual costs.
type CostFunction interface {
	Cost(tr state.Trajectory, u state.Vector) (float64, error)
	LipCost() float64
}

// Heuristic is an admissible lower bound on the remaining cost from x to the
// goal.
type Heuristic interface {
	CostToGo(x state.Vector) float64
}

// Obstacles is a pure predicate over continuous arcs.
type Obstacles interface {
	CollisionFree(tr state.Trajectory) bool
}

// GoalRegion reports whether tr enters the goal and, if so, the index of the
// first in-goal sample.
type GoalRegion interface {
	InGoal(tr state.Trajectory) (inGoal bool, firstIndex int)
}
