package state

import "errors"

// ErrNonMonotoneTime is returned by Validate when a trajectory's recorded
// times do not strictly increase, as spec.md §7's CollaboratorFault requires
// detecting.
var ErrNonMonotoneTime = errors.New("state: trajectory times are not strictly increasing")

// ErrDimensionMismatch is returned by Validate when a trajectory's states do
// not share a single dimension.
var ErrDimensionMismatch = errors.New("state: trajectory states have inconsistent dimension")

// Trajectory is a finite sequence of timestamped states produced by
// integrating a control over an interval (spec.md §3).
type Trajectory struct {
	Times  []float64
	States []Vector
}

// Empty reports whether the trajectory carries no samples.
func (t Trajectory) Empty() bool {
	return len(t.States) == 0
}

// First returns the trajectory's first sample.
func (t Trajectory) First() (float64, Vector) {
	return t.Times[0], t.States[0]
}

// Last returns the trajectory's final sample.
func (t Trajectory) Last() (float64, Vector) {
	n := len(t.Times)
	return t.Times[n-1], t.States[n-1]
}

// PushBack appends one sample.
func (t *Trajectory) PushBack(time float64, x Vector) {
	t.Times = append(t.Times, time)
	t.States = append(t.States, x)
}

// PopBack removes and discards the final sample.
func (t *Trajectory) PopBack() {
	n := len(t.Times)
	if n == 0 {
		return
	}
	t.Times = t.Times[:n-1]
	t.States = t.States[:n-1]
}

// Concat appends the samples of other to t, dropping other's leading sample
// to avoid duplicating the shared junction point (spec.md §3).
func (t *Trajectory) Concat(other Trajectory) {
	if other.Empty() {
		return
	}
	if t.Empty() {
		t.Times = append(t.Times, other.Times...)
		t.States = append(t.States, other.States...)
		return
	}
	t.Times = append(t.Times, other.Times[1:]...)
	t.States = append(t.States, other.States[1:]...)
}

// Validate checks the structural invariants an external collaborator's
// returned trajectory must satisfy (spec.md §7 CollaboratorFault): a
// non-empty, dimensionally-consistent sequence with strictly increasing
// time.
func (t Trajectory) Validate() error {
	if len(t.Times) != len(t.States) || len(t.States) == 0 {
		return ErrDimensionMismatch
	}
	dim := len(t.States[0])
	for i, x := range t.States {
		if len(x) != dim {
			return ErrDimensionMismatch
		}
		if i > 0 && t.Times[i] <= t.Times[i-1] {
			return ErrNonMonotoneTime
		}
	}
	return nil
}
