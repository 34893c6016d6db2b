package state_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayotte/glcplan/internal/state"
)

func TestTrajectoryConcatDropsLeadingSample(t *testing.T) {
	a := state.Trajectory{
		Times:  []float64{0, 1},
		States: []state.Vector{{0, 0}, {1, 0}},
	}
	b := state.Trajectory{
		Times:  []float64{1, 2},
		States: []state.Vector{{1, 0}, {2, 0}},
	}

	a.Concat(b)
	require.Len(t, a.Times, 3)
	assert.Equal(t, []float64{0, 1, 2}, a.Times)
}

func TestTrajectoryFirstLast(t *testing.T) {
	tr := state.Trajectory{
		Times:  []float64{0, 0.5, 1},
		States: []state.Vector{{0}, {0.5}, {1}},
	}
	t0, x0 := tr.First()
	tf, xf := tr.Last()
	assert.Equal(t, 0.0, t0)
	assert.Equal(t, state.Vector{0}, x0)
	assert.Equal(t, 1.0, tf)
	assert.Equal(t, state.Vector{1}, xf)
}

func TestTrajectoryValidateNonMonotone(t *testing.T) {
	tr := state.Trajectory{
		Times:  []float64{0, 1, 0.5},
		States: []state.Vector{{0}, {1}, {2}},
	}
	err := tr.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, state.ErrNonMonotoneTime))
}

func TestTrajectoryValidateDimensionMismatch(t *testing.T) {
	tr := state.Trajectory{
		Times:  []float64{0, 1},
		States: []state.Vector{{0, 0}, {1}},
	}
	err := tr.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, state.ErrDimensionMismatch))
}

func TestTrajectoryPopBack(t *testing.T) {
	tr := state.Trajectory{
		Times:  []float64{0, 1},
		States: []state.Vector{{0}, {1}},
	}
	tr.PopBack()
	assert.Len(t, tr.Times, 1)
	assert.Len(t, tr.States, 1)
}
