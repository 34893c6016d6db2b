package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayotte/glcplan/collab"
	"github.com/sayotte/glcplan/collab/builtin"
	"github.com/sayotte/glcplan/internal/node"
	"github.com/sayotte/glcplan/internal/search"
	"github.com/sayotte/glcplan/internal/state"
)

// controlGrid2D returns the 9-element {-1,0,1}x{-1,0,1} acceleration grid
// used by spec.md §8's double-integrator scenarios.
func controlGrid2D() []state.Vector {
	vals := []float64{-1, 0, 1}
	var grid []state.Vector
	for _, ax := range vals {
		for _, ay := range vals {
			grid = append(grid, state.Vector{ax, ay})
		}
	}
	return grid
}

func baseParams() search.Params {
	return search.Params{
		StateDim:       4, // [x, y, vx, vy]
		Resolution:     8,
		TimeScale:      1,
		DepthScale:     2,
		PartitionScale: 1,
		MaxIter:        100000,
		Initial:        state.Vector{0, 0, 0, 0},
		Controls:       controlGrid2D(),
	}
}

func baseCollaborators(obs collab.Obstacles) search.Collaborators {
	return search.Collaborators{
		Dynamics:  builtin.NewDoubleIntegrator(2, 1.0),
		Cost:      builtin.NewTimeCost(0),
		Heuristic: builtin.NewEuclideanHeuristic(2, state.Vector{1, 0}, 5.0),
		Obstacles: obs,
		Goal:      builtin.NewDiskGoal(2, state.Vector{1, 0}, 0.1),
	}
}

func TestScenarioStraightLineDoubleIntegrator(t *testing.T) {
	pl, err := search.New(baseParams(), baseCollaborators(builtin.NewBoxObstacles(2)))
	require.NoError(t, err)

	out, err := pl.Plan()
	require.NoError(t, err)
	require.True(t, out.FoundGoal, "an unobstructed straight shot to the goal must be found")
	assert.InDelta(t, 2.0, out.Cost, 0.2, "near-time-optimal cost should be close to 2*sqrt(1/1)")
}

func TestScenarioWallBlockingDirectPath(t *testing.T) {
	wall := builtin.NewBoxObstacles(2, builtin.Box{
		Min: state.Vector{0.4, -0.05},
		Max: state.Vector{0.6, 0.05},
	})

	plOpen, err := search.New(baseParams(), baseCollaborators(builtin.NewBoxObstacles(2)))
	require.NoError(t, err)
	openOut, err := plOpen.Plan()
	require.NoError(t, err)
	require.True(t, openOut.FoundGoal)

	plWalled, err := search.New(baseParams(), baseCollaborators(wall))
	require.NoError(t, err)
	walledOut, err := plWalled.Plan()
	require.NoError(t, err)

	require.True(t, walledOut.FoundGoal, "a detour around the wall must still reach the goal")
	assert.Greater(t, walledOut.Cost, openOut.Cost, "detouring around the wall must cost strictly more")
}

func TestScenarioInfeasibleGoalInsideObstacle(t *testing.T) {
	engulfingObstacle := builtin.NewBoxObstacles(2, builtin.Box{
		Min: state.Vector{0.8, -0.2},
		Max: state.Vector{1.2, 0.2},
	})

	pl, err := search.New(baseParams(), baseCollaborators(engulfingObstacle))
	require.NoError(t, err)

	out, err := pl.Plan()
	require.NoError(t, err)
	assert.False(t, out.FoundGoal, "no collision-free arc can ever enter a goal buried inside an obstacle")
}

func TestScenarioDeterminism(t *testing.T) {
	runOnce := func() search.PlannerOutput {
		pl, err := search.New(baseParams(), baseCollaborators(builtin.NewBoxObstacles(2)))
		require.NoError(t, err)
		out, err := pl.Plan()
		require.NoError(t, err)
		return out
	}

	a := runOnce()
	b := runOnce()

	assert.Equal(t, a.FoundGoal, b.FoundGoal)
	assert.InDelta(t, a.Cost, b.Cost, 1e-12)
	assert.Equal(t, a.Iterations, b.Iterations)
}

func TestScenarioDepthCutoff(t *testing.T) {
	params := baseParams()
	params.DepthScale = 0.13 // at R=8 this floors depth_limit to 2

	pl, err := search.New(params, baseCollaborators(builtin.NewBoxObstacles(2)))
	require.NoError(t, err)

	out, err := pl.Plan()
	require.NoError(t, err)
	require.False(t, out.FoundGoal)
	require.True(t, out.DepthCut)

	maxDepth := maxTreeDepth(pl.Root())
	assert.LessOrEqual(t, maxDepth, 2, "every admitted node must respect the depth limit")
}

// TestPathRecoveryMatchesPathNodes covers spec.md §8's P6 round-trip
// property: re-integrating RecoverTrajectory(PathToRoot(forward=true))
// must yield arc endpoints matching the recorded X of each path node.
func TestPathRecoveryMatchesPathNodes(t *testing.T) {
	pl, err := search.New(baseParams(), baseCollaborators(builtin.NewBoxObstacles(2)))
	require.NoError(t, err)

	out, err := pl.Plan()
	require.NoError(t, err)
	require.True(t, out.FoundGoal)

	path := pl.PathToRoot(true)
	require.GreaterOrEqual(t, len(path), 2, "a goal-reaching path must contain at least the root and one arc")

	for i := 1; i < len(path); i++ {
		traj, err := pl.RecoverTrajectory(path[:i+1])
		require.NoError(t, err)

		_, xf := traj.Last()
		want := path[i].X
		require.Len(t, xf, len(want))
		for d := range want {
			assert.InDelta(t, want[d], xf[d], 1e-6, "arc %d endpoint component %d must match the recorded node state", i, d)
		}
	}
}

func maxTreeDepth(n *node.Node) int {
	max := n.Depth
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if d := maxTreeDepth(c); d > max {
			max = d
		}
	}
	return max
}
