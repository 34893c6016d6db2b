// Package search implements the GLC expansion loop: the best-first open
// queue, the label-correcting spatial discretization over domains, and the
// planner driver that ties them together (spec.md §4).
package search

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sayotte/glcplan/collab"
	"github.com/sayotte/glcplan/internal/domain"
	"github.com/sayotte/glcplan/internal/node"
	"github.com/sayotte/glcplan/internal/state"
)

// Collaborators bundles the five external dependencies of spec.md §6.
type Collaborators struct {
	Dynamics  collab.DynamicalSystem
	Cost      collab.CostFunction
	Heuristic collab.Heuristic
	Obstacles collab.Obstacles
	Goal      collab.GoalRegion
}

// PlannerOutput is the result of a completed Plan call.
type PlannerOutput struct {
	Cost       float64
	WallTime   time.Duration
	RunID      uuid.UUID
	Iterations int
	FoundGoal  bool
	DepthCut   bool
}

// Option configures a Planner at construction.
type Option func(*Planner)

// WithLogger attaches a zap logger the planner will use for termination and
// progress messages. The default is a no-op logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(pl *Planner) { pl.log = l }
}

// Planner is the GLC search engine: single-threaded, non-suspending, and
// deterministic given its collaborators (spec.md §5).
type Planner struct {
	params Params
	collab Collaborators
	scale  scalingConstants

	root *node.Node
	best *node.Node

	open    *openQueueHandle
	domains *domain.Index

	upper     float64
	live      bool
	foundGoal bool
	depthCut  bool
	iter      int

	wallStart time.Time
	wallTime  time.Duration

	runID uuid.UUID
	log   *zap.SugaredLogger
}

// New validates params, derives the §4.1 scaling constants, and seeds the
// search with the root node. It returns ErrInvalidParameters if construction
// fails validation.
func New(params Params, collaborators Collaborators, opts ...Option) (*Planner, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	pl := &Planner{
		params:  params,
		collab:  collaborators,
		scale:   computeScaling(params, collaborators.Dynamics.LipFlow(), collaborators.Cost.LipCost()),
		open:    newOpenQueue(),
		domains: domain.NewIndex(),
		best:    node.InfiniteCostNode(),
		upper:   math.MaxFloat64 / 2.0,
		live:    true,
		runID:   uuid.New(),
		log:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(pl)
	}

	pl.root = node.New(len(params.Controls))
	pl.root.X = params.Initial.Clone()
	pl.root.Merit = collaborators.Heuristic.CostToGo(pl.root.X)

	coord := pl.root.X.Scale(pl.scale.partitionScale).Floor()
	rootDomain := pl.domains.FindOrInsert(coord)
	rootDomain.Label = pl.root

	pl.open.push(pl.root)

	pl.log.Infow("glcplan pre-search summary",
		"run_id", pl.runID,
		"eps", pl.scale.eps,
		"expand_time", pl.scale.dt,
		"depth_limit", pl.scale.depthLimit,
		"domain_size", 1.0/pl.scale.eta,
		"max_iter", params.MaxIter,
	)

	return pl, nil
}

// expand executes one iteration of spec.md §4.3: pop the minimum-merit
// node, integrate every control, file survivors into their cells, then
// refresh every touched domain (§4.4).
func (pl *Planner) expand() error {
	pl.iter++

	if pl.open.empty() {
		pl.live = false
		pl.log.Infow("search exhausted: open queue empty", "run_id", pl.runID, "iterations", pl.iter)
		return nil
	}

	current := pl.open.popMin()

	if current.Depth >= pl.scale.depthLimit {
		pl.live = false
		pl.depthCut = true
		pl.log.Infow("depth cutoff reached", "run_id", pl.runID, "depth_limit", pl.scale.depthLimit)
		return nil
	}

	// touched tracks domains in first-touched order (not a map) so the
	// subsequent refresh pass — and the open-queue insertion sequence it
	// produces — stays deterministic across runs, as spec.md §4.5 requires.
	var touched []*domain.Domain
	seen := make(map[*domain.Domain]bool)
	arcOf := make(map[*node.Node]state.Trajectory)

	for i, u := range pl.params.Controls {
		c := node.New(len(pl.params.Controls))
		c.UIdx = i

		tr, err := pl.collab.Dynamics.Sim(current.T, current.T+pl.scale.dt, current.X, u)
		if err != nil {
			return pl.fault("dynamics.Sim", err)
		}
		if err := tr.Validate(); err != nil {
			return pl.fault("dynamics.Sim returned malformed trajectory", err)
		}
		arcOf[c] = tr

		costDelta, err := pl.collab.Cost.Cost(tr, u)
		if err != nil {
			return pl.fault("cost.Cost", err)
		}
		if costDelta < 0 || math.IsNaN(costDelta) || math.IsInf(costDelta, 0) {
			return pl.fault("cost.Cost returned an invalid cost", fmt.Errorf("cost=%v", costDelta))
		}

		tf, xf := tr.Last()
		c.Cost = current.Cost + costDelta
		c.X = xf
		c.T = tf
		c.Merit = c.Cost + pl.collab.Heuristic.CostToGo(c.X)

		coord := c.X.Scale(pl.scale.partitionScale).Floor()
		b := pl.domains.FindOrInsert(coord)
		if !seen[b] {
			seen[b] = true
			touched = append(touched, b)
		}

		if c.Cost < b.Label.Cost+pl.scale.eps {
			b.PushCandidate(c)
		}
	}

	for _, b := range touched {
		if err := pl.refreshDomain(current, b, arcOf); err != nil {
			return err
		}
		if b.Empty() {
			pl.domains.Delete(b)
		}
	}

	return nil
}

func (pl *Planner) fault(where string, err error) error {
	pl.live = false
	pl.log.Errorw("collaborator fault", "run_id", pl.runID, "where", where, "error", err)
	return fmt.Errorf("%w: %s: %v", ErrCollaboratorFault, where, err)
}

// refreshDomain drains b's candidate queue in cost order, collision-checking
// each survivor and admitting it into the tree (and, pre-goal, into the open
// queue), relabeling b with the cheapest admitted survivor (spec.md §4.4).
func (pl *Planner) refreshDomain(expanded *node.Node, b *domain.Domain, arcOf map[*node.Node]state.Trajectory) error {
	foundBest := false

	for {
		c := b.PeekCandidate()
		if c == nil {
			break
		}
		if c.Cost >= b.Label.Cost+pl.scale.eps {
			break
		}

		tr := arcOf[c]
		if pl.collab.Obstacles.CollisionFree(tr) {
			node.AddChild(expanded, c, pl.scale.dt)
			b.NoteAdmitted()

			if !pl.foundGoal {
				pl.open.push(c)
			}
			if !foundBest {
				foundBest = true
				b.Label = c
			}

			inGoal, k := pl.collab.Goal.InGoal(tr)
			if inGoal && c.Cost < pl.best.Cost {
				pl.foundGoal = true
				pl.live = false
				pl.wallTime = time.Since(pl.wallStart)
				pl.best = c

				u := pl.params.Controls[c.UIdx]
				tLast, _ := tr.Last()
				tail := (tLast - tr.Times[k]) * (1.0 + pl.collab.Cost.LipCost()*u.NormSq())
				pl.upper = c.Cost - tail

				pl.log.Infow("goal reached",
					"run_id", pl.runID,
					"iteration", pl.iter,
					"cost", c.Cost,
					"tail_cost", tail,
					"upper", pl.upper,
				)
			}
		}

		b.PopCandidate()
	}

	return nil
}

// Plan runs expand() to termination (spec.md §4.7): open-queue exhaustion,
// depth cutoff, or goal discovery.
func (pl *Planner) Plan() (PlannerOutput, error) {
	pl.wallStart = time.Now()
	for pl.live {
		if err := pl.expand(); err != nil {
			return PlannerOutput{}, err
		}
	}
	return PlannerOutput{
		Cost:       pl.upper,
		WallTime:   pl.wallTime,
		RunID:      pl.runID,
		Iterations: pl.iter,
		FoundGoal:  pl.foundGoal,
		DepthCut:   pl.depthCut,
	}, nil
}

// PathToRoot walks best back through its parents. If forward, the path is
// reversed so it runs root-first.
func (pl *Planner) PathToRoot(forward bool) []*node.Node {
	var path []*node.Node
	for n := pl.best; n != nil; n = n.Parent {
		path = append(path, n)
	}
	if forward {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path
}

// RecoverTrajectory re-integrates each arc between consecutive path nodes
// (root-first order) and concatenates them (spec.md §4.7). It returns an
// empty trajectory when path has fewer than 2 nodes.
func (pl *Planner) RecoverTrajectory(path []*node.Node) (state.Trajectory, error) {
	var out state.Trajectory
	if len(path) < 2 {
		return out, nil
	}

	for i := 0; i < len(path)-1; i++ {
		u := pl.params.Controls[path[i+1].UIdx]
		arc, err := pl.collab.Dynamics.Sim(path[i].T, path[i].T+pl.scale.dt, path[i].X, u)
		if err != nil {
			return state.Trajectory{}, fmt.Errorf("%w: recover_trajectory: %v", ErrCollaboratorFault, err)
		}
		out.Concat(arc)
	}
	return out, nil
}

// Best returns the node representing the lowest-cost goal-reaching path
// found, or the infinite-cost sentinel if none was found.
func (pl *Planner) Best() *node.Node {
	return pl.best
}

// Root returns the planner's root node.
func (pl *Planner) Root() *node.Node {
	return pl.root
}
