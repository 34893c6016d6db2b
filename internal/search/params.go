package search

import (
	"fmt"
	"math"

	"github.com/sayotte/glcplan/internal/state"
)

// Params is the parameter bundle fixed at construction (spec.md §6).
type Params struct {
	StateDim       int
	Resolution     float64 // R
	TimeScale      float64 // T
	DepthScale     float64 // D
	PartitionScale float64 // σ₀
	MaxIter        int
	Initial        state.Vector
	Controls       []state.Vector // U
}

func (p Params) validate() error {
	if p.Resolution <= 0 {
		return fmt.Errorf("%w: resolution R must be positive, got %v", ErrInvalidParameters, p.Resolution)
	}
	if p.TimeScale <= 0 {
		return fmt.Errorf("%w: time scale T must be positive, got %v", ErrInvalidParameters, p.TimeScale)
	}
	if p.DepthScale <= 0 {
		return fmt.Errorf("%w: depth scale D must be positive, got %v", ErrInvalidParameters, p.DepthScale)
	}
	if p.PartitionScale <= 0 {
		return fmt.Errorf("%w: partition scale σ₀ must be positive, got %v", ErrInvalidParameters, p.PartitionScale)
	}
	if len(p.Controls) == 0 {
		return fmt.Errorf("%w: control grid U must be non-empty", ErrInvalidParameters)
	}
	if len(p.Initial) != p.StateDim {
		return fmt.Errorf("%w: initial state has dimension %d, declared state_dim is %d", ErrInvalidParameters, len(p.Initial), p.StateDim)
	}
	uDim := len(p.Controls[0])
	for _, u := range p.Controls {
		if len(u) != uDim {
			return fmt.Errorf("%w: control grid U has inconsistent dimensions", ErrInvalidParameters)
		}
	}
	return nil
}

// scalingConstants are the five values derived from R and the Lipschitz
// data at construction (spec.md §4.1), fixed for the planner's lifetime.
type scalingConstants struct {
	dt             float64 // expansion time Δt = T/R
	depthLimit     int     // ⌊D·R·log(R)⌋
	eta            float64 // (log R)² · R^Lf / σ₀
	partitionScale float64 // s = eta / σ₀
	eps            float64 // tolerance
}

func computeScaling(p Params, lipFlow, lipCost float64) scalingConstants {
	dt := p.TimeScale / p.Resolution
	depthLimit := int(math.Floor(p.DepthScale * p.Resolution * math.Log(p.Resolution)))
	eta := math.Log(p.Resolution) * math.Log(p.Resolution) * math.Pow(p.Resolution, lipFlow) / p.PartitionScale
	s := eta / p.PartitionScale

	var eps float64
	if lipCost > 0 {
		eps = (math.Sqrt(float64(p.StateDim)) / s) * (lipFlow / lipCost) * (p.Resolution*math.Exp(lipFlow) - 1.0)
	}

	return scalingConstants{
		dt:             dt,
		depthLimit:     depthLimit,
		eta:            eta,
		partitionScale: s,
		eps:            eps,
	}
}
