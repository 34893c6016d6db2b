package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/sayotte/glcplan/collab/builtin"
	"github.com/sayotte/glcplan/internal/search"
	"github.com/sayotte/glcplan/internal/state"
)

// box is the YAML-serializable form of builtin.Box.
type box struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

// scenario is the YAML-serializable description of a planning problem: the
// §6 parameter bundle plus enough of the built-in collaborators' config to
// reconstruct them without a programmatic caller.
type scenario struct {
	StateDim       int         `yaml:"state_dim"`
	PositionDim    int         `yaml:"position_dim"`
	Resolution     float64     `yaml:"resolution"`
	TimeScale      float64     `yaml:"time_scale"`
	DepthScale     float64     `yaml:"depth_scale"`
	PartitionScale float64     `yaml:"partition_scale"`
	MaxIter        int         `yaml:"max_iter"`
	Initial        []float64   `yaml:"initial"`
	Controls       [][]float64 `yaml:"controls"`
	LipFlow        float64     `yaml:"lip_flow"`
	LipCost        float64     `yaml:"lip_cost"`
	Goal           struct {
		Center []float64 `yaml:"center"`
		Radius float64   `yaml:"radius"`
	} `yaml:"goal"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Obstacles []box   `yaml:"obstacles"`
}

func exampleScenario() scenario {
	var sc scenario
	sc.StateDim = 4
	sc.PositionDim = 2
	sc.Resolution = 8
	sc.TimeScale = 1
	sc.DepthScale = 2
	sc.PartitionScale = 1
	sc.MaxIter = 100000
	sc.Initial = []float64{0, 0, 0, 0}
	sc.LipFlow = 1.0
	sc.LipCost = 0
	sc.MaxSpeed = 5.0
	sc.Goal.Center = []float64{1, 0}
	sc.Goal.Radius = 0.1
	sc.Obstacles = []box{
		{Min: []float64{0.4, -0.05}, Max: []float64{0.6, 0.05}},
	}
	for _, ax := range []float64{-1, 0, 1} {
		for _, ay := range []float64{-1, 0, 1} {
			sc.Controls = append(sc.Controls, []float64{ax, ay})
		}
	}
	return sc
}

func genScenarioFile(filename string) error {
	fd, err := os.OpenFile(filename, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("os.OpenFile(%q): %s", filename, err)
	}
	defer func() { _ = fd.Close() }()

	outBytes, err := yaml.Marshal(exampleScenario())
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %s", err)
	}
	if _, err := fd.Write(outBytes); err != nil {
		return fmt.Errorf("fd.Write: %s", err)
	}
	return nil
}

func parseScenarioFile(filename string) (scenario, error) {
	var sc scenario
	inBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return sc, fmt.Errorf("ioutil.ReadFile(%q): %s", filename, err)
	}
	if err := yaml.Unmarshal(inBytes, &sc); err != nil {
		return sc, fmt.Errorf("yaml.Unmarshal: %s", err)
	}
	return sc, nil
}

func vectorsFrom(rows [][]float64) []state.Vector {
	vecs := make([]state.Vector, len(rows))
	for i, row := range rows {
		vecs[i] = state.Vector(row)
	}
	return vecs
}

// buildPlanner translates a scenario into a search.Params bundle and a set
// of builtin collaborators.
func buildPlanner(sc scenario) (search.Params, search.Collaborators) {
	params := search.Params{
		StateDim:       sc.StateDim,
		Resolution:     sc.Resolution,
		TimeScale:      sc.TimeScale,
		DepthScale:     sc.DepthScale,
		PartitionScale: sc.PartitionScale,
		MaxIter:        sc.MaxIter,
		Initial:        state.Vector(sc.Initial),
		Controls:       vectorsFrom(sc.Controls),
	}

	boxes := make([]builtin.Box, len(sc.Obstacles))
	for i, b := range sc.Obstacles {
		boxes[i] = builtin.Box{Min: state.Vector(b.Min), Max: state.Vector(b.Max)}
	}

	collaborators := search.Collaborators{
		Dynamics:  builtin.NewDoubleIntegrator(sc.PositionDim, sc.LipFlow),
		Cost:      builtin.NewTimeCost(sc.LipCost),
		Heuristic: builtin.NewEuclideanHeuristic(sc.PositionDim, state.Vector(sc.Goal.Center), sc.MaxSpeed),
		Obstacles: builtin.NewBoxObstacles(sc.PositionDim, boxes...),
		Goal:      builtin.NewDiskGoal(sc.PositionDim, state.Vector(sc.Goal.Center), sc.Goal.Radius),
	}

	return params, collaborators
}
