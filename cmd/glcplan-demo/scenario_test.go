package main

import "fmt"

func Example_buildPlanner() {
	sc := exampleScenario()
	params, collaborators := buildPlanner(sc)

	fmt.Printf("state_dim=%d resolution=%.0f controls=%d\n", params.StateDim, params.Resolution, len(params.Controls))
	fmt.Printf("dynamics_lip_flow=%.1f cost_lip_cost=%.1f\n", collaborators.Dynamics.LipFlow(), collaborators.Cost.LipCost())
	// Output:
	// state_dim=4 resolution=8 controls=9
	// dynamics_lip_flow=1.0 cost_lip_cost=0.0
}
