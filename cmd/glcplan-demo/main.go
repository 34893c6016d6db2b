package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/sayotte/glcplan/internal/search"
)

type cliArgs struct {
	scenarioFile string
	genScenario  bool
}

func parseArgs() cliArgs {
	scenarioFile := flag.String("scenario", "scenario.yaml", "File describing the planning problem; use -genScenario to produce an example")
	genScenario := flag.Bool("genScenario", false, "Generate an example scenario file, then exit")
	flag.Parse()

	return cliArgs{
		scenarioFile: *scenarioFile,
		genScenario:  *genScenario,
	}
}

func main() {
	log.SetFlags(log.Lshortfile)

	args := parseArgs()

	if args.genScenario {
		if err := genScenarioFile(args.scenarioFile); err != nil {
			log.Fatal(err)
		}
		return
	}

	sc, err := parseScenarioFile(args.scenarioFile)
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()
	sugar := zlog.Sugar()

	params, collaborators := buildPlanner(sc)

	pl, err := search.New(params, collaborators, search.WithLogger(sugar))
	if err != nil {
		log.Fatal(err)
	}

	out, err := pl.Plan()
	if err != nil {
		log.Fatal(err)
	}

	if !out.FoundGoal {
		log.Printf("no goal-reaching trajectory found (depth_cut=%v, iterations=%d)", out.DepthCut, out.Iterations)
		return
	}

	path := pl.PathToRoot(true)
	traj, err := pl.RecoverTrajectory(path)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("goal reached: cost=%.4f iterations=%d wall_time=%s run_id=%s", out.Cost, out.Iterations, out.WallTime, out.RunID)
	log.Printf("recovered trajectory has %d samples spanning t=[%.3f, %.3f]", len(traj.States), traj.Times[0], traj.Times[len(traj.Times)-1])
}
