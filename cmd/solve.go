package cmd

import (
	"context"
	"fmt"
	"time"

	"mvc/engine"
	"mvc/experiments"
	"mvc/experiments/metrics"
	"mvc/graph"
	"mvc/searcher"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// solverFlags are the engine knobs shared by solver commands.
type solverFlags struct {
	iterations  int
	duration    time.Duration
	exploration float64
	policyName  string
	seed        uint64
}

func (s *solverFlags) register(flags *pflag.FlagSet) {
	flags.IntVarP(&s.iterations, "iterations", "n", 10000, "rollout budget")
	flags.DurationVarP(&s.duration, "duration", "d", 0, "wall-clock budget (overrides iterations)")
	flags.Float64VarP(&s.exploration, "exploration", "c", 0.5, "exploration parameter")
	flags.StringVar(&s.policyName, "policy", "epsilon-greedy", "tree policy: epsilon-greedy or uct")
	flags.Uint64Var(&s.seed, "seed", 0, "random seed (0 seeds from the clock)")
}

func newSolveCommand(ctx context.Context) *cobra.Command {
	var (
		input  string
		output string
		solver solverFlags
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single graph instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.LoadJSON(input)
			if err != nil {
				return err
			}
			log.Info().Msgf("loaded %s: %d vertices, %d edges", input, g.NumVertices(), g.NumEdges())

			policy, err := searcher.ParsePolicy(solver.policyName)
			if err != nil {
				return err
			}

			options := []searcher.Option{
				searcher.WithExplorationParam(solver.exploration),
				searcher.WithPolicy(policy),
			}
			if solver.seed != 0 {
				options = append(options, searcher.WithSeed(solver.seed))
			}
			mcts := searcher.NewMCTS(g, options...)

			engineOptions := []engine.Option{engine.WithCollector(metrics.NewCollector())}
			if solver.duration > 0 {
				engineOptions = append(engineOptions, engine.WithDuration(solver.duration))
			} else {
				engineOptions = append(engineOptions, engine.WithIterations(solver.iterations))
			}
			solution, metric := engine.NewLocal(mcts, engineOptions...).Run(ctx)

			if !solution.Covers(g) {
				return fmt.Errorf("internal error: result is not a vertex cover")
			}
			fmt.Printf("cover size %d after %d iterations (%s)\n",
				solution.SelectedCount(), metric.Iterations, metric.Elapsed)

			if output != "" {
				if err := experiments.WriteCover(output, solution); err != nil {
					return err
				}
				log.Info().Msgf("wrote cover to %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to graph JSON file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to write the cover JSON to")
	solver.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
