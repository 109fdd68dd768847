package cmd

import (
	"fmt"
	"time"

	"mvc/graph"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func newGenerateCommand() *cobra.Command {
	var (
		vertices    int
		probability float64
		seed        uint64
		output      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random G(n,p) graph instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vertices < 0 {
				return fmt.Errorf("vertex count must be non-negative")
			}
			if probability < 0 || probability > 1 {
				return fmt.Errorf("edge probability must be in [0,1]")
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			g := graph.Generate(vertices, probability, rand.New(rand.NewSource(seed)))
			if err := graph.WriteJSON(output, g); err != nil {
				return err
			}
			log.Info().Msgf("wrote %d vertices, %d edges to %s (seed %d)",
				g.NumVertices(), g.NumEdges(), output, seed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", 100, "number of vertices")
	cmd.Flags().Float64VarP(&probability, "probability", "p", 0.05, "edge probability")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	cmd.Flags().StringVarP(&output, "output", "o", "graph.json", "path to write the instance to")

	return cmd
}
