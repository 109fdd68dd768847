package experiments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"mvc/engine"
	"mvc/experiments/metrics"
	"mvc/graph"
	"mvc/searcher"

	"github.com/rs/zerolog/log"
)

// RunBenchmark executes the manifest at manifestPath: each instance
// is loaded, solved under the manifest's budget, validated, and
// recorded as CSV under a timestamped directory below outRoot.
func RunBenchmark(ctx context.Context, manifestPath, outRoot string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	budget, err := m.Solver.Budget()
	if err != nil {
		return err
	}
	policy, err := m.Solver.TreePolicy()
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(outRoot)
	if err != nil {
		return err
	}
	err = writer.WriteSolverConfig(metrics.SolverConfig{
		Iterations:  m.Solver.Iterations,
		Duration:    budget,
		Exploration: m.Solver.Exploration,
		Policy:      policy.String(),
		Seed:        m.Solver.Seed,
	})
	if err != nil {
		return err
	}

	log.Info().Msgf("starting benchmark with %d instances...", len(m.Instances))
	prog := newProgress(len(m.Instances))

	records := make([]metrics.RunRecord, 0, len(m.Instances))
	for i, inst := range m.Instances {
		if ctx.Err() != nil {
			break
		}

		record, err := runInstance(ctx, m, i, inst, budget, policy)
		if err != nil {
			return fmt.Errorf("instance %s: %w", inst.Input, err)
		}
		records = append(records, record)
		prog.update(i+1, inst.Input, record.Answer)
	}
	prog.finish()

	if err := writer.WriteRunRecords(records); err != nil {
		return err
	}
	log.Info().Msgf("wrote %d run records to %s", len(records), writer.BaseDir())
	return nil
}

func runInstance(ctx context.Context, m *Manifest, index int, inst Instance,
	budget time.Duration, policy searcher.Policy) (metrics.RunRecord, error) {

	g, err := graph.LoadJSON(inst.Input)
	if err != nil {
		return metrics.RunRecord{}, err
	}

	options := []searcher.Option{
		searcher.WithExplorationParam(m.Solver.Exploration),
		searcher.WithPolicy(policy),
	}
	if m.Solver.Seed != 0 {
		// Offset per instance so runs stay reproducible but distinct
		options = append(options, searcher.WithSeed(m.Solver.Seed+uint64(index)))
	}
	mcts := searcher.NewMCTS(g, options...)

	engineOptions := []engine.Option{engine.WithCollector(metrics.NewCollector())}
	if m.Solver.Iterations > 0 {
		engineOptions = append(engineOptions, engine.WithIterations(m.Solver.Iterations))
	}
	if budget > 0 {
		engineOptions = append(engineOptions, engine.WithDuration(budget))
	}

	solution, metric := engine.NewLocal(mcts, engineOptions...).Run(ctx)

	valid := solution.Covers(g)
	if !valid {
		log.Warn().Msgf("solution for %s is not a vertex cover", inst.Input)
	}
	if inst.Output != "" {
		if err := WriteCover(inst.Output, solution); err != nil {
			return metrics.RunRecord{}, err
		}
	}

	return metrics.RunRecord{
		ID:        index + 1,
		Input:     inst.Input,
		Vertices:  g.NumVertices(),
		Edges:     g.NumEdges(),
		Valid:     valid,
		RunMetric: metric,
	}, nil
}

// coverDoc is the on-disk result format.
type coverDoc struct {
	Size     int   `json:"size"`
	Vertices []int `json:"vertices"`
}

// WriteCover writes a solved cover to path as JSON.
func WriteCover(path string, s *searcher.State) error {
	doc := coverDoc{
		Size:     s.SelectedCount(),
		Vertices: s.Selected(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cover JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cover file: %w", err)
	}
	return nil
}
