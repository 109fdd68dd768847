package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts iterations between start and complete", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddIteration()
		c.AddIteration()

		metric := c.Complete(7, true)

		require.Equal(t, 2, metric.Iterations)
		require.Equal(t, 7, metric.Answer)
		require.True(t, metric.Closed)
		require.GreaterOrEqual(t, metric.Elapsed, time.Duration(0))
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddIteration()

		metric := c.Complete(3, false)

		require.Zero(t, metric.Iterations)
		require.Equal(t, 3, metric.Answer)
	})
}

func TestWriter(t *testing.T) {
	t.Run("writes config and records under a timestamped directory", func(t *testing.T) {
		root := t.TempDir()
		w, err := NewWriter(root)
		require.NoError(t, err)

		err = w.WriteSolverConfig(SolverConfig{
			Iterations: 100, Duration: time.Second, Exploration: 0.5,
			Policy: "epsilon-greedy", Seed: 42,
		})
		require.NoError(t, err)

		records := []RunRecord{
			{ID: 1, Input: "a.json", Vertices: 10, Edges: 20, Valid: true,
				RunMetric: RunMetric{Iterations: 100, Answer: 4, Elapsed: time.Millisecond}},
		}
		require.NoError(t, w.WriteRunRecords(records))

		f, err := os.Open(filepath.Join(w.BaseDir(), "run_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "a.json", "10", "20", "100", "1ms", "4", "false", "true"}, rows[1])
	})
}
