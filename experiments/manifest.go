package experiments

import (
	"fmt"
	"os"
	"time"

	"mvc/searcher"

	"gopkg.in/yaml.v3"
)

// Manifest describes a benchmark: one solver configuration applied to
// a list of graph instances.
type Manifest struct {
	Solver    SolverSpec `yaml:"solver"`
	Instances []Instance `yaml:"instances"`
}

// SolverSpec mirrors the engine options in a form YAML can carry.
type SolverSpec struct {
	Iterations  int     `yaml:"iterations"`
	Duration    string  `yaml:"duration"`
	Exploration float64 `yaml:"exploration"`
	Policy      string  `yaml:"policy"`
	Seed        uint64  `yaml:"seed"`
}

// Instance pairs an input graph path with an optional cover output
// path.
type Instance struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Budget parses the duration field; empty means no time budget.
func (s SolverSpec) Budget() (time.Duration, error) {
	if s.Duration == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Duration)
	if err != nil {
		return 0, fmt.Errorf("bad solver duration %q: %w", s.Duration, err)
	}
	return d, nil
}

// TreePolicy parses the policy field; empty selects the default.
func (s SolverSpec) TreePolicy() (searcher.Policy, error) {
	if s.Policy == "" {
		return searcher.EpsilonGreedy, nil
	}
	return searcher.ParsePolicy(s.Policy)
}

// LoadManifest reads and validates a benchmark manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	budget, err := m.Solver.Budget()
	if err != nil {
		return nil, err
	}
	if m.Solver.Iterations <= 0 && budget <= 0 {
		return nil, fmt.Errorf("manifest must set solver iterations or duration")
	}
	if _, err := m.Solver.TreePolicy(); err != nil {
		return nil, err
	}
	if len(m.Instances) == 0 {
		return nil, fmt.Errorf("manifest has no instances")
	}
	for i, inst := range m.Instances {
		if inst.Input == "" {
			return nil, fmt.Errorf("instance %d has no input path", i)
		}
	}

	return &m, nil
}
