package config

import "fmt"

// DefaultSeed is the injection generation seed used when a job does not set
// one. It matches the conventional default of the upstream analysis tooling.
const DefaultSeed int64 = 42

// Model is the unified, format-agnostic representation of one run
// configuration: named prior sources and the injection jobs that draw from
// them.
type Model struct {
	Priors     map[string]*PriorSource
	Injections []*InjectionJob
}

// PriorSource names a prior declaration file, or a directory of them, to be
// loaded into one parameter table.
type PriorSource struct {
	Name string
	Path string
}

// InjectionJob describes one batch of injection parameter draws.
type InjectionJob struct {
	Name      string
	PriorsRef string // label of the PriorSource to draw from
	Count     int
	Seed      int64
	Output    string // path of the JSON document to write
}

// Validate checks the cross-block integrity of the model: every injection
// must reference a declared priors block, draw a positive count, and name an
// output file.
func (m *Model) Validate() error {
	for name, src := range m.Priors {
		if src.Path == "" {
			return fmt.Errorf("priors %q: path must not be empty", name)
		}
	}
	for _, job := range m.Injections {
		if _, ok := m.Priors[job.PriorsRef]; !ok {
			return fmt.Errorf("injection %q references undeclared priors %q", job.Name, job.PriorsRef)
		}
		if job.Count < 1 {
			return fmt.Errorf("injection %q: count must be at least 1, got %d", job.Name, job.Count)
		}
		if job.Output == "" {
			return fmt.Errorf("injection %q: output must not be empty", job.Name)
		}
	}
	return nil
}
