// Package schema defines the HCL-specific structs that run-configuration
// files decode into. Translation into the format-agnostic config model is
// handled by the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// PriorsBlock represents a `priors` block: a named source of prior
// declarations.
type PriorsBlock struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

// InjectionBlock represents an `injection` block: one batch of parameter
// draws from a named priors block. Seed is kept as an expression so the
// translator can apply the default when it is absent.
type InjectionBlock struct {
	Name   string         `hcl:"name,label"`
	Priors string         `hcl:"priors"`
	Count  int            `hcl:"count"`
	Seed   hcl.Expression `hcl:"seed,optional"`
	Output string         `hcl:"output"`
}

// RunConfig represents the top-level structure of a run-configuration file.
type RunConfig struct {
	Priors     []*PriorsBlock    `hcl:"priors,block"`
	Injections []*InjectionBlock `hcl:"injection,block"`
}
