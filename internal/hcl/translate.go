package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/priorspec/internal/config"
	"github.com/vk/priorspec/internal/ctxlog"
	"github.com/vk/priorspec/internal/schema"
)

// Loader implements config.Loader for HCL run-configuration files.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses a run-configuration file, translates it into the
// format-agnostic model, and validates its cross-block integrity.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed schema.RunConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	logger.Debug("Run configuration decoded.", "path", path,
		"priors_blocks", len(parsed.Priors), "injection_blocks", len(parsed.Injections))

	model, err := l.translate(&parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid run configuration %s: %w", path, err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration %s: %w", path, err)
	}
	return model, nil
}

// translate converts the HCL-specific schema into the agnostic model.
func (l *Loader) translate(parsed *schema.RunConfig) (*config.Model, error) {
	model := &config.Model{Priors: make(map[string]*config.PriorSource)}

	for _, block := range parsed.Priors {
		if _, exists := model.Priors[block.Name]; exists {
			return nil, fmt.Errorf("duplicate priors block %q", block.Name)
		}
		model.Priors[block.Name] = &config.PriorSource{Name: block.Name, Path: block.Path}
	}

	for _, block := range parsed.Injections {
		seed, err := translateSeed(block)
		if err != nil {
			return nil, err
		}
		model.Injections = append(model.Injections, &config.InjectionJob{
			Name:      block.Name,
			PriorsRef: block.Priors,
			Count:     block.Count,
			Seed:      seed,
			Output:    block.Output,
		})
	}

	return model, nil
}

// translateSeed evaluates the optional seed expression, falling back to the
// model default when the attribute is absent or null.
func translateSeed(block *schema.InjectionBlock) (int64, error) {
	if block.Seed == nil {
		return config.DefaultSeed, nil
	}
	val, diags := block.Seed.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("invalid seed for injection %q: %w", block.Name, diags)
	}
	if val.IsNull() {
		return config.DefaultSeed, nil
	}
	var seed int64
	if err := gocty.FromCtyValue(val, &seed); err != nil {
		return 0, fmt.Errorf("seed for injection %q must be an integer: %w", block.Name, err)
	}
	return seed, nil
}
