package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vk/priorspec/internal/ctxlog"
	"github.com/vk/priorspec/internal/injection"
	"github.com/vk/priorspec/internal/prior"
	"github.com/vk/priorspec/internal/priorfile"
)

// Run executes the main application logic: load priors, run injection jobs,
// then serve the tables if a port was requested.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	if a.config.PriorsPath != "" {
		err = a.runDirect(ctx)
	} else {
		err = a.runConfig(ctx)
	}
	if err != nil {
		return err
	}

	if a.config.ServePort > 0 {
		return a.serve(ctx, a.config.ServePort)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runDirect loads a single priors path without a run configuration.
func (a *App) runDirect(ctx context.Context) error {
	table, err := priorfile.LoadPath(ctx, a.config.PriorsPath)
	if err != nil {
		return fmt.Errorf("failed to load priors: %w", err)
	}
	a.tables["default"] = table
	a.logger.Info("Prior table loaded.", "path", a.config.PriorsPath, "parameters", table.Len())

	if a.config.Inspect {
		return a.writeTable(table)
	}
	return nil
}

// runConfig loads the HCL run configuration, every priors block it declares,
// and executes every injection job.
func (a *App) runConfig(ctx context.Context) error {
	model, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load run configuration: %w", err)
	}

	names := make([]string, 0, len(model.Priors))
	for name := range model.Priors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		src := model.Priors[name]
		table, err := priorfile.LoadPath(ctx, src.Path)
		if err != nil {
			return fmt.Errorf("failed to load priors %q: %w", name, err)
		}
		a.tables[name] = table
		a.logger.Info("Prior table loaded.", "priors", name, "path", src.Path, "parameters", table.Len())
	}

	for _, job := range model.Injections {
		seed := job.Seed
		if a.config.Seed != UnsetSeed {
			seed = a.config.Seed
		}
		gen := injection.NewGenerator(a.tables[job.PriorsRef], job.PriorsRef, seed)
		if err := gen.WriteFile(ctx, job.Count, job.Output); err != nil {
			return fmt.Errorf("injection job %q failed: %w", job.Name, err)
		}
		a.logger.Info("Injection job finished.", "job", job.Name, "count", job.Count, "seed", seed)
	}

	return nil
}

// writeTable renders a table to the application's output writer in the
// configured inspect format.
func (a *App) writeTable(table *prior.Table) error {
	var raw []byte
	var err error
	switch a.config.Format {
	case "yaml":
		raw, err = yaml.Marshal(table)
	default:
		raw, err = json.MarshalIndent(table, "", "  ")
		if err == nil {
			raw = append(raw, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("failed to render prior table: %w", err)
	}
	if _, err := a.outW.Write(raw); err != nil {
		return fmt.Errorf("failed to write prior table: %w", err)
	}
	return nil
}
