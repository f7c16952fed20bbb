package app

import "errors"

// UnsetSeed marks the seed-override flag as not provided.
const UnsetSeed int64 = -1

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // HCL run configuration (config mode)
	PriorsPath string // single prior file or directory (direct mode)

	Inspect bool   // write the loaded table to stdout (direct mode)
	Format  string // inspect output format: "json" or "yaml"
	Seed    int64  // overrides every injection job's seed unless UnsetSeed

	LogFormat string
	LogLevel  string
	ServePort int // port for the HTTP table endpoint, 0 disabled
}

// NewConfig validates a Config. Exactly one of ConfigPath and PriorsPath
// must be set; everything else has a usable zero value.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" && cfg.PriorsPath == "" {
		return nil, errors.New("either a run configuration or a priors path is required")
	}
	if cfg.ConfigPath != "" && cfg.PriorsPath != "" {
		return nil, errors.New("a run configuration and a direct priors path are mutually exclusive")
	}
	return &cfg, nil
}
