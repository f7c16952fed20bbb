package config

import "context"

// Loader is the interface for a format-specific run-configuration loader.
type Loader interface {
	// Load reads configuration from a given path and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
