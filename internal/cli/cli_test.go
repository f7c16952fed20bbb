package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/priorspec/internal/app"
)

func TestParseNoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseHelpFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
}

func TestParseConfigPath(t *testing.T) {
	t.Parallel()

	t.Run("positional argument", func(t *testing.T) {
		cfg, shouldExit, err := Parse([]string{"run.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "run.hcl", cfg.ConfigPath)
	})

	t.Run("config flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-config", "run.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "run.hcl", cfg.ConfigPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-c", "run.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "run.hcl", cfg.ConfigPath)
	})
}

func TestParseDirectPriorsMode(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"-priors", "GRB.priors", "-inspect", "-format", "yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "GRB.priors", cfg.PriorsPath)
	assert.True(t, cfg.Inspect)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, app.UnsetSeed, cfg.Seed)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--definitely-not-a-flag"}},
		{"bad format", []string{"-priors", "a.priors", "-format", "toml"}},
		{"bad log format", []string{"-priors", "a.priors", "-log-format", "xml"}},
		{"bad log level", []string{"-priors", "a.priors", "-log-level", "loud"}},
		{"config and priors together", []string{"-config", "run.hcl", "-priors", "a.priors"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
