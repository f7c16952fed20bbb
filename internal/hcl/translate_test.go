package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/priorspec/internal/config"
)

func writeRunConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeRunConfig(t, `
priors "grb" {
  path = "priors/GRB.priors"
}

injection "grb_set" {
  priors = "grb"
  count  = 100
  seed   = 7
  output = "out/grb_injections.json"
}

injection "defaults" {
  priors = "grb"
  count  = 1
  output = "out/defaults.json"
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Contains(t, model.Priors, "grb")
	assert.Equal(t, "priors/GRB.priors", model.Priors["grb"].Path)

	require.Len(t, model.Injections, 2)
	assert.Equal(t, int64(7), model.Injections[0].Seed)
	assert.Equal(t, 100, model.Injections[0].Count)
	assert.Equal(t, config.DefaultSeed, model.Injections[1].Seed, "seed defaults when absent")
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		text    string
		wantErr string
	}{
		{
			name: "dangling priors reference",
			text: `
injection "orphan" {
  priors = "missing"
  count  = 1
  output = "out.json"
}
`,
			wantErr: "undeclared priors",
		},
		{
			name: "count below one",
			text: `
priors "grb" {
  path = "GRB.priors"
}

injection "empty" {
  priors = "grb"
  count  = 0
  output = "out.json"
}
`,
			wantErr: "count must be at least 1",
		},
		{
			name: "duplicate priors block",
			text: `
priors "grb" {
  path = "a.priors"
}

priors "grb" {
  path = "b.priors"
}
`,
			wantErr: "duplicate priors block",
		},
		{
			name: "non-integer seed",
			text: `
priors "grb" {
  path = "GRB.priors"
}

injection "bad" {
  priors = "grb"
  count  = 1
  seed   = "soon"
  output = "out.json"
}
`,
			wantErr: "seed",
		},
		{
			name:    "malformed hcl",
			text:    `priors "grb" {`,
			wantErr: "failed to parse",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeRunConfig(t, tc.text)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
