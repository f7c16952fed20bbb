package prior

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable(t *testing.T) {
	t.Run("preserves declaration order", func(t *testing.T) {
		entries := []Entry{
			NewConstant("ksiN", 1.0),
			NewConstant("L0", 0.0),
			NewConstant("weight", 2.5),
		}
		table, err := BuildTable(entries)
		require.NoError(t, err)

		assert.Equal(t, 3, table.Len())
		assert.Equal(t, []string{"ksiN", "L0", "weight"}, table.Names())
	})

	t.Run("rejects duplicate names with identical values", func(t *testing.T) {
		_, err := BuildTable([]Entry{
			NewConstant("ksiN", 1.0),
			NewConstant("ksiN", 1.0),
		})
		require.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("rejects duplicate names with differing values", func(t *testing.T) {
		_, err := BuildTable([]Entry{
			NewConstant("ksiN", 1.0),
			NewConstant("ksiN", 2.0),
		})
		require.ErrorIs(t, err, ErrDuplicateName)
	})
}

func TestTableLookup(t *testing.T) {
	dist, err := NewDistribution("p", Distribution{Family: Uniform, Minimum: 2.0, Maximum: 3.0})
	require.NoError(t, err)

	table, err := BuildTable([]Entry{NewConstant("ksiN", 1.0), dist})
	require.NoError(t, err)

	e, ok := table.Lookup("p")
	require.True(t, ok)
	assert.Equal(t, KindDistribution, e.Kind)
	assert.Equal(t, 2.0, e.Dist.Minimum)
	assert.Equal(t, 3.0, e.Dist.Maximum)

	_, ok = table.Lookup("absent")
	assert.False(t, ok)
}

func TestDistributionValidate(t *testing.T) {
	t.Run("uniform minimum above maximum", func(t *testing.T) {
		d := Distribution{Family: Uniform, Minimum: 2.0, Maximum: 1.0}
		assert.ErrorIs(t, d.Validate(), ErrInvalidBounds)
	})

	t.Run("uniform equal bounds are legal", func(t *testing.T) {
		d := Distribution{Family: Uniform, Minimum: 1.0, Maximum: 1.0}
		assert.NoError(t, d.Validate())
	})

	t.Run("loguniform requires positive minimum", func(t *testing.T) {
		d := Distribution{Family: LogUniform, Minimum: 0, Maximum: 1.0}
		assert.ErrorIs(t, d.Validate(), ErrInvalidBounds)
	})

	t.Run("delta function has no bound invariant", func(t *testing.T) {
		d := Distribution{Family: DeltaFunction, Peak: -5.0}
		assert.NoError(t, d.Validate())
	})
}

func TestNewDistributionDefaultsDisplayName(t *testing.T) {
	e, err := NewDistribution("thetaCore", Distribution{Family: Uniform, Minimum: 0, Maximum: 1})
	require.NoError(t, err)
	assert.Equal(t, "thetaCore", e.Dist.DisplayName)

	e, err = NewDistribution("thetaCore", Distribution{Family: Uniform, Minimum: 0, Maximum: 1, DisplayName: "theta_core"})
	require.NoError(t, err)
	assert.Equal(t, "theta_core", e.Dist.DisplayName)
}

func TestTableMarshalJSON(t *testing.T) {
	dist, err := NewDistribution("thetaCore", Distribution{
		Family:      Uniform,
		Minimum:     0.01,
		Maximum:     0.1,
		DisplayName: "theta_core",
		LatexLabel:  `$\theta_c$`,
	})
	require.NoError(t, err)

	table, err := BuildTable([]Entry{NewConstant("ksiN", 1.0), dist})
	require.NoError(t, err)

	raw, err := json.Marshal(table)
	require.NoError(t, err)

	var doc struct {
		Parameters []map[string]any `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Parameters, 2)

	assert.Equal(t, "ksiN", doc.Parameters[0]["name"])
	assert.Equal(t, "constant", doc.Parameters[0]["kind"])
	assert.Equal(t, 1.0, doc.Parameters[0]["value"])

	assert.Equal(t, "distribution", doc.Parameters[1]["kind"])
	assert.Equal(t, "Uniform", doc.Parameters[1]["family"])
	assert.Equal(t, 0.01, doc.Parameters[1]["minimum"])
	assert.Equal(t, `$\theta_c$`, doc.Parameters[1]["latex_label"])
}
