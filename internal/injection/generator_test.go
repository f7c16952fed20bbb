package injection

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/priorspec/internal/prior"
	"github.com/vk/priorspec/internal/priorfile"
)

func testTable(t *testing.T) *prior.Table {
	t.Helper()
	table, err := priorfile.Load(
		"thetaCore = Uniform(minimum=0.01, maximum=np.pi/10)\n" +
			"log10_n0 = LogUniform(minimum=1e-6, maximum=1e3)\n" +
			"L0 = DeltaFunction(peak=0.0)\n" +
			"ksiN = 1.0\n")
	require.NoError(t, err)
	return table
}

func TestDrawDeterministicForSeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	table := testTable(t)

	a, err := NewGenerator(table, "grb", 42).Draw(ctx, 20)
	require.NoError(t, err)
	b, err := NewGenerator(table, "grb", 42).Draw(ctx, 20)
	require.NoError(t, err)

	assert.Equal(t, a.Injections, b.Injections)
	assert.NotEqual(t, a.RunID, b.RunID, "run ids are unique per draw")

	c, err := NewGenerator(table, "grb", 43).Draw(ctx, 20)
	require.NoError(t, err)
	assert.NotEqual(t, a.Injections, c.Injections, "a different seed changes the draws")
}

func TestDrawRespectsBoundsAndConstants(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	doc, err := NewGenerator(table, "grb", 7).Draw(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, doc.Injections, 100)

	pi := math.Pi
	for _, set := range doc.Injections {
		require.Len(t, set, 4)
		assert.GreaterOrEqual(t, set["thetaCore"], 0.01)
		assert.LessOrEqual(t, set["thetaCore"], pi/10)
		assert.GreaterOrEqual(t, set["log10_n0"], 1e-6)
		assert.LessOrEqual(t, set["log10_n0"], 1e3)
		assert.Equal(t, 0.0, set["L0"], "delta functions stay pinned at their peak")
		assert.Equal(t, 1.0, set["ksiN"], "constants stay fixed")
	}
}

func TestDrawRejectsBadCount(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(testTable(t), "grb", 42).Draw(context.Background(), 0)
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// The output directory does not exist yet; WriteFile must create it.
	path := filepath.Join(t.TempDir(), "out", "injections.json")
	err := NewGenerator(testTable(t), "grb", 42).WriteFile(ctx, 5, path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "grb", doc.Source)
	assert.Equal(t, int64(42), doc.Seed)
	assert.Equal(t, 5, doc.Count)
	assert.Len(t, doc.Injections, 5)
	assert.NotEmpty(t, doc.RunID)
}
