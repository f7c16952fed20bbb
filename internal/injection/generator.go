package injection

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vk/priorspec/internal/ctxlog"
	"github.com/vk/priorspec/internal/prior"
)

// Document is the JSON output of one injection run: a batch of parameter
// sets plus the provenance needed to reproduce it.
type Document struct {
	RunID      string               `json:"run_id"`
	Source     string               `json:"source"`
	Seed       int64                `json:"seed"`
	Count      int                  `json:"count"`
	Injections []map[string]float64 `json:"injections"`
}

// Generator draws parameter sets from one prior table.
type Generator struct {
	table  *prior.Table
	source string
	seed   int64
}

// NewGenerator creates a generator for the given table. The source label is
// recorded in the output document for provenance.
func NewGenerator(table *prior.Table, source string, seed int64) *Generator {
	return &Generator{table: table, source: source, seed: seed}
}

// Draw produces count parameter sets. Each set maps every parameter name in
// the table to a value: constants and delta functions contribute their fixed
// value, bounded distributions a seeded random draw within their bounds.
func (g *Generator) Draw(ctx context.Context, count int) (*Document, error) {
	if count < 1 {
		return nil, fmt.Errorf("injection count must be at least 1, got %d", count)
	}
	logger := ctxlog.FromContext(ctx)

	src := rand.NewSource(uint64(g.seed))
	samplers := make(map[string]func() float64, g.table.Len())
	for _, e := range g.table.Entries() {
		samplers[e.Name] = newSampler(e, src)
	}

	doc := &Document{
		RunID:      uuid.NewString(),
		Source:     g.source,
		Seed:       g.seed,
		Count:      count,
		Injections: make([]map[string]float64, 0, count),
	}
	for i := 0; i < count; i++ {
		set := make(map[string]float64, g.table.Len())
		for _, name := range g.table.Names() {
			set[name] = samplers[name]()
		}
		doc.Injections = append(doc.Injections, set)
	}

	logger.Debug("Injection draws complete.", "source", g.source, "count", count, "seed", g.seed)
	return doc, nil
}

// newSampler binds one entry to its draw function. All bounded families
// share the one rand source, so the whole batch is reproducible from the
// generator seed.
func newSampler(e prior.Entry, src rand.Source) func() float64 {
	if e.Kind == prior.KindConstant {
		v := e.Value
		return func() float64 { return v }
	}
	d := e.Dist
	switch d.Family {
	case prior.Uniform:
		u := distuv.Uniform{Min: d.Minimum, Max: d.Maximum, Src: src}
		return u.Rand
	case prior.LogUniform:
		u := distuv.Uniform{Min: math.Log(d.Minimum), Max: math.Log(d.Maximum), Src: src}
		return func() float64 { return math.Exp(u.Rand()) }
	case prior.DeltaFunction:
		p := d.Peak
		return func() float64 { return p }
	default:
		panic(fmt.Sprintf("unhandled distribution family %v", d.Family))
	}
}

// WriteFile runs a draw and writes the document as indented JSON, creating
// the output directory if needed.
func (g *Generator) WriteFile(ctx context.Context, count int, path string) error {
	doc, err := g.Draw(ctx, count)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode injection document: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write injection document: %w", err)
	}

	ctxlog.FromContext(ctx).Info("Injection document written.", "path", path, "count", count)
	return nil
}
