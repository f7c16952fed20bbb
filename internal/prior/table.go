package prior

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDuplicateName reports two declarations sharing one parameter name.
var ErrDuplicateName = errors.New("duplicate parameter name")

// Table is an immutable mapping from parameter name to entry. Lookup is by
// name; insertion order is retained only so that re-encoding a table
// reproduces the source layout.
type Table struct {
	entries map[string]Entry
	order   []string
}

// BuildTable assembles a table from entries in declaration order. It fails
// with an error wrapping ErrDuplicateName when a name repeats, regardless of
// whether the duplicate carries an identical value.
func BuildTable(entries []Entry) (*Table, error) {
	t := &Table{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if _, exists := t.entries[e.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		t.entries[e.Name] = e
		t.order = append(t.order, e.Name)
	}
	return t, nil
}

// Lookup returns the entry for a parameter name.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Names returns the parameter names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns all entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.entries[name])
	}
	return out
}

// Len returns the number of parameters in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// entryDoc is the serialized view of an Entry, shared by the JSON and YAML
// encoders so both surfaces agree on field names.
type entryDoc struct {
	Name        string   `json:"name" yaml:"name"`
	Kind        string   `json:"kind" yaml:"kind"`
	Value       *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Family      string   `json:"family,omitempty" yaml:"family,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Peak        *float64 `json:"peak,omitempty" yaml:"peak,omitempty"`
	DisplayName string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	LatexLabel  string   `json:"latex_label,omitempty" yaml:"latex_label,omitempty"`
}

type tableDoc struct {
	Parameters []entryDoc `json:"parameters" yaml:"parameters"`
}

func (t *Table) doc() tableDoc {
	doc := tableDoc{Parameters: make([]entryDoc, 0, len(t.order))}
	for _, e := range t.Entries() {
		d := entryDoc{Name: e.Name, Kind: e.Kind.String()}
		switch e.Kind {
		case KindConstant:
			v := e.Value
			d.Value = &v
		case KindDistribution:
			d.Family = e.Dist.Family.String()
			d.DisplayName = e.Dist.DisplayName
			d.LatexLabel = e.Dist.LatexLabel
			switch e.Dist.Family {
			case DeltaFunction:
				p := e.Dist.Peak
				d.Peak = &p
			default:
				mn, mx := e.Dist.Minimum, e.Dist.Maximum
				d.Minimum = &mn
				d.Maximum = &mx
			}
		}
		doc.Parameters = append(doc.Parameters, d)
	}
	return doc
}

// MarshalJSON renders the table for the inspect and serving surfaces.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.doc())
}

// MarshalYAML renders the table for the YAML inspect surface.
func (t *Table) MarshalYAML() (any, error) {
	return t.doc(), nil
}
