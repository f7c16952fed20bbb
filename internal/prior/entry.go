package prior

import (
	"errors"
	"fmt"
)

// Kind discriminates the two shapes a parameter entry can take.
type Kind int

const (
	// KindConstant is a parameter held fixed during inference.
	KindConstant Kind = iota
	// KindDistribution is a parameter sampled from a bounded distribution.
	KindDistribution
)

// String returns the lower-case kind name used in serialized output.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindDistribution:
		return "distribution"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Family enumerates the supported distribution families. The set is closed:
// adding a family means extending this enum and every switch over it, which
// the compiler checks, rather than registering a string key at runtime.
type Family int

const (
	// Uniform assigns equal density across [Minimum, Maximum].
	Uniform Family = iota
	// LogUniform assigns equal density to the logarithm of the value
	// across [Minimum, Maximum]; bounds must be strictly positive.
	LogUniform
	// DeltaFunction pins the parameter at a single point, Peak.
	DeltaFunction
)

// String returns the family name as it appears in prior files.
func (f Family) String() string {
	switch f {
	case Uniform:
		return "Uniform"
	case LogUniform:
		return "LogUniform"
	case DeltaFunction:
		return "DeltaFunction"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Distribution describes one distribution-valued parameter. Minimum and
// Maximum are meaningful for Uniform and LogUniform; Peak for DeltaFunction.
type Distribution struct {
	Family      Family
	Minimum     float64
	Maximum     float64
	Peak        float64
	DisplayName string
	LatexLabel  string
}

// ErrInvalidBounds reports a distribution whose bounds violate the family's
// invariant, e.g. minimum > maximum.
var ErrInvalidBounds = errors.New("invalid distribution bounds")

// Validate checks the family-specific bound invariants. It returns an error
// wrapping ErrInvalidBounds on violation.
func (d *Distribution) Validate() error {
	switch d.Family {
	case Uniform:
		if d.Minimum > d.Maximum {
			return fmt.Errorf("%w: Uniform minimum %v exceeds maximum %v", ErrInvalidBounds, d.Minimum, d.Maximum)
		}
	case LogUniform:
		if d.Minimum <= 0 {
			return fmt.Errorf("%w: LogUniform minimum %v must be strictly positive", ErrInvalidBounds, d.Minimum)
		}
		if d.Minimum > d.Maximum {
			return fmt.Errorf("%w: LogUniform minimum %v exceeds maximum %v", ErrInvalidBounds, d.Minimum, d.Maximum)
		}
	case DeltaFunction:
		// A point mass has no bound invariant.
	}
	return nil
}

// Entry is a single named parameter: a tagged variant of constant or
// distribution. Exactly one of Value and Dist is meaningful, selected by Kind.
type Entry struct {
	Name  string
	Kind  Kind
	Value float64
	Dist  *Distribution
}

// NewConstant builds a constant-valued entry.
func NewConstant(name string, value float64) Entry {
	return Entry{Name: name, Kind: KindConstant, Value: value}
}

// NewDistribution builds a distribution-valued entry, validating the bound
// invariants and defaulting DisplayName to the parameter's own name.
func NewDistribution(name string, dist Distribution) (Entry, error) {
	if err := dist.Validate(); err != nil {
		return Entry{}, fmt.Errorf("parameter %q: %w", name, err)
	}
	if dist.DisplayName == "" {
		dist.DisplayName = name
	}
	return Entry{Name: name, Kind: KindDistribution, Dist: &dist}, nil
}
