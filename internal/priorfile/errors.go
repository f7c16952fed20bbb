package priorfile

import "fmt"

// ErrorKind classifies the ways a prior file can be rejected.
type ErrorKind int

const (
	// MissingAssignment is a non-comment line with no "=".
	MissingAssignment ErrorKind = iota
	// SyntaxError is any malformed token or construct not covered by a
	// more specific kind, including a duplicated keyword argument.
	SyntaxError
	// UnknownDistribution is a call to a family outside the closed set.
	UnknownDistribution
	// UnknownArgument is a keyword argument the family does not accept.
	UnknownArgument
	// MissingRequiredArgument is a family call lacking a required kwarg.
	MissingRequiredArgument
	// InvalidBounds is a distribution violating its bound invariant.
	InvalidBounds
	// DuplicateName is a parameter name declared twice in one load.
	DuplicateName
	// UnknownSymbol is a bare identifier outside the constant whitelist.
	UnknownSymbol
)

// String returns the kind's name for error messages and logs.
func (k ErrorKind) String() string {
	switch k {
	case MissingAssignment:
		return "missing assignment"
	case SyntaxError:
		return "syntax error"
	case UnknownDistribution:
		return "unknown distribution"
	case UnknownArgument:
		return "unknown argument"
	case MissingRequiredArgument:
		return "missing required argument"
	case InvalidBounds:
		return "invalid bounds"
	case DuplicateName:
		return "duplicate parameter name"
	case UnknownSymbol:
		return "unknown symbol"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the single error type surfaced by this package. Line numbers
// are 1-based over the full input, counting comment and blank lines. File is
// empty when the input did not come from a file.
type ParseError struct {
	Kind   ErrorKind
	File   string
	Line   int
	Detail string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Kind, e.Detail)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Detail)
}

func errorf(kind ErrorKind, line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Line: line, Detail: fmt.Sprintf(format, args...)}
}
