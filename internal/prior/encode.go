package prior

import (
	"strconv"
	"strings"
)

// Encode renders the table back to the declaration grammar, one parameter
// per line in declaration order. Loading the result yields an equal table.
// Kwargs that match their defaults (display name equal to the parameter
// name, empty label) are omitted.
func Encode(t *Table) string {
	var b strings.Builder
	for _, e := range t.Entries() {
		b.WriteString(e.Name)
		b.WriteString(" = ")
		switch e.Kind {
		case KindConstant:
			b.WriteString(formatFloat(e.Value))
		case KindDistribution:
			encodeDistribution(&b, e)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func encodeDistribution(b *strings.Builder, e Entry) {
	d := e.Dist
	b.WriteString(d.Family.String())
	b.WriteByte('(')
	switch d.Family {
	case DeltaFunction:
		b.WriteString("peak=")
		b.WriteString(formatFloat(d.Peak))
	default:
		b.WriteString("minimum=")
		b.WriteString(formatFloat(d.Minimum))
		b.WriteString(", maximum=")
		b.WriteString(formatFloat(d.Maximum))
	}
	if d.DisplayName != "" && d.DisplayName != e.Name {
		b.WriteString(", name=")
		b.WriteString(quote(d.DisplayName))
	}
	if d.LatexLabel != "" {
		b.WriteString(", latex_label=")
		b.WriteString(quote(d.LatexLabel))
	}
	b.WriteByte(')')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// quote renders a single-quoted string literal, escaping backslashes and
// embedded quotes so the lexer reads back the original text.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\', '\'':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}
