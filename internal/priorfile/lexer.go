package priorfile

import (
	"strings"
	"unicode"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokNumber
	tokIdent
	tokString
	tokAssign // =
	tokLParen // (
	tokRParen // )
	tokComma  // ,
	tokPlus   // +
	tokMinus  // -
	tokStar   // *
	tokSlash  // /
)

type token struct {
	typ  tokenType
	text string // literal text for numbers/idents, unquoted value for strings
}

// lexLine tokenizes one logical declaration line. Identifiers may be
// dot-qualified (np.pi); numbers follow Python float syntax including a
// trailing dot (12.) and scientific notation; strings are single- or
// double-quoted with backslash escapes.
func lexLine(line string, lineNo int) ([]token, *ParseError) {
	var toks []token
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			i++
		case r >= '0' && r <= '9' || (r == '.' && i+1 < len(runes) && isDigit(runes[i+1])):
			start := i
			i = scanNumber(runes, i)
			toks = append(toks, token{tokNumber, string(runes[start:i])})
		case isIdentStart(r):
			start := i
			i = scanIdent(runes, i)
			toks = append(toks, token{tokIdent, string(runes[start:i])})
		case r == '\'' || r == '"':
			text, next, err := scanString(runes, i, lineNo)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{tokString, text})
			i = next
		default:
			typ, ok := punctType(r)
			if !ok {
				return nil, errorf(SyntaxError, lineNo, "unexpected character %q", string(r))
			}
			toks = append(toks, token{typ, string(r)})
			i++
		}
	}
	return append(toks, token{typ: tokEOF}), nil
}

func punctType(r rune) (tokenType, bool) {
	switch r {
	case '=':
		return tokAssign, true
	case '(':
		return tokLParen, true
	case ')':
		return tokRParen, true
	case ',':
		return tokComma, true
	case '+':
		return tokPlus, true
	case '-':
		return tokMinus, true
	case '*':
		return tokStar, true
	case '/':
		return tokSlash, true
	}
	return 0, false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r)
}

// scanNumber consumes digits, at most one decimal point, and an optional
// exponent. Validity of the final text is checked by strconv at parse time.
func scanNumber(runes []rune, i int) int {
	for i < len(runes) && isDigit(runes[i]) {
		i++
	}
	if i < len(runes) && runes[i] == '.' {
		i++
		for i < len(runes) && isDigit(runes[i]) {
			i++
		}
	}
	if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
		j := i + 1
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j < len(runes) && isDigit(runes[j]) {
			i = j
			for i < len(runes) && isDigit(runes[i]) {
				i++
			}
		}
	}
	return i
}

// scanIdent consumes an identifier, continuing across dots that introduce a
// further identifier segment, so np.pi lexes as one token.
func scanIdent(runes []rune, i int) int {
	for i < len(runes) && isIdentPart(runes[i]) {
		i++
	}
	for i+1 < len(runes) && runes[i] == '.' && isIdentStart(runes[i+1]) {
		i += 2
		for i < len(runes) && isIdentPart(runes[i]) {
			i++
		}
	}
	return i
}

// scanString consumes a quoted literal starting at runes[i] and returns the
// unquoted text and the index past the closing quote. The escapes \\ \' \"
// collapse to the escaped character; any other backslash sequence is kept
// verbatim so LaTeX like '$\\theta_c$' survives either spelling.
func scanString(runes []rune, i, lineNo int) (string, int, *ParseError) {
	quote := runes[i]
	var b strings.Builder
	i++
	for i < len(runes) {
		r := runes[i]
		if r == quote {
			return b.String(), i + 1, nil
		}
		if r == '\\' && i+1 < len(runes) {
			next := runes[i+1]
			if next != '\\' && next != '\'' && next != '"' {
				b.WriteRune('\\')
			}
			b.WriteRune(next)
			i += 2
			continue
		}
		b.WriteRune(r)
		i++
	}
	return "", 0, errorf(SyntaxError, lineNo, "unterminated string literal")
}
