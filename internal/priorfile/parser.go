package priorfile

import (
	"math"
	"strconv"

	"github.com/vk/priorspec/internal/prior"
)

// constants is the whitelist of bare symbols legal inside numeric
// expressions. Real prior files spell pi through numpy; the bare and
// math-qualified forms cover hand-edited files. Anything else is an
// UnknownSymbol, and there are no function calls inside expressions.
var constants = map[string]float64{
	"pi":       math.Pi,
	"np.pi":    math.Pi,
	"numpy.pi": math.Pi,
	"math.pi":  math.Pi,
}

type parser struct {
	toks []token
	pos  int
	line int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) at(t tokenType) bool { return p.toks[p.pos].typ == t }

// parseLine parses one declaration into an entry. The caller has already
// verified the line is non-empty, non-comment, and contains an "=".
func parseLine(line string, lineNo int) (prior.Entry, error) {
	toks, lerr := lexLine(line, lineNo)
	if lerr != nil {
		return prior.Entry{}, lerr
	}
	p := &parser{toks: toks, line: lineNo}

	nameTok := p.next()
	if nameTok.typ != tokIdent {
		return prior.Entry{}, errorf(SyntaxError, lineNo, "expected parameter name, got %q", nameTok.text)
	}
	if containsDot(nameTok.text) {
		return prior.Entry{}, errorf(SyntaxError, lineNo, "parameter name %q must not be qualified", nameTok.text)
	}
	if !p.at(tokAssign) {
		return prior.Entry{}, errorf(SyntaxError, lineNo, "expected \"=\" after parameter name %q", nameTok.text)
	}
	p.next()

	var entry prior.Entry
	var err error
	if p.at(tokIdent) && p.toks[p.pos+1].typ == tokLParen {
		entry, err = p.parseCall(nameTok.text)
	} else {
		var v float64
		v, err = p.parseAdditive()
		entry = prior.NewConstant(nameTok.text, v)
	}
	if err != nil {
		return prior.Entry{}, err
	}
	if !p.at(tokEOF) {
		return prior.Entry{}, errorf(SyntaxError, lineNo, "unexpected trailing %q", p.peek().text)
	}
	return entry, nil
}

func containsDot(s string) bool {
	for _, r := range s {
		if r == '.' {
			return true
		}
	}
	return false
}

// kwval is one keyword-argument value: a number or a string literal.
type kwval struct {
	num   float64
	str   string
	isStr bool
}

// parseCall parses Family(key=value, ...) and validates it against the
// closed family set.
func (p *parser) parseCall(paramName string) (prior.Entry, error) {
	familyTok := p.next()
	family, known := familyByName(familyTok.text)
	if !known {
		return prior.Entry{}, errorf(UnknownDistribution, p.line, "%q is not a supported distribution family", familyTok.text)
	}
	p.next() // consume "(", guaranteed by the caller's lookahead

	kwargs := make(map[string]kwval)
	for !p.at(tokRParen) {
		keyTok := p.next()
		if keyTok.typ != tokIdent {
			return prior.Entry{}, errorf(SyntaxError, p.line, "expected keyword argument name, got %q", keyTok.text)
		}
		if !p.at(tokAssign) {
			return prior.Entry{}, errorf(SyntaxError, p.line, "keyword argument %q must be followed by \"=\"", keyTok.text)
		}
		p.next()
		if _, dup := kwargs[keyTok.text]; dup {
			return prior.Entry{}, errorf(SyntaxError, p.line, "keyword argument %q given twice", keyTok.text)
		}

		var v kwval
		if p.at(tokString) {
			v = kwval{str: p.next().text, isStr: true}
		} else {
			num, err := p.parseAdditive()
			if err != nil {
				return prior.Entry{}, err
			}
			v = kwval{num: num}
		}
		kwargs[keyTok.text] = v

		if p.at(tokComma) {
			p.next() // trailing comma before ")" is fine
			continue
		}
		if !p.at(tokRParen) {
			return prior.Entry{}, errorf(SyntaxError, p.line, "expected \",\" or \")\" in %s(...)", familyTok.text)
		}
	}
	p.next() // ")"

	return p.buildEntry(paramName, familyTok.text, family, kwargs)
}

// buildEntry validates the kwarg set for the family and constructs the entry.
func (p *parser) buildEntry(paramName, familyName string, family prior.Family, kwargs map[string]kwval) (prior.Entry, error) {
	dist := prior.Distribution{Family: family}

	numeric := func(key string, dst *float64) *ParseError {
		v, ok := kwargs[key]
		if !ok {
			return errorf(MissingRequiredArgument, p.line, "%s requires %q", familyName, key)
		}
		if v.isStr {
			return errorf(SyntaxError, p.line, "%s argument %q must be a number", familyName, key)
		}
		*dst = v.num
		delete(kwargs, key)
		return nil
	}
	str := func(key string, dst *string) *ParseError {
		v, ok := kwargs[key]
		if !ok {
			return nil
		}
		if !v.isStr {
			return errorf(SyntaxError, p.line, "%s argument %q must be a string", familyName, key)
		}
		*dst = v.str
		delete(kwargs, key)
		return nil
	}

	var perr *ParseError
	switch family {
	case prior.DeltaFunction:
		perr = numeric("peak", &dist.Peak)
	default:
		if perr = numeric("minimum", &dist.Minimum); perr == nil {
			perr = numeric("maximum", &dist.Maximum)
		}
	}
	if perr == nil {
		perr = str("name", &dist.DisplayName)
	}
	if perr == nil {
		perr = str("latex_label", &dist.LatexLabel)
	}
	if perr != nil {
		return prior.Entry{}, perr
	}
	for key := range kwargs {
		return prior.Entry{}, errorf(UnknownArgument, p.line, "%s does not accept %q", familyName, key)
	}

	entry, err := prior.NewDistribution(paramName, dist)
	if err != nil {
		return prior.Entry{}, errorf(InvalidBounds, p.line, "%v", err)
	}
	return entry, nil
}

func familyByName(name string) (prior.Family, bool) {
	switch name {
	case "Uniform":
		return prior.Uniform, true
	case "LogUniform":
		return prior.LogUniform, true
	case "DeltaFunction":
		return prior.DeltaFunction, true
	}
	return 0, false
}

// parseAdditive evaluates a numeric expression with the usual precedence:
// additive over multiplicative over unary sign over primaries.
func (p *parser) parseAdditive() (float64, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return 0, err
	}
	for p.at(tokPlus) || p.at(tokMinus) {
		op := p.next().typ
		right, err := p.parseMultiplicative()
		if err != nil {
			return 0, err
		}
		if op == tokPlus {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for p.at(tokStar) || p.at(tokSlash) {
		op := p.next().typ
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == tokStar {
			left *= right
		} else {
			left /= right
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (float64, error) {
	switch p.peek().typ {
	case tokMinus:
		p.next()
		v, err := p.parseUnary()
		return -v, err
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	switch tok := p.next(); tok.typ {
	case tokNumber:
		v, err := strconv.ParseFloat(normalizeFloat(tok.text), 64)
		if err != nil {
			return 0, errorf(SyntaxError, p.line, "malformed number %q", tok.text)
		}
		return v, nil
	case tokIdent:
		if p.at(tokLParen) {
			return 0, errorf(UnknownSymbol, p.line, "function calls like %q are not allowed in expressions", tok.text)
		}
		v, ok := constants[tok.text]
		if !ok {
			return 0, errorf(UnknownSymbol, p.line, "%q is not a recognized constant", tok.text)
		}
		return v, nil
	case tokLParen:
		v, err := p.parseAdditive()
		if err != nil {
			return 0, err
		}
		if !p.at(tokRParen) {
			return 0, errorf(SyntaxError, p.line, "missing closing parenthesis")
		}
		p.next()
		return v, nil
	default:
		return 0, errorf(SyntaxError, p.line, "expected a number, constant, or parenthesized expression, got %q", tok.text)
	}
}

// normalizeFloat papers over the Python spellings strconv rejects: a bare
// trailing decimal point (12.) and a leading one (.5).
func normalizeFloat(s string) string {
	if len(s) > 0 && s[len(s)-1] == '.' {
		return s + "0"
	}
	if len(s) > 0 && s[0] == '.' {
		return "0" + s
	}
	return s
}
