package selection

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Parse turns a selection string into a rule tree. Parse never fails loudly:
// a malformed input yields a single leaf with Error set, which compiles to a
// constant-false test so interactive callers degrade to "selects nothing".
func Parse(input string) *Rule {
	tokens := tokenize(input)
	if len(tokens) == 0 {
		return &Rule{Error: ErrEmptySelection}
	}
	p := &parser{tokens: tokens}
	r, err := p.parseOr()
	if err == nil && p.pos != len(p.tokens) {
		err = fmt.Errorf("%w: %q", ErrUnexpectedToken, p.tokens[p.pos])
	}
	if err != nil {
		return &Rule{Error: err}
	}
	return r
}

// tokenize pads parentheses with spaces, splits on whitespace and uppercases.
func tokenize(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	return strings.Fields(strings.ToUpper(s))
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

// parseOr parses a disjunction. AND binds tighter than OR, so each operand is
// a full conjunction.
func (p *parser) parseOr() (*Rule, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	children := []*Rule{left}
	for p.peek() == "OR" {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, right)
	}
	if len(children) == 1 {
		return left, nil
	}
	return &Rule{Operator: OpOr, Rules: children}, nil
}

// parseAnd parses a conjunction. The AND operator word is optional: adjacent
// operands conjoin.
func (p *parser) parseAnd() (*Rule, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	children := []*Rule{left}
	for {
		tok := p.peek()
		if tok == "" || tok == ")" || tok == "OR" {
			break
		}
		if tok == "AND" {
			p.pos++
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		children = append(children, right)
	}
	if len(children) == 1 {
		return left, nil
	}
	return &Rule{Operator: OpAnd, Rules: children}, nil
}

// parseUnary parses NOT, a parenthesized group, or a single leaf token. NOT
// consumes exactly the next token or group.
func (p *parser) parseUnary() (*Rule, error) {
	switch tok := p.peek(); tok {
	case "":
		return nil, ErrEmptyGroup
	case "NOT":
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		inner.Negate = !inner.Negate
		return inner, nil
	case "(":
		p.pos++
		if p.peek() == ")" {
			return nil, ErrEmptyGroup
		}
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, ErrUnbalancedParens
		}
		p.pos++
		return inner, nil
	case ")", "AND", "OR":
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, tok)
	default:
		p.pos++
		return parseLeaf(tok)
	}
}

func parseLeaf(tok string) (*Rule, error) {
	if rest, ok := strings.CutPrefix(tok, "@"); ok {
		return parseAtomIndices(rest)
	}
	if strings.HasPrefix(tok, "[") {
		return parseBracketList(tok)
	}
	if r := classRule(tok); r != nil {
		return r, nil
	}
	if tok == "LIGAND" {
		return ligandRule(), nil
	}
	if kw, ok := keywords[tok]; ok {
		return &Rule{Keyword: kw}, nil
	}
	return parseQualifier(tok)
}

// parseAtomIndices parses "@1,5,12" into a sorted index list.
func parseAtomIndices(list string) (*Rule, error) {
	parts := strings.Split(list, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadInteger, part)
		}
		indices = append(indices, n)
	}
	sort.Ints(indices)
	return &Rule{AtomIndices: indices}, nil
}

// parseBracketList parses "[ALA,CYS]" into a resname list, or "[123]" into an
// exact residue-number leaf.
func parseBracketList(tok string) (*Rule, error) {
	if !strings.HasSuffix(tok, "]") || len(tok) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, tok)
	}
	parts := strings.Split(tok[1:len(tok)-1], ",")
	if len(parts) == 1 {
		if n, err := strconv.Atoi(parts[0]); err == nil {
			return &Rule{Resno: [2]int32{int32(n), int32(n)}, HasResno: true}, nil
		}
	}
	sort.Strings(parts)
	return &Rule{Resnames: parts}, nil
}

// parseQualifier decomposes a chunk token right-to-left by sigil: model,
// altloc, atom name, chain name, insertion code, then the remainder as
// element, residue number/range, or residue name.
func parseQualifier(tok string) (*Rule, error) {
	r := &Rule{}
	rest := tok
	any := false

	if i := strings.LastIndexByte(rest, '/'); i >= 0 {
		m, err := strconv.Atoi(rest[i+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadInteger, rest[i+1:])
		}
		r.Model, r.HasModel = m, true
		rest = rest[:i]
		any = true
	}
	if i := strings.LastIndexByte(rest, '%'); i >= 0 {
		r.Altloc, r.HasAltloc = rest[i+1:], true
		rest = rest[:i]
		any = true
	}
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		name := rest[i+1:]
		if len(name) < 1 || len(name) > 4 {
			return nil, fmt.Errorf("%w: %q", ErrAtomNameLength, name)
		}
		r.Atomname, r.HasAtomname = name, true
		rest = rest[:i]
		any = true
	}
	if i := strings.LastIndexByte(rest, ':'); i >= 0 {
		r.Chainname, r.HasChain = rest[i+1:], true
		rest = rest[:i]
		any = true
	}
	if i := strings.LastIndexByte(rest, '^'); i >= 0 {
		r.Inscode, r.HasInscode = rest[i+1:], true
		rest = rest[:i]
		any = true
	}
	if name, ok := strings.CutPrefix(rest, "_"); ok {
		r.Element, r.HasElement = name, true
		rest = ""
		any = true
	}

	switch {
	case rest == "":
	case isResname(rest):
		r.Resnames = []string{rest}
		any = true
	default:
		lo, hi, err := parseResnoRange(rest)
		if err != nil {
			return nil, err
		}
		r.Resno, r.HasResno = [2]int32{lo, hi}, true
		any = true
	}

	if !any {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, tok)
	}
	return r, nil
}

// isResname reports whether the token is a bare 1-4 character alphabetic
// name.
func isResname(s string) bool {
	if len(s) < 1 || len(s) > 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// parseResnoRange parses "N" or "A-B" with optional unary minus on either
// bound. A separator is a '-' directly following a digit; more than one is a
// parse error.
func parseResnoRange(s string) (int32, int32, error) {
	sep := -1
	for i := 1; i < len(s); i++ {
		if s[i] == '-' && s[i-1] >= '0' && s[i-1] <= '9' {
			if sep >= 0 {
				return 0, 0, fmt.Errorf("%w: %q", ErrBadRange, s)
			}
			sep = i
		}
	}
	if sep < 0 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadInteger, s)
		}
		return int32(n), int32(n), nil
	}
	lo, err := strconv.Atoi(s[:sep])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadInteger, s[:sep])
	}
	hi, err := strconv.Atoi(s[sep+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadInteger, s[sep+1:])
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	return int32(lo), int32(hi), nil
}
