package selection

// Operator joins the children of a non-leaf rule. A single-rule group carries
// OpNone.
type Operator uint8

const (
	// OpNone marks a leaf or a single-rule group.
	OpNone Operator = iota
	// OpAnd requires every applicable child to match.
	OpAnd
	// OpOr requires at least one child to match.
	OpOr
)

// String implements fmt.Stringer.
func (o Operator) String() string {
	switch o {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return ""
	}
}

// Rule is one node of a parsed selection tree. A node carries an operator,
// an optional negate flag and children; a leaf carries the constraints
// decomposed from one token. A qualifier token like "15^C:A.CA%A/0" yields a
// single leaf holding several constraints that must all hold.
//
// A malformed input is represented as a single leaf with Error set; such a
// tree compiles to a constant-false test.
type Rule struct {
	Operator Operator
	Negate   bool
	Rules    []*Rule
	Error    error

	Keyword  Keyword
	Resnames []string // sorted ascending
	Resno    [2]int32 // inclusive range, valid when HasResno
	HasResno bool

	Chainname string
	HasChain  bool

	Atomname    string
	HasAtomname bool

	Element    string
	HasElement bool

	Altloc    string
	HasAltloc bool

	Inscode    string
	HasInscode bool

	Model    int
	HasModel bool

	AtomIndices []int // sorted ascending
}

// IsLeaf reports whether the rule has no children.
func (r *Rule) IsLeaf() bool { return len(r.Rules) == 0 }
