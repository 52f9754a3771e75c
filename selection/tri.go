package selection

// Tri is the result of evaluating a rule against an entity: definite match,
// definite mismatch, or not applicable because none of the rule's constraints
// bear on the entity's level.
type Tri uint8

const (
	// TriFalse is a definite mismatch.
	TriFalse Tri = iota
	// TriTrue is a definite match.
	TriTrue
	// TriNA means the rule does not apply at the tested level.
	TriNA
)

// Not flips true and false; not-applicable stays not-applicable.
func (t Tri) Not() Tri {
	switch t {
	case TriTrue:
		return TriFalse
	case TriFalse:
		return TriTrue
	default:
		return TriNA
	}
}

// String implements fmt.Stringer.
func (t Tri) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "n/a"
	}
}
