package selection

// Selection pairs a selection string with its parsed rule tree. A malformed
// input is carried as Err; the tree still compiles (to a constant-false test)
// so callers never have to branch before applying it.
type Selection struct {
	Input string
	Rule  *Rule
	Err   error
}

// New parses the input. It never returns nil and never panics on malformed
// input.
func New(input string) *Selection {
	r := Parse(input)
	s := &Selection{Input: input, Rule: r}
	if r != nil {
		s.Err = r.Error
	}
	return s
}
