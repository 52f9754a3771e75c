package selection

import "errors"

var (
	// ErrEmptySelection is recorded when the input contains no tokens.
	ErrEmptySelection = errors.New("empty selection")

	// ErrEmptyGroup is recorded for a parenthesized group with no content.
	ErrEmptyGroup = errors.New("empty group")

	// ErrUnbalancedParens is recorded when parentheses do not pair up.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")

	// ErrUnexpectedToken is recorded for a token the grammar cannot place.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrAtomNameLength is recorded when an atom-name constraint is not 1-4
	// characters long.
	ErrAtomNameLength = errors.New("atom name must be 1-4 characters")

	// ErrBadRange is recorded for a residue-number range with more than one
	// separator or inverted bounds.
	ErrBadRange = errors.New("malformed residue-number range")

	// ErrBadInteger is recorded when a numeric field does not parse.
	ErrBadInteger = errors.New("malformed integer")
)
