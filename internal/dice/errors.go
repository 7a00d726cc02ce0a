package dice

import (
	"errors"
	"fmt"
)

// Parse failure kinds. Every malformed expression maps to exactly one of
// these; callers branch with errors.Is rather than matching message text.
var (
	ErrMissingDieSeparator = errors.New("missing die separator")
	ErrInvalidSides        = errors.New("die must have at least 2 sides")
	ErrInvalidCount        = errors.New("invalid die count")
	ErrInvalidModifier     = errors.New("sign without modifier value")
	ErrInvalidRepeat       = errors.New("invalid repeat suffix")
	ErrTrailingInput       = errors.New("unexpected trailing characters")
)

// ParseError reports a malformed expression along with the input that
// produced it. Unwrap exposes the failure kind for errors.Is.
type ParseError struct {
	Input string
	Kind  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func parseError(input string, kind error) error {
	return &ParseError{Input: input, Kind: kind}
}
