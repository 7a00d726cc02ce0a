// Package roll provides a minimal public API for embedding the dice
// engine: parse an expression, evaluate it against a randomness source,
// and lay the results out for display.
//
// The command-line surface, alias store, and terminal color handling live
// in internal packages; extensions that only need to roll dice should use
// this package.
package roll

import "github.com/archer884/roll/internal/dice"

// Core types for working with expressions and results
type (
	Expression = dice.Expression
	Result     = dice.Result
	Source     = dice.Source
	Line       = dice.Line
	Die        = dice.Die
	Face       = dice.Face
	ParseError = dice.ParseError
)

// Face classifications for formatted die values
const (
	FaceNeutral = dice.FaceNeutral
	FaceMin     = dice.FaceMin
	FaceMax     = dice.FaceMax
)

// Parse failure kinds, matchable with errors.Is
var (
	ErrMissingDieSeparator = dice.ErrMissingDieSeparator
	ErrInvalidSides        = dice.ErrInvalidSides
	ErrInvalidCount        = dice.ErrInvalidCount
	ErrInvalidModifier     = dice.ErrInvalidModifier
	ErrInvalidRepeat       = dice.ErrInvalidRepeat
	ErrTrailingInput       = dice.ErrTrailingInput
)

// Parse compiles a dice-notation expression such as "2d6r+2*3".
func Parse(text string) (Expression, error) {
	return dice.Parse(text)
}

// Evaluate rolls expr against src, producing expr.Repeat results.
func Evaluate(expr Expression, src Source) ([]Result, error) {
	return dice.Evaluate(expr, src)
}

// Format lays out a batch of results with aligned totals and min/max face
// classification.
func Format(results []Result, exprText string) []Line {
	return dice.Format(results, exprText)
}

// NewSource returns a randomly seeded randomness source.
func NewSource() Source {
	return dice.NewSource()
}

// NewSeededSource returns a deterministic randomness source.
func NewSeededSource(hi, lo uint64) Source {
	return dice.NewSeededSource(hi, lo)
}
