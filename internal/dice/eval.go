package dice

import "fmt"

// Source yields uniformly distributed integers for the evaluator. Next
// returns a value in [min, max] inclusive. Implementations backed by real
// randomness never fail; scripted sources used in tests return an error
// once exhausted, and Evaluate propagates that error instead of inventing
// a value.
//
// A Source is used by one evaluation at a time and need not be safe for
// concurrent use.
type Source interface {
	Next(min, max int) (int, error)
}

// Result is the outcome of one evaluation of an expression: the final
// per-die values in draw order, the modifier copied from the expression,
// and their sum. Sides is carried along so the formatter can classify each
// value against the die's faces.
type Result struct {
	Rolls    []int
	Sides    int
	Modifier int
	Total    int
}

// Evaluate rolls expr against src, producing exactly expr.Repeat results.
// Each repetition is evaluated independently.
//
// When expr.Reroll is set, a die landing on 1 is drawn exactly once more
// and the second value kept unconditionally — a rerolled 1 stays a 1. The
// modifier is applied once per result, after all dice are summed.
//
// Evaluate trusts that expr came from Parse; it does not re-validate.
func Evaluate(expr Expression, src Source) ([]Result, error) {
	results := make([]Result, 0, expr.Repeat)

	for i := 0; i < expr.Repeat; i++ {
		rolls := make([]int, 0, expr.Count)
		sum := 0

		for j := 0; j < expr.Count; j++ {
			value, err := src.Next(1, expr.Sides)
			if err != nil {
				return nil, fmt.Errorf("draw d%d: %w", expr.Sides, err)
			}
			if expr.Reroll && value == 1 {
				value, err = src.Next(1, expr.Sides)
				if err != nil {
					return nil, fmt.Errorf("reroll d%d: %w", expr.Sides, err)
				}
			}
			rolls = append(rolls, value)
			sum += value
		}

		results = append(results, Result{
			Rolls:    rolls,
			Sides:    expr.Sides,
			Modifier: expr.Modifier,
			Total:    sum + expr.Modifier,
		})
	}

	return results, nil
}
