// Package dice implements parsing and evaluation of dice-notation
// expressions such as 2d8+5, 2d6r+2 and 1d20+4*3.
//
// An expression names a group of identical dice, an optional reroll flag,
// an optional flat modifier, and an optional repeat count:
//
//	2d6r+2*3
//	│││ │ └─ roll the whole expression 3 times
//	│││ └─── add 2 to each total
//	││└───── reroll 1s (once per die)
//	│└────── six-sided dice
//	└─────── two of them
//
// Parsing, evaluation and formatting are pure; the only external input is
// the Source of randomness handed to Evaluate.
package dice

import (
	"fmt"
	"strings"
)

// Expression is a parsed dice-notation expression. It is constructed by
// Parse and not modified afterward. The zero value is not a valid
// expression; Count and Repeat are at least 1 and Sides at least 2 for any
// Expression produced by Parse.
type Expression struct {
	Count    int  `json:"count"`
	Sides    int  `json:"sides"`
	Reroll   bool `json:"reroll,omitempty"`
	Modifier int  `json:"modifier,omitempty"`
	Repeat   int  `json:"repeat"`
}

// String renders the expression in canonical form. The repeat suffix is
// always written *N even when the expression was parsed from the bracket
// form, so Parse(e.String()) yields an Expression equal to e.
func (e Expression) String() string {
	var b strings.Builder
	if e.Count != 1 {
		fmt.Fprintf(&b, "%d", e.Count)
	}
	fmt.Fprintf(&b, "d%d", e.Sides)
	if e.Reroll {
		b.WriteByte('r')
	}
	if e.Modifier != 0 {
		fmt.Fprintf(&b, "%+d", e.Modifier)
	}
	if e.Repeat > 1 {
		fmt.Fprintf(&b, "*%d", e.Repeat)
	}
	return b.String()
}

// Average returns the expected total of a single evaluation of e. Rerolls
// are ignored; this matches the historical behavior of the average display.
func Average(e Expression) float64 {
	return float64((1+e.Sides)*e.Count+e.Modifier*2) / 2
}
