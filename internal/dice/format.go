package dice

import (
	"fmt"
	"strings"
)

// Face classifies a die value against the faces of its die. The formatter
// only tags values; applying color is the caller's concern.
type Face int

const (
	FaceNeutral Face = iota
	FaceMin          // value equals 1
	FaceMax          // value equals the die's side count
)

// Die is one rolled value with its display classification.
type Die struct {
	Value int
	Face  Face
}

// Line is one formatted result. Total is right-padded to the widest total
// in the batch so repeated rolls print as an aligned block.
type Line struct {
	Total    string
	Expr     string
	Dice     []Die
	Modifier int
}

// String renders the line without color: total, expression text, dice in
// roll order, and the modifier as (+N)/(-N) when nonzero.
func (l Line) String() string {
	var b strings.Builder
	b.WriteString(l.Total)
	if l.Expr != "" {
		b.WriteString("  ")
		b.WriteString(l.Expr)
	}
	for _, d := range l.Dice {
		fmt.Fprintf(&b, " %d", d.Value)
	}
	if l.Modifier != 0 {
		fmt.Fprintf(&b, " (%+d)", l.Modifier)
	}
	return b.String()
}

// Format lays out a batch of results for display. All results are assumed
// to come from one expression; exprText is echoed on every line and may be
// empty. Totals are right-aligned across the whole batch, not per line.
func Format(results []Result, exprText string) []Line {
	width := 0
	for _, r := range results {
		if n := len(fmt.Sprint(r.Total)); n > width {
			width = n
		}
	}

	lines := make([]Line, 0, len(results))
	for _, r := range results {
		dice := make([]Die, 0, len(r.Rolls))
		for _, v := range r.Rolls {
			dice = append(dice, Die{Value: v, Face: classify(v, r.Sides)})
		}
		lines = append(lines, Line{
			Total:    fmt.Sprintf("%*d", width, r.Total),
			Expr:     exprText,
			Dice:     dice,
			Modifier: r.Modifier,
		})
	}
	return lines
}

// classify tags a value as min or max relative to the die that produced
// it. A 1 is tagged min even when the expression allowed a reroll: the tag
// describes the face, not how it was reached.
func classify(value, sides int) Face {
	switch {
	case value == 1:
		return FaceMin
	case value == sides:
		return FaceMax
	default:
		return FaceNeutral
	}
}
