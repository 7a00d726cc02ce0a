// Package ui renders formatted roll lines for the terminal. Die values on
// their maximum face print bright green, minimum faces bright red; both
// are overridable from the settings file. The core formatter only tags
// values — everything color-related lives here.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/archer884/roll/internal/dice"
)

var (
	maxStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // bright green
	minStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // bright red
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func init() {
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SetFaceColors overrides the min/max highlight colors by ANSI color name.
// Empty names keep the current color.
func SetFaceColors(low, high string) error {
	if low != "" {
		color, err := ColorByName(low)
		if err != nil {
			return err
		}
		minStyle = minStyle.Foreground(color)
	}
	if high != "" {
		color, err := ColorByName(high)
		if err != nil {
			return err
		}
		maxStyle = maxStyle.Foreground(color)
	}
	return nil
}

// RenderLine renders one formatted result: aligned total, muted expression
// text, dice with face highlighting, and the modifier when nonzero.
func RenderLine(line dice.Line) string {
	var b strings.Builder
	b.WriteString(line.Total)
	if line.Expr != "" {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(line.Expr))
	}
	for _, d := range line.Dice {
		b.WriteByte(' ')
		b.WriteString(renderDie(d))
	}
	if line.Modifier != 0 {
		fmt.Fprintf(&b, " (%+d)", line.Modifier)
	}
	return b.String()
}

// RenderComment renders an alias header comment.
func RenderComment(s string) string {
	return mutedStyle.Render(s)
}

func renderDie(d dice.Die) string {
	text := fmt.Sprint(d.Value)
	switch d.Face {
	case dice.FaceMax:
		return maxStyle.Render(text)
	case dice.FaceMin:
		return minStyle.Render(text)
	default:
		return text
	}
}
