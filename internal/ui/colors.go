package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI color names accepted in the settings file. Matching is
// case-insensitive; "Default" means the terminal's default foreground.
var colorNames = map[string]lipgloss.TerminalColor{
	"black":         lipgloss.Color("0"),
	"red":           lipgloss.Color("1"),
	"green":         lipgloss.Color("2"),
	"yellow":        lipgloss.Color("3"),
	"blue":          lipgloss.Color("4"),
	"magenta":       lipgloss.Color("5"),
	"cyan":          lipgloss.Color("6"),
	"white":         lipgloss.Color("7"),
	"brightblack":   lipgloss.Color("8"),
	"brightred":     lipgloss.Color("9"),
	"brightgreen":   lipgloss.Color("10"),
	"brightyellow":  lipgloss.Color("11"),
	"brightblue":    lipgloss.Color("12"),
	"brightmagenta": lipgloss.Color("13"),
	"brightcyan":    lipgloss.Color("14"),
	"brightwhite":   lipgloss.Color("15"),
	"default":       lipgloss.NoColor{},
}

// ColorByName resolves an ANSI color name to a terminal color.
func ColorByName(name string) (lipgloss.TerminalColor, error) {
	if color, ok := colorNames[strings.ToLower(name)]; ok {
		return color, nil
	}
	return nil, fmt.Errorf("unknown color %q", name)
}
