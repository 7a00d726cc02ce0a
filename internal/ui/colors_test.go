package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColorByName_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"BrightRed", "brightred", "BRIGHTRED"} {
		color, err := ColorByName(name)
		if err != nil {
			t.Fatalf("ColorByName(%q) failed: %v", name, err)
		}
		if color != lipgloss.Color("9") {
			t.Errorf("ColorByName(%q) = %v, want ANSI 9", name, color)
		}
	}
}

func TestColorByName_Default(t *testing.T) {
	color, err := ColorByName("Default")
	if err != nil {
		t.Fatalf("ColorByName(Default) failed: %v", err)
	}
	if _, ok := color.(lipgloss.NoColor); !ok {
		t.Errorf("ColorByName(Default) = %T, want lipgloss.NoColor", color)
	}
}

func TestColorByName_Unknown(t *testing.T) {
	if _, err := ColorByName("chartreuse"); err == nil {
		t.Error("ColorByName accepted an unknown color")
	}
}

func TestSetFaceColors_RejectsUnknown(t *testing.T) {
	if err := SetFaceColors("nope", ""); err == nil {
		t.Error("SetFaceColors accepted an unknown low color")
	}
	if err := SetFaceColors("", "nope"); err == nil {
		t.Error("SetFaceColors accepted an unknown high color")
	}
}
