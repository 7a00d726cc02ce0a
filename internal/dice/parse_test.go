package dice

import (
	"errors"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	tests := []struct {
		input string
		want  Expression
	}{
		{"2d6", Expression{Count: 2, Sides: 6, Repeat: 1}},
		{"d20", Expression{Count: 1, Sides: 20, Repeat: 1}},
		{"1d20+4", Expression{Count: 1, Sides: 20, Modifier: 4, Repeat: 1}},
		{"2d6r+2", Expression{Count: 2, Sides: 6, Reroll: true, Modifier: 2, Repeat: 1}},
		{"2d8-3", Expression{Count: 2, Sides: 8, Modifier: -3, Repeat: 1}},
		{"2d6*5", Expression{Count: 2, Sides: 6, Repeat: 5}},
		{"2d6[5]", Expression{Count: 2, Sides: 6, Repeat: 5}},
		{"2d6[5", Expression{Count: 2, Sides: 6, Repeat: 5}},
		{"2D6", Expression{Count: 2, Sides: 6, Repeat: 1}},
		{"1d20+4*3", Expression{Count: 1, Sides: 20, Modifier: 4, Repeat: 3}},
		{"2d6r-1[4]", Expression{Count: 2, Sides: 6, Reroll: true, Modifier: -1, Repeat: 4}},
		{" 2 d 6 + 1 ", Expression{Count: 2, Sides: 6, Modifier: 1, Repeat: 1}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParse_RepeatFormsAgree(t *testing.T) {
	star, err := Parse("2d6*5")
	if err != nil {
		t.Fatalf("Parse(2d6*5) failed: %v", err)
	}
	bracket, err := Parse("2d6[5]")
	if err != nil {
		t.Fatalf("Parse(2d6[5]) failed: %v", err)
	}
	if star != bracket {
		t.Errorf("repeat forms disagree: %+v vs %+v", star, bracket)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
	}{
		{"", ErrMissingDieSeparator},
		{"20", ErrMissingDieSeparator},
		{"2x6", ErrMissingDieSeparator},
		{"2d", ErrInvalidSides},
		{"2d0", ErrInvalidSides},
		{"2d1", ErrInvalidSides},
		{"0d6", ErrInvalidCount},
		{"2d6+", ErrInvalidModifier},
		{"2d6-", ErrInvalidModifier},
		{"2d6*", ErrInvalidRepeat},
		{"2d6*0", ErrInvalidRepeat},
		{"2d6[", ErrInvalidRepeat},
		{"2d6[]", ErrInvalidRepeat},
		{"1d20x", ErrTrailingInput},
		{"2d6r+2q", ErrTrailingInput},
		{"2d6*3x", ErrTrailingInput},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want %v", tt.input, tt.kind)
			continue
		}
		if !errors.Is(err, tt.kind) {
			t.Errorf("Parse(%q) = %v, want kind %v", tt.input, err, tt.kind)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): error is not a *ParseError", tt.input)
		} else if perr.Input != tt.input {
			t.Errorf("Parse(%q): ParseError.Input = %q", tt.input, perr.Input)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"2d6", "d20", "1d20+4", "2d6r+2", "2d8-3", "2d6*5", "2d6[5]",
		"2D6", "10d10r-2[7]", "3d4+0",
	}

	for _, input := range inputs {
		first, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed on canonical form %q: %v", input, first.String(), err)
		}
		if first != second {
			t.Errorf("round trip of %q: %+v != %+v", input, first, second)
		}
	}
}

func TestExpression_String(t *testing.T) {
	tests := []struct {
		expr Expression
		want string
	}{
		{Expression{Count: 1, Sides: 20, Repeat: 1}, "d20"},
		{Expression{Count: 2, Sides: 6, Repeat: 1}, "2d6"},
		{Expression{Count: 2, Sides: 6, Reroll: true, Modifier: 2, Repeat: 1}, "2d6r+2"},
		{Expression{Count: 1, Sides: 8, Modifier: -1, Repeat: 3}, "d8-1*3"},
	}

	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"d20", 10.5},
		{"2d6", 7},
		{"2d6+2", 9},
		{"1d20+4", 14.5},
	}

	for _, tt := range tests {
		expr, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.input, err)
		}
		if got := Average(expr); got != tt.want {
			t.Errorf("Average(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
