package roll_test

import (
	"errors"
	"testing"

	"github.com/archer884/roll"
)

// Exercises the public API end to end: parse, evaluate, format.
func TestPublicAPI(t *testing.T) {
	expr, err := roll.Parse("2d6+2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	results, err := roll.Evaluate(expr, roll.NewSeededSource(3, 14))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}

	lines := roll.Format(results, "2d6+2")
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if lines[0].Expr != "2d6+2" {
		t.Errorf("Expr = %q, want 2d6+2", lines[0].Expr)
	}
}

func TestPublicAPI_ErrorKinds(t *testing.T) {
	_, err := roll.Parse("2d1")
	if !errors.Is(err, roll.ErrInvalidSides) {
		t.Errorf("Parse(2d1) = %v, want ErrInvalidSides", err)
	}
	var perr *roll.ParseError
	if !errors.As(err, &perr) {
		t.Error("error is not a *ParseError")
	}
}
