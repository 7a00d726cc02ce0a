package dice

import (
	"strings"
	"unicode"
)

// scanner walks an expression left to right, one field at a time. It never
// backtracks: each helper either consumes input or leaves the position
// untouched.
type scanner struct {
	src string
	pos int
}

func newScanner(text string) *scanner {
	// Whitespace is not significant anywhere in an expression.
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	return &scanner{src: clean}
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

// accept consumes c if it is the next byte.
func (s *scanner) accept(c byte) bool {
	if !s.done() && s.src[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// integer consumes a run of digits. The second return is false when no
// digit is present at the current position.
func (s *scanner) integer() (int, bool) {
	start := s.pos
	n := 0
	for !s.done() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		n = n*10 + int(s.src[s.pos]-'0')
		s.pos++
	}
	return n, s.pos > start
}

// sign consumes a leading + or -, returning +1 or -1.
func (s *scanner) sign() (int, bool) {
	switch s.peek() {
	case '+':
		s.pos++
		return 1, true
	case '-':
		s.pos++
		return -1, true
	}
	return 0, false
}
