package dice

// Parse compiles a dice-notation expression. The grammar is:
//
//	expr      := count? ("d"|"D") sides "r"? modifier? repeat?
//	count     := integer              (default 1)
//	sides     := integer              (must be >= 2)
//	modifier  := ("+" | "-") integer
//	repeat    := "*" integer | "[" integer "]"?
//
// Both repeat spellings survive for compatibility with expressions stored
// by earlier releases; String always emits the *N form. Parse is pure and
// never panics: malformed input yields a *ParseError, never a zero-value
// expression.
func Parse(text string) (Expression, error) {
	s := newScanner(text)
	expr := Expression{Count: 1, Repeat: 1}

	if n, ok := s.integer(); ok {
		if n < 1 {
			return Expression{}, parseError(text, ErrInvalidCount)
		}
		expr.Count = n
	}

	if !s.accept('d') && !s.accept('D') {
		return Expression{}, parseError(text, ErrMissingDieSeparator)
	}

	sides, ok := s.integer()
	if !ok || sides < 2 {
		return Expression{}, parseError(text, ErrInvalidSides)
	}
	expr.Sides = sides

	if s.accept('r') {
		expr.Reroll = true
	}

	if sign, ok := s.sign(); ok {
		n, ok := s.integer()
		if !ok {
			return Expression{}, parseError(text, ErrInvalidModifier)
		}
		expr.Modifier = sign * n
	}

	switch {
	case s.accept('*'):
		n, ok := s.integer()
		if !ok || n < 1 {
			return Expression{}, parseError(text, ErrInvalidRepeat)
		}
		expr.Repeat = n
	case s.accept('['):
		n, ok := s.integer()
		if !ok || n < 1 {
			return Expression{}, parseError(text, ErrInvalidRepeat)
		}
		expr.Repeat = n
		// The closing bracket is optional; shells tend to eat it.
		s.accept(']')
	}

	if !s.done() {
		return Expression{}, parseError(text, ErrTrailingInput)
	}
	return expr, nil
}
