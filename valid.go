package calc

// Valid reports whether expr is a well-formed expression: numerals and
// bracketed subexpressions separated by binary operators, with balanced
// brackets. A - in place of an operand is the sign of the numeral directly
// after it. Valid does not modify expr.
func Valid(expr []string) bool {
	return Check(expr) == nil
}

// Check is like Valid, but it returns an error describing the first problem
// with expr. The error is a *GrammarError or a *NumeralError.
func Check(expr []string) error {
	if len(expr) == 0 {
		return &GrammarError{Kind: EmptyExpression}
	}
	s := newScanner(expr)
	balance := 0
	for {
		// s.operand is updated by next, so read it first.
		want := s.operand
		it := s.next()
		switch it.kind {
		case tokenNone:
			if want {
				return &GrammarError{Pos: it.pos, Kind: TrailingOperator}
			}
			if balance > 0 {
				return &GrammarError{Pos: it.pos, Kind: UnbalancedOpen}
			}
			return nil
		case tokenOpen:
			if !want {
				return &GrammarError{Pos: it.pos, Kind: MissingOperator, Token: it.text}
			}
			balance++
		case tokenClose:
			if want {
				return &GrammarError{Pos: it.pos, Kind: MissingOperand, Token: it.text}
			}
			if balance <= 0 {
				return &GrammarError{Pos: it.pos, Kind: UnbalancedClose, Token: it.text}
			}
			balance--
		case tokenOp:
			if want {
				return &GrammarError{Pos: it.pos, Kind: MissingOperand, Token: it.text}
			}
		case tokenNum:
			if _, err := parseAt(it); err != nil {
				return err
			}
			if !want {
				return &GrammarError{Pos: it.pos, Kind: MissingOperator, Token: it.text}
			}
		}
	}
}

// parseAt parses a numeral item, recording its position in any error.
func parseAt(it item) (Rat, error) {
	r, err := ParseRat(it.text)
	if err != nil {
		err := err.(*NumeralError)
		err.Pos = it.pos
		return Rat{}, err
	}
	return r, nil
}
