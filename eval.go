package calc

import "strings"

// reducer holds the stacks for a single shunting-yard pass. The values are
// whatever the operations produce: exact numbers for Eval, bracketed text for
// Group.
type reducer[T any] struct {
	values []T
	ops    []item

	// leaf converts a numeral to a value.
	leaf func(it item) (T, error)
	// binary combines two values with the operator op.
	binary func(op item, a, b T) (T, error)
}

// push pushes a value.
func (e *reducer[T]) push(v T) {
	e.values = append(e.values, v)
}

// pop removes the top value and returns it.
func (e *reducer[T]) pop() T {
	r := e.values[len(e.values)-1]
	e.values = e.values[:len(e.values)-1]
	return r
}

// top is a shortcut to get the top of the operator stack.
func (e *reducer[T]) top() item {
	return e.ops[len(e.ops)-1]
}

// apply pops the top operator and the two values beneath it, and pushes the
// result of the operation.
func (e *reducer[T]) apply() error {
	op := e.top()
	e.ops = e.ops[:len(e.ops)-1]
	if op.kind != tokenOp {
		// Only an unclosed ( can get here.
		return &GrammarError{Pos: op.pos, Kind: UnbalancedOpen, Token: op.text}
	}
	if len(e.values) < 2 {
		return &StackError{Pos: op.pos, Op: op.text, Have: len(e.values)}
	}
	b := e.pop()
	a := e.pop()
	r, err := e.binary(op, a, b)
	if err != nil {
		return err
	}
	e.push(r)
	return nil
}

// run reduces an expression to a single value. It does not assume that the
// expression is valid.
func (e *reducer[T]) run(expr []string) (T, error) {
	var zero T
	e.values = make([]T, 0, len(expr)/2+1)
	e.ops = make([]item, 0, len(expr)/2+1)
	s := newScanner(expr)
	for it := s.next(); it.kind != tokenNone; it = s.next() {
		switch it.kind {
		case tokenOpen:
			e.ops = append(e.ops, it)
		case tokenClose:
			for len(e.ops) > 0 && e.top().kind != tokenOpen {
				if err := e.apply(); err != nil {
					return zero, err
				}
			}
			if len(e.ops) == 0 {
				return zero, &GrammarError{Pos: it.pos, Kind: UnbalancedClose, Token: it.text}
			}
			e.ops = e.ops[:len(e.ops)-1]
		case tokenOp:
			p := precedence(it.text)
			for len(e.ops) > 0 && e.top().kind != tokenOpen && precedence(e.top().text) >= p {
				if err := e.apply(); err != nil {
					return zero, err
				}
			}
			e.ops = append(e.ops, it)
		case tokenNum:
			v, err := e.leaf(it)
			if err != nil {
				return zero, err
			}
			e.push(v)
		}
	}
	for len(e.ops) > 0 {
		if err := e.apply(); err != nil {
			return zero, err
		}
	}
	switch len(e.values) {
	case 0:
		return zero, &GrammarError{Pos: len(expr), Kind: EmptyExpression}
	case 1:
		return e.values[0], nil
	default:
		return zero, &GrammarError{Pos: len(expr), Kind: MissingOperator}
	}
}

func arith(op item, a, b Rat) (Rat, error) {
	switch op.text {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		r, err := a.Quo(b)
		if err != nil {
			return Rat{}, &DivisionError{Pos: op.pos}
		}
		return r, nil
	default:
		panic("calc: invalid operator " + op.text)
	}
}

// Eval evaluates an expression exactly. It does not assume that the expression
// is valid: malformed input results in a *GrammarError, *NumeralError, or
// *StackError. Division by zero results in a *DivisionError.
func Eval(expr []string) (Rat, error) {
	e := reducer[Rat]{leaf: parseAt, binary: arith}
	return e.run(expr)
}

// Evaluate evaluates an expression and formats the result as a decimal
// numeral. If the expression is malformed or divides by zero, the result is
// ErrorText.
func Evaluate(expr []string, opts ...Option) string {
	c := applyOpts(opts)
	r, err := Eval(expr)
	if err != nil {
		return ErrorText
	}
	return Format(r, c.digits)
}

// Group shows how an expression is grouped by precedence and brackets. Each
// operation in the result is wrapped in exactly one pair of brackets, so
// "1 - 2 * 3 - 4" groups as "((1 - (2 * 3)) - 4)". Numerals are copied as
// written, with any unary - attached.
func Group(expr []string) (string, error) {
	e := reducer[string]{
		leaf: func(it item) (string, error) {
			if _, err := parseAt(it); err != nil {
				return "", err
			}
			return it.text, nil
		},
		binary: func(op item, a, b string) (string, error) {
			var s strings.Builder
			s.Grow(len(a) + len(b) + len(op.text) + 4)
			s.WriteByte('(')
			s.WriteString(a)
			s.WriteByte(' ')
			s.WriteString(op.text)
			s.WriteByte(' ')
			s.WriteString(b)
			s.WriteByte(')')
			return s.String(), nil
		},
	}
	return e.run(expr)
}
