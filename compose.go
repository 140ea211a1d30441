package calc

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

// composer builds a token sequence from typed text. It works like the button
// handlers of a desk calculator: digits collect in an operand buffer until an
// operator or bracket flushes them.
type composer struct {
	src     io.RuneScanner
	col     int
	operand strings.Builder
	toks    []string
}

// Compose reads an expression as typed text and splits it into the tokens
// that Valid and Evaluate accept. Along the way it makes implicit
// multiplication explicit, so "2(3)" and "(2)3" both gain a * token, and it
// folds a - that cannot be a binary operator into the numeral that follows.
// It does not check that the result is a valid expression.
//
// The only error from the input itself is a *ComposeError for a character
// that is not a digit, '.', operator, bracket, or whitespace.
func Compose(src io.RuneScanner) ([]string, error) {
	c := composer{src: src}
	for {
		r, sz, err := c.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if sz > 0 {
			c.col++
		}
		switch {
		case unicode.IsSpace(r):
			c.flush()
		case '0' <= r && r <= '9', r == '.':
			c.digit(r)
		case r == '(':
			c.flush()
			if c.prevOperand() {
				c.toks = append(c.toks, "*")
			}
			c.toks = append(c.toks, Open)
		case r == ')':
			c.flush()
			c.toks = append(c.toks, Close)
		case r == '-' && c.unary():
			c.operand.WriteRune(r)
		case strings.ContainsRune(Operators, r):
			c.flush()
			c.toks = append(c.toks, string(r))
		default:
			return nil, &ComposeError{Col: c.col, Rune: r}
		}
	}
	c.flush()
	return c.toks, nil
}

// ComposeString is a shortcut to compose a string.
func ComposeString(s string) ([]string, error) {
	return Compose(strings.NewReader(s))
}

func (c *composer) digit(r rune) {
	if c.operand.Len() == 0 && len(c.toks) > 0 && c.toks[len(c.toks)-1] == Close {
		c.toks = append(c.toks, "*")
	}
	c.operand.WriteRune(r)
}

// flush moves the operand buffer into the token list.
func (c *composer) flush() {
	if c.operand.Len() == 0 {
		return
	}
	c.toks = append(c.toks, c.operand.String())
	c.operand.Reset()
}

// prevOperand reports whether the last complete token ends an operand.
func (c *composer) prevOperand() bool {
	if len(c.toks) == 0 {
		return false
	}
	switch kindOf(c.toks[len(c.toks)-1]) {
	case tokenNum, tokenClose:
		return true
	}
	return false
}

// unary reports whether a - typed now is a sign rather than subtraction.
func (c *composer) unary() bool {
	if c.operand.Len() != 0 {
		return false
	}
	return !c.prevOperand()
}
