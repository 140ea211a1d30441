package calc

import (
	"errors"
	"strconv"
)

// ErrorText is the result of Evaluate for any expression that cannot be
// evaluated.
const ErrorText = "Error"

var (
	// ErrDivisionByZero is the error for a division whose right operand is
	// exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrStackUnderflow is the error for an operator applied with fewer than
	// two pending operands.
	ErrStackUnderflow = errors.New("operand stack underflow")
)

// GrammarKind classifies a GrammarError.
type GrammarKind int8

const (
	grammarNone GrammarKind = iota
	// EmptyExpression is an expression with no tokens.
	EmptyExpression
	// UnbalancedOpen is a ( with no matching ).
	UnbalancedOpen
	// UnbalancedClose is a ) with no matching (.
	UnbalancedClose
	// MissingOperand is an operator or ) where an operand was expected.
	MissingOperand
	// MissingOperator is an operand or ( where an operator was expected.
	MissingOperator
	// TrailingOperator is an expression ending with an operator.
	TrailingOperator
)

func (k GrammarKind) String() string {
	switch k {
	case EmptyExpression:
		return "empty expression"
	case UnbalancedOpen:
		return "open bracket with no close bracket"
	case UnbalancedClose:
		return "close bracket with no open bracket"
	case MissingOperand:
		return "missing operand"
	case MissingOperator:
		return "missing operator"
	case TrailingOperator:
		return "expression ends with an operator"
	default:
		return "GrammarKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// GrammarError is an error indicating a malformed expression. It implements
// InputError.
type GrammarError struct {
	// Pos is the index of the offending token. For errors detected at the end
	// of the expression, Pos is the length of the expression.
	Pos int
	// Kind is the kind of malformation.
	Kind GrammarKind
	// Token is the offending token, or the empty string at the end of the
	// expression.
	Token string
}

func (err *GrammarError) Error() string {
	if err.Token == "" {
		return errpos(err.Pos, err.Kind.String())
	}
	return errpos(err.Pos, err.Kind.String()+" at "+strconv.Quote(err.Token))
}

// NumeralError is an error indicating a token that was expected to be a
// numeral but does not parse as one. It implements InputError.
type NumeralError struct {
	// Pos is the index of the token, when known.
	Pos int
	// Text is the token.
	Text string
	// Reason describes what is wrong with the token.
	Reason string
}

func (err *NumeralError) Error() string {
	return errpos(err.Pos, "invalid numeral "+strconv.Quote(err.Text)+": "+err.Reason)
}

// DivisionError is an error from dividing by exactly zero. It unwraps to
// ErrDivisionByZero and implements InputError.
type DivisionError struct {
	// Pos is the index of the / token that performed the division.
	Pos int
}

func (err *DivisionError) Error() string {
	return errpos(err.Pos, ErrDivisionByZero.Error())
}

func (err *DivisionError) Unwrap() error {
	return ErrDivisionByZero
}

// StackError is an error from applying an operator without enough operands.
// It unwraps to ErrStackUnderflow and implements InputError. Expressions that
// pass Valid never produce it.
type StackError struct {
	// Pos is the index of the operator token.
	Pos int
	// Op is the operator.
	Op string
	// Have is the number of operands that were available.
	Have int
}

func (err *StackError) Error() string {
	return errpos(err.Pos, ErrStackUnderflow.Error()+": "+strconv.Quote(err.Op)+" with "+strconv.Itoa(err.Have)+" operands")
}

func (err *StackError) Unwrap() error {
	return ErrStackUnderflow
}

// ComposeError indicates a rune that the input composer does not understand.
type ComposeError struct {
	// Col is the number of runes read up to and including the bad one.
	Col int
	// Rune is the rune.
	Rune rune
}

func (err *ComposeError) Error() string {
	return "invalid character " + strconv.QuoteRune(err.Rune) + " at column " + strconv.Itoa(err.Col)
}

// errpos is a shortcut to create an error message with a token index.
func errpos(pos int, msg string) string {
	return "token " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// a bad expression implements InputError.
type InputError interface {
	error
	// Position returns the index of the token that caused the error. For
	// ComposeError, it is the column of the bad rune instead.
	Position() int
}

func (err *GrammarError) Position() int  { return err.Pos }
func (err *NumeralError) Position() int  { return err.Pos }
func (err *DivisionError) Position() int { return err.Pos }
func (err *StackError) Position() int    { return err.Pos }
func (err *ComposeError) Position() int  { return err.Col }

var (
	_ InputError = (*GrammarError)(nil)
	_ InputError = (*NumeralError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*ComposeError)(nil)
)
