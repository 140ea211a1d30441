package calc

// Operators contains the binary operator tokens, in no particular order.
const Operators = "+-*/"

// Grouping tokens.
const (
	Open  = "("
	Close = ")"
)

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is anything that is not an operator or bracket. Whether it is
	// actually a numeral is decided by ParseRat.
	tokenNum
	// tokenOp is one of + - * /.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNum:
		return "number"
	case tokenOp:
		return "operator"
	case tokenOpen:
		return "open"
	case tokenClose:
		return "close"
	default:
		return "none"
	}
}

// kindOf classifies a token by its exact text.
func kindOf(tok string) tokenKind {
	switch tok {
	case "+", "-", "*", "/":
		return tokenOp
	case Open:
		return tokenOpen
	case Close:
		return tokenClose
	default:
		return tokenNum
	}
}

// TokenKind describes a token as "number", "operator", "open", or "close".
// It does not check that numbers are well-formed.
func TokenKind(tok string) string {
	return kindOf(tok).String()
}

// precedence returns the binding strength of a binary operator. Higher binds
// tighter. Anything that isn't an operator has precedence 0.
func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}

// scanner walks an expression one operand at a time, folding a unary - into
// the numeral that follows it. Both the validator and the evaluator use it so
// that they agree on what an operand is.
type scanner struct {
	expr []string
	pos  int
	// operand is whether an operand is expected next.
	operand bool
}

func newScanner(expr []string) scanner {
	return scanner{expr: expr, operand: true}
}

// item is a token from the scanner. For numerals, text may cover two tokens of
// the expression, a - and a numeral.
type item struct {
	text string
	kind tokenKind
	pos  int
}

// next returns the next token. At the end of the expression, the result has
// kind tokenNone.
func (s *scanner) next() item {
	if s.pos >= len(s.expr) {
		return item{pos: len(s.expr)}
	}
	tok := s.expr[s.pos]
	it := item{text: tok, kind: kindOf(tok), pos: s.pos}
	s.pos++
	if it.kind == tokenOp && tok == "-" && s.operand && s.pos < len(s.expr) && kindOf(s.expr[s.pos]) == tokenNum {
		// Unary minus. Only - gets this treatment; a leading + is a missing
		// operand like any other operator.
		it.text = "-" + s.expr[s.pos]
		it.kind = tokenNum
		s.pos++
	}
	switch it.kind {
	case tokenNum, tokenClose:
		s.operand = false
	case tokenOp, tokenOpen:
		s.operand = true
	}
	return it
}
