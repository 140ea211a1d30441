package calc

import (
	"math/big"
	"strconv"
	"strings"
)

// Rat is an exact rational number. Rats are immutable: every arithmetic
// method returns a new value and leaves its operands alone. The zero value is
// the number 0.
//
// A Rat is always stored in lowest terms with a positive denominator.
type Rat struct {
	r *big.Rat
}

// NewRat returns num/den in lowest terms. Panics if den is zero.
func NewRat(num, den int64) Rat {
	if den == 0 {
		panic("calc: zero denominator")
	}
	return Rat{big.NewRat(num, den)}
}

// RatFromBig returns a Rat with the value of x. x is copied, so later changes
// to x do not affect the result.
func RatFromBig(x *big.Rat) Rat {
	if x == nil {
		return Rat{}
	}
	return Rat{new(big.Rat).Set(x)}
}

// ParseRat parses a numeral token. The accepted syntax is an optional sign,
// an integer part, and optionally a single '.' followed by a fractional part.
// The integer and fractional parts together must be a non-empty run of ASCII
// decimal digits. Leading and trailing whitespace is ignored.
//
// If the token is not a numeral, the error is a *NumeralError.
func ParseRat(text string) (Rat, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Rat{}, &NumeralError{Text: text, Reason: "empty numeral"}
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		fallthrough
	case '+':
		s = s[1:]
	}
	if s == "" {
		return Rat{}, &NumeralError{Text: text, Reason: "sign without digits"}
	}
	digits, frac := s, ""
	if k := strings.IndexByte(s, '.'); k >= 0 {
		digits, frac = s[:k], s[k+1:]
	}
	if strings.IndexByte(frac, '.') >= 0 {
		return Rat{}, &NumeralError{Text: text, Reason: "more than one decimal point"}
	}
	digits += frac
	if digits == "" {
		return Rat{}, &NumeralError{Text: text, Reason: "no digits"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Rat{}, &NumeralError{Text: text, Reason: "invalid character " + strconv.Quote(digits[i:i+1])}
		}
	}
	var num big.Int
	if _, ok := num.SetString(digits, 10); !ok {
		// Unreachable with the checks above, but big.Int has the final say.
		return Rat{}, &NumeralError{Text: text, Reason: "invalid digits"}
	}
	if neg {
		num.Neg(&num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)
	return Rat{new(big.Rat).SetFrac(&num, den)}, nil
}

// rat returns the underlying value, treating the zero Rat as 0. The result
// must not be modified.
func (x Rat) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Add returns x+y.
func (x Rat) Add(y Rat) Rat {
	return Rat{new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub returns x-y.
func (x Rat) Sub(y Rat) Rat {
	return Rat{new(big.Rat).Sub(x.rat(), y.rat())}
}

// Mul returns x*y.
func (x Rat) Mul(y Rat) Rat {
	return Rat{new(big.Rat).Mul(x.rat(), y.rat())}
}

// Quo returns x/y. If y is exactly zero, the result is 0 and the error is
// ErrDivisionByZero.
func (x Rat) Quo(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return Rat{new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	return Rat{new(big.Rat).Neg(x.rat())}
}

// IsZero reports whether x is exactly zero.
func (x Rat) IsZero() bool {
	return x.r == nil || x.r.Sign() == 0
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Rat) Sign() int {
	if x.r == nil {
		return 0
	}
	return x.r.Sign()
}

// Cmp compares x and y, returning -1, 0, or 1.
func (x Rat) Cmp(y Rat) int {
	return x.rat().Cmp(y.rat())
}

// Num returns a copy of the numerator of x. Its sign is the sign of x.
func (x Rat) Num() *big.Int {
	return new(big.Int).Set(x.rat().Num())
}

// Denom returns a copy of the denominator of x, which is always positive.
func (x Rat) Denom() *big.Int {
	return new(big.Int).Set(x.rat().Denom())
}

// Big returns a copy of x as a *big.Rat.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

// String formats x as "num/den", or just "num" if x is an integer.
func (x Rat) String() string {
	return x.rat().RatString()
}
