package calc

import (
	"math/big"
	"strings"
)

// Format renders v as a decimal numeral with at most maxFractionDigits digits
// after the decimal point. If v needs more digits than that, it is rounded
// half up: a discarded part of at least one half of the last kept digit
// increments that digit, carrying leftward as far as needed. Trailing zeros
// after the decimal point are removed, along with the point itself if nothing
// remains after it. The result has a leading - only if it is not "0".
//
// Negative maxFractionDigits is treated as 0.
func Format(v Rat, maxFractionDigits int) string {
	if v.IsZero() {
		return "0"
	}
	if maxFractionDigits < 0 {
		maxFractionDigits = 0
	}
	neg := v.Sign() < 0
	num := new(big.Int).Abs(v.rat().Num())
	den := v.rat().Denom()

	var q, r big.Int
	q.QuoRem(num, den, &r)
	intpart := []byte(q.String())
	if r.Sign() == 0 {
		return sign(neg, intpart)
	}

	// Long division, one digit at a time.
	ten := big.NewInt(10)
	frac := make([]byte, 0, maxFractionDigits)
	var d, m big.Int
	for i := 0; i < maxFractionDigits && r.Sign() != 0; i++ {
		r.Mul(&r, ten)
		d.QuoRem(&r, den, &m)
		r.Set(&m)
		frac = append(frac, byte('0'+d.Int64()))
	}

	if r.Sign() != 0 {
		// Peek at the next digit to decide rounding.
		r.Mul(&r, ten)
		d.Quo(&r, den)
		if d.Int64() >= 5 && carry(frac) && carry(intpart) {
			intpart = append([]byte{'1'}, intpart...)
		}
	}

	frac = []byte(strings.TrimRight(string(frac), "0"))
	if len(frac) == 0 {
		return sign(neg, intpart)
	}
	var b strings.Builder
	b.Grow(len(intpart) + len(frac) + 2)
	if neg {
		b.WriteByte('-')
	}
	b.Write(intpart)
	b.WriteByte('.')
	b.Write(frac)
	return b.String()
}

// carry adds one to the decimal digits in ds, starting from the rightmost.
// It returns true if the carry propagates out of the leftmost digit, in which
// case every digit is now 0.
func carry(ds []byte) bool {
	for i := len(ds) - 1; i >= 0; i-- {
		if ds[i] < '9' {
			ds[i]++
			return false
		}
		ds[i] = '0'
	}
	return true
}

func sign(neg bool, intpart []byte) string {
	if neg && string(intpart) != "0" {
		return "-" + string(intpart)
	}
	return string(intpart)
}

// Text formats x as a decimal numeral as if by Format.
func (x Rat) Text(maxFractionDigits int) string {
	return Format(x, maxFractionDigits)
}
