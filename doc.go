// Package calc implements the evaluation engine of a four-function calculator
// using exact rational arithmetic.
//
// An expression is a slice of tokens: numerals like "12" or "0.5", the binary
// operators "+", "-", "*", and "/", and the brackets "(" and ")". Valid checks
// that an expression is well-formed, and Evaluate computes its value and
// renders it as a decimal numeral rounded half up to a fixed number of
// fractional digits. Because every intermediate value is an exact fraction,
// "1 / 3 * 3" is exactly 1.
//
// Compose turns typed text into tokens the way a desk calculator's keypad
// would, including implicit multiplication before and after brackets.
//
// Every function in the package is safe to call concurrently.
package calc
