// Package conv provides checked integer arithmetic for the regex engine.
//
// Every program counter and input offset in the pipeline is advanced through
// these helpers so that a counter never wraps silently. The arithmetic helpers
// report overflow to the caller, which maps it onto its own error kind. The
// narrowing helpers panic, since an out-of-range narrowing indicates a
// programming error rather than a property of the input.
package conv

import "math"

// Inc returns n+1. The second result is false if the increment would
// overflow int.
//
//go:inline
func Inc(n int) (int, bool) {
	if n == math.MaxInt {
		return n, false
	}
	return n + 1, true
}

// Add returns a+b for non-negative operands.
// The second result is false if either operand is negative or the sum
// would overflow int.
func Add(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return a, false
	}
	return a + b, true
}

// Mul returns a*b for non-negative operands.
// The second result is false if either operand is negative or the product
// would overflow int.
func Mul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
