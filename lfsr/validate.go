package lfsr

import (
	"math/big"

	"github.com/pshatov/lfsr-template/gf2"
)

// ValidatePolynomial checks the structural requirements on a feedback
// polynomial, given as a 1 x width row vector: the coefficient for
// the largest power of x must be present, and the number of feedback
// taps must be at least two and even. The returned error is nil or an
// InvalidPolynomialError naming the failed requirement.
func ValidatePolynomial(poly gf2.Matrix, width int) error {
	if poly.At(0, width-1) == 0 {
		return InvalidPolynomialError{
			Reason: "polynomial does not have nonzero coefficient for the largest power of x",
		}
	}

	taps := 0
	for j := 0; j < width; j++ {
		taps += poly.At(0, j)
	}
	if taps < 2 {
		return InvalidPolynomialError{
			Reason: "polynomial must have at least two feedback taps",
		}
	}
	if taps%2 != 0 {
		return InvalidPolynomialError{
			Reason: "polynomial must have an even number of feedback taps",
		}
	}

	return nil
}

// ValidateInitialState rejects the fixed-point state of the given
// feedback mode: all zeroes for Fibonacci, all ones for Galois. Any
// other width-bit value passes.
func ValidateInitialState(mode FeedbackMode, init *big.Int, width int) error {
	switch mode {
	case Fibonacci:
		if init.Sign() == 0 {
			return ProhibitedStateError{
				Mode:   Fibonacci,
				Reason: "all-zeroes state is prohibited in Fibonacci mode",
			}
		}
	case Galois:
		if init.Cmp(Period(width)) == 0 {
			return ProhibitedStateError{
				Mode:   Galois,
				Reason: "all-ones state is prohibited in Galois mode",
			}
		}
	default:
		panic("unknown feedback mode")
	}
	return nil
}
