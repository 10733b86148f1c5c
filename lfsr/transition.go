package lfsr

import (
	"math/big"

	"github.com/pshatov/lfsr-template/gf2"
)

// TransitionMatrix returns the width x width GF(2) matrix that
// advances a state row vector by one clock step in the given feedback
// mode.
//
// In Fibonacci mode this is the companion matrix of the feedback
// polynomial: row 0 is the tap vector, so the new bit 0 is the GF(2)
// sum of the tapped current bits, and each row i+1 has a single 1 in
// column i, shifting every other bit up by one.
func TransitionMatrix(mode FeedbackMode, poly gf2.Matrix, width int) (gf2.Matrix, error) {
	switch mode {
	case Fibonacci:
		return gf2.NewMatrixFromFunction(width, width, func(i, j int) int {
			if i == 0 {
				return poly.At(0, j)
			}
			if j == i-1 {
				return 1
			}
			return 0
		}), nil
	case Galois:
		return gf2.Matrix{}, NotImplementedError{Op: "transition matrix"}
	default:
		panic("unknown feedback mode")
	}
}

// Advance fast-forwards a 1 x width state row vector by the given
// non-negative number of clock steps: it raises the transition matrix
// to that power, applies it to the state as a column vector, and
// returns the result as a row vector. Zero steps returns the state
// unchanged.
func Advance(matrix, state gf2.Matrix, steps *big.Int) gf2.Matrix {
	last := matrix.Pow(steps).Times(state.Transpose())
	return last.Transpose()
}

// FastForward builds the transition matrix for the given mode and
// polynomial and advances state by the given number of steps.
func FastForward(mode FeedbackMode, poly gf2.Matrix, width int, state gf2.Matrix, steps *big.Int) (gf2.Matrix, error) {
	matrix, err := TransitionMatrix(mode, poly, width)
	if err != nil {
		return gf2.Matrix{}, err
	}
	return Advance(matrix, state, steps), nil
}
