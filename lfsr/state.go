package lfsr

import (
	"math/big"

	"github.com/pshatov/lfsr-template/gf2"
)

// MinWidth is the smallest supported register width.
const MinWidth = 3

// Period returns 2^width - 1, the maximum possible cycle length of a
// width-bit LFSR.
func Period(width int) *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return p.Sub(p, big.NewInt(1))
}

// RowFromInt unpacks a value into a 1 x width row vector with bit i
// in column i. Both polynomials and states use this layout.
func RowFromInt(value *big.Int, width int) gf2.Matrix {
	return gf2.NewMatrixFromFunction(1, width, func(_, j int) int {
		return int(value.Bit(j))
	})
}

// RowToInt packs a 1 x width row vector back into an integer.
func RowToInt(row gf2.Matrix) *big.Int {
	value := new(big.Int)
	for j := 0; j < row.Columns(); j++ {
		if row.At(0, j) != 0 {
			value.SetBit(value, j, 1)
		}
	}
	return value
}
