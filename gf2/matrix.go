package gf2

import (
	"errors"
	"math/big"
)

// ErrDimensionMismatch is the panic value for matrix operations
// called with incompatible dimensions. A dimension mismatch is a
// programming defect, never an input error, so it is treated as a
// fatal assertion.
var ErrDimensionMismatch = errors.New("gf2: mismatched dimensions")

// Matrix is an immutable rectangular array of elements of GF(2). It
// has just enough methods to support LFSR transition-matrix algebra.
//
// Elements are stored as ints so that constructors may be handed
// unreduced values; every arithmetic method reduces its result modulo
// 2 before returning, so elements of a computed Matrix are always 0
// or 1.
type Matrix struct {
	rows, columns int
	// Elements are stored in row-major order.
	elements []int
}

func checkRowColumnCount(rows, columns int) {
	if rows <= 0 {
		panic("invalid row count")
	}
	if columns <= 0 {
		panic("invalid column count")
	}
}

// ReduceElement returns value reduced modulo 2.
func ReduceElement(value int) int {
	return value & 1
}

// NewZeroMatrix returns a rows x columns matrix with every element
// being zero.
func NewZeroMatrix(rows, columns int) Matrix {
	checkRowColumnCount(rows, columns)
	return Matrix{rows, columns, make([]int, rows*columns)}
}

// NewMatrixFromSlice returns a rows x columns matrix with elements
// taken from the given array in row-major order.
func NewMatrixFromSlice(rows, columns int, elements []int) Matrix {
	checkRowColumnCount(rows, columns)
	if len(elements) != rows*columns {
		panic("element count is not rows*columns")
	}
	elementsCopy := make([]int, len(elements))
	copy(elementsCopy, elements)
	return Matrix{rows, columns, elementsCopy}
}

// NewMatrixFromFunction returns a rows x columns matrix with elements
// filled in from the given function, which is passed the row index
// and the column index, and shouldn't rely on any particular call
// ordering.
func NewMatrixFromFunction(rows, columns int, fn func(int, int) int) Matrix {
	checkRowColumnCount(rows, columns)
	elements := make([]int, rows*columns)
	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			elements[i*columns+j] = fn(i, j)
		}
	}
	return NewMatrixFromSlice(rows, columns, elements)
}

// NewIdentityMatrix returns an n x n identity matrix.
func NewIdentityMatrix(n int) Matrix {
	return NewMatrixFromFunction(n, n, func(i, j int) int {
		if i == j {
			return 1
		}
		return 0
	})
}

// Rows returns the row count of m.
func (m Matrix) Rows() int { return m.rows }

// Columns returns the column count of m.
func (m Matrix) Columns() int { return m.columns }

func (m Matrix) checkRowIndex(i int) {
	if i < 0 || i >= m.rows {
		panic("row index out of bounds")
	}
}

func (m Matrix) checkColumnIndex(i int) {
	if i < 0 || i >= m.columns {
		panic("column index out of bounds")
	}
}

// At returns the element at row index i and column index j.
func (m Matrix) At(i, j int) int {
	m.checkRowIndex(i)
	m.checkColumnIndex(j)
	return m.elements[i*m.columns+j]
}

// Reduce returns m with every element reduced modulo 2.
func (m Matrix) Reduce() Matrix {
	return NewMatrixFromFunction(m.rows, m.columns, func(i, j int) int {
		return ReduceElement(m.At(i, j))
	})
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	return NewMatrixFromFunction(m.columns, m.rows, func(i, j int) int {
		return m.At(j, i)
	})
}

// Times returns the matrix product of m with n over GF(2), which must
// have compatible dimensions: the standard integer matrix product
// with every element reduced modulo 2.
func (m Matrix) Times(n Matrix) Matrix {
	if m.columns != n.rows {
		panic(ErrDimensionMismatch)
	}

	return NewMatrixFromFunction(m.rows, n.columns, func(i, j int) int {
		sum := 0
		for k := 0; k < m.columns; k++ {
			sum += m.At(i, k) * n.At(k, j)
		}
		return ReduceElement(sum)
	})
}

// Pow returns m, which must be square, raised to the given
// non-negative power over GF(2). It uses binary (square-and-multiply)
// exponentiation, scanning the exponent's bits from least
// significant: a set bit multiplies the accumulator by the current
// base, and the base is squared before each next bit. This takes
// O(exponent.BitLen()) matrix multiplications, so exponents up to
// 2^width - 1 stay tractable. The zero exponent yields the identity.
func (m Matrix) Pow(exponent *big.Int) Matrix {
	if m.rows != m.columns {
		panic(ErrDimensionMismatch)
	}
	if exponent.Sign() < 0 {
		panic("negative exponent")
	}

	result := NewIdentityMatrix(m.rows)
	base := m.Reduce()
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) != 0 {
			result = result.Times(base)
		}
		base = base.Times(base)
	}
	return result
}

// Equals reports whether m and n have the same dimensions and equal
// elements.
func (m Matrix) Equals(n Matrix) bool {
	if m.rows != n.rows || m.columns != n.columns {
		return false
	}
	for i, e := range m.elements {
		if e != n.elements[i] {
			return false
		}
	}
	return true
}
