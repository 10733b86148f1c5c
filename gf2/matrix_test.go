package gf2

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	m := NewZeroMatrix(2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, 0, m.At(i, j))
		}
	}

	m = NewMatrixFromSlice(2, 3, []int{0, 1, 0, 1, 0, 1})
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, (i+j)%2, m.At(i, j))
		}
	}

	m = NewMatrixFromFunction(2, 3, func(i, j int) int {
		return (i + j) % 2
	})
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, (i+j)%2, m.At(i, j))
		}
	}
}

func TestMatrixTimes(t *testing.T) {
	m := NewMatrixFromSlice(2, 3, []int{
		1, 0, 1,
		1, 1, 1,
	})
	n := NewMatrixFromSlice(3, 2, []int{
		1, 1,
		0, 1,
		1, 1,
	})

	// Row 0: (1+0+1, 1+0+1) = (2, 2) = (0, 0) mod 2.
	// Row 1: (1+0+1, 1+1+1) = (2, 3) = (0, 1) mod 2.
	expectedProd := NewMatrixFromSlice(2, 2, []int{
		0, 0,
		0, 1,
	})

	prod := m.Times(n)
	require.Equal(t, expectedProd, prod)
}

func TestMatrixTimesIdentity(t *testing.T) {
	m := NewMatrixFromFunction(4, 4, func(i, j int) int {
		return (i*3 + j*5) % 2
	})
	identity := NewIdentityMatrix(4)
	require.Equal(t, m, m.Times(identity))
	require.Equal(t, m, identity.Times(m))
}

func TestMatrixTimesDimensionMismatch(t *testing.T) {
	m := NewZeroMatrix(2, 3)
	n := NewZeroMatrix(2, 3)
	require.PanicsWithValue(t, ErrDimensionMismatch, func() {
		m.Times(n)
	})
}

func TestMatrixTimesReduces(t *testing.T) {
	// Unreduced inputs still produce elements in {0, 1}.
	m := NewMatrixFromSlice(2, 2, []int{
		3, 4,
		5, 6,
	})
	prod := m.Times(m)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			e := prod.At(i, j)
			require.True(t, e == 0 || e == 1, "i=%d, j=%d, e=%d", i, j, e)
		}
	}
	require.Equal(t, m.Reduce().Times(m.Reduce()), prod)
}

func TestReduceIdempotent(t *testing.T) {
	m := NewMatrixFromFunction(5, 4, func(i, j int) int {
		return i*7 + j*13
	})
	once := m.Reduce()
	require.Equal(t, once, once.Reduce())
}

func TestTranspose(t *testing.T) {
	m := NewMatrixFromSlice(2, 3, []int{
		1, 0, 1,
		0, 1, 1,
	})
	expected := NewMatrixFromSlice(3, 2, []int{
		1, 0,
		0, 1,
		1, 1,
	})
	require.Equal(t, expected, m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())
}

func TestPowZero(t *testing.T) {
	m := NewMatrixFromSlice(3, 3, []int{
		0, 1, 0,
		0, 0, 1,
		1, 1, 0,
	})
	require.Equal(t, NewIdentityMatrix(3), m.Pow(big.NewInt(0)))
}

func TestPowMatchesRepeatedTimes(t *testing.T) {
	m := NewMatrixFromSlice(3, 3, []int{
		0, 1, 0,
		0, 0, 1,
		1, 1, 0,
	})
	expected := NewIdentityMatrix(3)
	for k := 0; k <= 16; k++ {
		require.Equal(t, expected, m.Pow(big.NewInt(int64(k))), "k=%d", k)
		expected = expected.Times(m)
	}
}

func TestPowAdditive(t *testing.T) {
	m := NewMatrixFromSlice(4, 4, []int{
		1, 1, 0, 0,
		0, 0, 1, 0,
		1, 0, 0, 1,
		0, 1, 0, 0,
	})
	for a := int64(0); a < 12; a++ {
		for b := int64(0); b < 12; b++ {
			lhs := m.Pow(big.NewInt(a)).Times(m.Pow(big.NewInt(b)))
			rhs := m.Pow(big.NewInt(a + b))
			require.Equal(t, rhs, lhs, "a=%d, b=%d", a, b)
		}
	}
}

func TestPowNonSquare(t *testing.T) {
	m := NewZeroMatrix(2, 3)
	require.PanicsWithValue(t, ErrDimensionMismatch, func() {
		m.Pow(big.NewInt(1))
	})
}

func TestEquals(t *testing.T) {
	m := NewMatrixFromSlice(2, 2, []int{1, 0, 0, 1})
	require.True(t, m.Equals(NewIdentityMatrix(2)))
	require.False(t, m.Equals(NewZeroMatrix(2, 2)))
	require.False(t, m.Equals(NewZeroMatrix(2, 3)))
}
