package latticemath

import (
	"fmt"

	"github.com/dshills/dungeon-cracker/pkg/bigrat"
)

// Multiply returns a * b. Panics if the inner dimensions disagree.
func Multiply(a, b *Matrix) *Matrix {
	if a.Cols() != b.Rows() {
		panic("latticemath: multiply dimension mismatch")
	}
	out := NewMatrix(a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := bigrat.Zero()
			for k := 0; k < a.Cols(); k++ {
				sum = sum.Add(a.At(i, k).Mul(b.At(k, j)))
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// Determinant computes the determinant of a square matrix by Gaussian
// elimination over exact rationals (O(n^3), no floating point).
// Returns an error if m is not square.
func (m *Matrix) Determinant() (*bigrat.Rational, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("latticemath: determinant requires a square matrix, got %dx%d", n, m.Cols())
	}
	work := m.Clone()
	det := bigrat.One()

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if work.At(r, col).Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			return bigrat.Zero(), nil
		}
		if pivotRow != col {
			work.SwapRows(pivotRow, col)
			det = det.Neg()
		}
		pivot := work.At(col, col)
		det = det.Mul(pivot)
		for r := col + 1; r < n; r++ {
			factor := work.At(r, col).Div(pivot)
			if factor.Sign() != 0 {
				work.AddRowScaled(r, col, factor.Neg())
			}
		}
	}
	return det, nil
}

// Inverse computes the matrix inverse by Gauss-Jordan elimination over
// exact rationals. Returns an error if m is not square or is singular.
func (m *Matrix) Inverse() (*Matrix, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("latticemath: inverse requires a square matrix, got %dx%d", n, m.Cols())
	}

	work := m.Clone()
	inv := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		inv.Set(i, i, bigrat.One())
	}

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if work.At(r, col).Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			return nil, fmt.Errorf("latticemath: matrix is singular, cannot invert")
		}
		if pivotRow != col {
			work.SwapRows(pivotRow, col)
			inv.SwapRows(pivotRow, col)
		}

		pivot := work.At(col, col)
		invPivot := bigrat.One().Div(pivot)
		for c := 0; c < n; c++ {
			work.Set(col, c, work.At(col, c).Mul(invPivot))
			inv.Set(col, c, inv.At(col, c).Mul(invPivot))
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := work.At(r, col)
			if factor.Sign() == 0 {
				continue
			}
			neg := factor.Neg()
			work.AddRowScaled(r, col, neg)
			inv.AddRowScaled(r, col, neg)
		}
	}
	return inv, nil
}
