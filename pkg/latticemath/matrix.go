package latticemath

import (
	"fmt"

	"github.com/dshills/dungeon-cracker/pkg/bigrat"
)

// Matrix is a dense, row-major matrix of exact rationals. Rows are
// addressable as Vectors; row operations mutate in place, which is the
// shape the LLL reducer needs (it rewrites its basis row by row).
type Matrix struct {
	rows [][]*bigrat.Rational
	cols int
}

// NewMatrix returns an r x c zero matrix.
func NewMatrix(r, c int) *Matrix {
	m := &Matrix{rows: make([][]*bigrat.Rational, r), cols: c}
	for i := range m.rows {
		m.rows[i] = make([]*bigrat.Rational, c)
		for j := range m.rows[i] {
			m.rows[i][j] = bigrat.Zero()
		}
	}
	return m
}

// NewMatrixFromInts builds a matrix from a rectangular slice of int64
// coefficients, one row per basis vector. Every row must have the same
// length.
func NewMatrixFromInts(rows [][]int64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("latticemath: matrix must have at least one row")
	}
	c := len(rows[0])
	m := NewMatrix(len(rows), c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("latticemath: row %d has length %d, want %d", i, len(row), c)
		}
		for j, v := range row {
			m.Set(i, j, bigrat.NewRational(v, 1))
		}
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the value at (i, j).
func (m *Matrix) At(i, j int) *bigrat.Rational { return m.rows[i][j] }

// Set assigns the value at (i, j).
func (m *Matrix) Set(i, j int, v *bigrat.Rational) { m.rows[i][j] = v }

// Row returns a clone of row i as a Vector, safe to mutate independently
// of the matrix.
func (m *Matrix) Row(i int) Vector {
	return Vector(m.rows[i]).Clone()
}

// SetRow overwrites row i with v. len(v) must equal m.Cols().
func (m *Matrix) SetRow(i int, v Vector) {
	if len(v) != m.cols {
		panic("latticemath: SetRow length mismatch")
	}
	m.rows[i] = []*bigrat.Rational(v.Clone())
}

// SwapRows exchanges rows i and j in place.
func (m *Matrix) SwapRows(i, j int) {
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
}

// AddRowScaled performs rows[dst] += scale * rows[src] in place.
func (m *Matrix) AddRowScaled(dst, src int, scale *bigrat.Rational) {
	scaled := Vector(m.rows[src]).Scale(scale)
	m.SetRow(dst, Vector(m.rows[dst]).Add(scaled))
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		out.SetRow(i, m.Row(i))
	}
	return out
}

// GramSchmidtResult holds the orthogonalized basis and the Gram-Schmidt
// coefficients computed from an (unreduced) lattice basis.
type GramSchmidtResult struct {
	// BStar holds the orthogonalized rows b*_0 ... b*_{n-1}.
	BStar *Matrix
	// Mu[i][j] = <b_i, b*_j> / <b*_j, b*_j>, defined for j < i; Mu[i][i] is
	// conventionally 1 and Mu[i][j] for j > i is left as zero.
	Mu [][]*bigrat.Rational
}

// GramSchmidt orthogonalizes the rows of b (without normalizing lengths)
// and returns both the orthogonalized basis and the projection
// coefficients mu. b is not mutated.
//
// Contract: rows of BStar are mutually orthogonal, and the original basis
// is recoverable as b_i = b*_i + sum_{j<i} mu[i][j] * b*_j.
func GramSchmidt(b *Matrix) *GramSchmidtResult {
	n := b.Rows()
	bStar := NewMatrix(n, b.Cols())
	mu := make([][]*bigrat.Rational, n)
	for i := range mu {
		mu[i] = make([]*bigrat.Rational, n)
		for j := range mu[i] {
			mu[i][j] = bigrat.Zero()
		}
		mu[i][i] = bigrat.One()
	}

	for i := 0; i < n; i++ {
		bi := b.Row(i)
		biStar := bi.Clone()
		for j := 0; j < i; j++ {
			bjStar := bStar.Row(j)
			denom := bjStar.NormSquared()
			var coeff *bigrat.Rational
			if denom.IsZero() {
				coeff = bigrat.Zero()
			} else {
				coeff = bi.Dot(bjStar).Div(denom)
			}
			mu[i][j] = coeff
			biStar = biStar.Sub(bjStar.Scale(coeff))
		}
		bStar.SetRow(i, biStar)
	}

	return &GramSchmidtResult{BStar: bStar, Mu: mu}
}
