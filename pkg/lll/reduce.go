package lll

import (
	"errors"
	"fmt"

	"github.com/dshills/dungeon-cracker/pkg/bigrat"
	"github.com/dshills/dungeon-cracker/pkg/latticemath"
)

// Delta is the standard LLL reduction parameter, 3/4.
var Delta = bigrat.NewRational(3, 4)

// ErrDegenerateLattice is returned when the input basis rows are linearly
// dependent: Gram-Schmidt orthogonalization produces a zero row, and no
// amount of reduction can fix a lattice that isn't full rank.
var ErrDegenerateLattice = errors.New("lll: degenerate lattice: linearly dependent basis rows")

// half is used to implement the "round half up via floor(mu + 1/2)"
// size-reduction step specified for this algorithm.
var half = bigrat.NewRational(1, 2)

// Reduce performs LLL reduction on basis (a square matrix: n rows spanning
// an n-dimensional lattice) and returns a new, reduced basis satisfying:
//
//   - size reduction: |mu[i][j]| <= 1/2 for all i > j
//   - the Lovasz condition with delta = 3/4
//
// basis is not mutated. The returned lattice is identical to the input
// lattice (same set of integer combinations); see SameLattice to verify.
//
// Reduce is total: it terminates for any input basis of linearly
// independent rows. A basis with dependent rows is reported via
// ErrDegenerateLattice.
func Reduce(basis *latticemath.Matrix) (*latticemath.Matrix, error) {
	n := basis.Rows()
	if n != basis.Cols() {
		return nil, fmt.Errorf("lll: reduce requires a square basis, got %d rows x %d cols", n, basis.Cols())
	}
	if n <= 1 {
		return basis.Clone(), nil
	}

	b := basis.Clone()
	gs := latticemath.GramSchmidt(b)
	if err := checkDegenerate(gs, n); err != nil {
		return nil, err
	}

	k := 1
	for k < n {
		sizeReduceRow(b, gs, k)

		bStarK := gs.BStar.Row(k).NormSquared()
		bStarKm1 := gs.BStar.Row(k - 1).NormSquared()
		muKKm1 := gs.Mu[k][k-1]
		rhs := Delta.Sub(muKKm1.Mul(muKKm1)).Mul(bStarKm1)

		if bStarK.Cmp(rhs) >= 0 {
			k++
			continue
		}

		b.SwapRows(k, k-1)
		gs = latticemath.GramSchmidt(b)
		if err := checkDegenerate(gs, n); err != nil {
			return nil, err
		}
		if k-1 > 1 {
			k--
		} else {
			k = 1
		}
	}

	return b, nil
}

// sizeReduceRow reduces b's row k against rows k-1 ... 0, updating gs.Mu's
// row k in place as it goes. Gram-Schmidt orthogonalized vectors (gs.BStar)
// are mathematically invariant under this operation, so they are left
// untouched: only the basis b and the affected row of mu change.
func sizeReduceRow(b *latticemath.Matrix, gs *latticemath.GramSchmidtResult, k int) {
	mu := gs.Mu
	for j := k - 1; j >= 0; j-- {
		q := mu[k][j].Add(half).Floor()
		if q.Sign() == 0 {
			continue
		}
		qr := bigrat.FromInt(q)
		b.AddRowScaled(k, j, qr.Neg())
		for l := 0; l <= j; l++ {
			muJl := bigrat.One()
			if l != j {
				muJl = mu[j][l]
			}
			mu[k][l] = mu[k][l].Sub(qr.Mul(muJl))
		}
	}
}

func checkDegenerate(gs *latticemath.GramSchmidtResult, n int) error {
	for i := 0; i < n; i++ {
		if gs.BStar.Row(i).IsZero() {
			return ErrDegenerateLattice
		}
	}
	return nil
}

// IsSizeReduced reports whether |mu[i][j]| <= 1/2 for every i > j.
func IsSizeReduced(mu [][]*bigrat.Rational) bool {
	n := len(mu)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			abs := mu[i][j]
			if abs.Sign() < 0 {
				abs = abs.Neg()
			}
			if abs.Cmp(half) > 0 {
				return false
			}
		}
	}
	return true
}

// SatisfiesLovasz reports whether the Lovasz condition holds between every
// adjacent pair of rows of the Gram-Schmidt result, for the given delta.
func SatisfiesLovasz(gs *latticemath.GramSchmidtResult, delta *bigrat.Rational) bool {
	n := gs.BStar.Rows()
	for i := 0; i+1 < n; i++ {
		bNext := gs.BStar.Row(i + 1).NormSquared()
		bCur := gs.BStar.Row(i).NormSquared()
		mu := gs.Mu[i+1][i]
		rhs := delta.Sub(mu.Mul(mu)).Mul(bCur)
		if bNext.Cmp(rhs) < 0 {
			return false
		}
	}
	return true
}

// IsReduced reports whether basis is simultaneously size-reduced and
// Lovasz-reduced for the given delta.
func IsReduced(basis *latticemath.Matrix, delta *bigrat.Rational) bool {
	gs := latticemath.GramSchmidt(basis)
	return IsSizeReduced(gs.Mu) && SatisfiesLovasz(gs, delta)
}

// SameLattice reports whether a and b (both square, full rank) span the
// same lattice: each row of a must be an integer combination of b's rows
// and vice versa. This is done by computing the (rational) change-of-basis
// matrix X = a * b^-1 and Y = b * a^-1 and checking every entry of both is
// an integer.
func SameLattice(a, b *latticemath.Matrix) (bool, error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, fmt.Errorf("lll: SameLattice requires equal-shaped matrices")
	}

	// Two bases spanning the same lattice have the same covolume up to
	// sign; a mismatched |determinant| rules out the expensive
	// inverse-and-multiply check below without running it.
	detA, err := a.Determinant()
	if err != nil {
		return false, fmt.Errorf("lll: SameLattice: %w", err)
	}
	detB, err := b.Determinant()
	if err != nil {
		return false, fmt.Errorf("lll: SameLattice: %w", err)
	}
	if absRational(detA).Cmp(absRational(detB)) != 0 {
		return false, nil
	}

	bInv, err := b.Inverse()
	if err != nil {
		return false, fmt.Errorf("lll: SameLattice: %w", err)
	}
	aInv, err := a.Inverse()
	if err != nil {
		return false, fmt.Errorf("lll: SameLattice: %w", err)
	}

	x := latticemath.Multiply(a, bInv)
	y := latticemath.Multiply(b, aInv)
	return isIntegerMatrix(x) && isIntegerMatrix(y), nil
}

func absRational(r *bigrat.Rational) *bigrat.Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

func isIntegerMatrix(m *latticemath.Matrix) bool {
	one := bigrat.NewInt(1)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if m.At(i, j).Denom().Cmp(one) != 0 {
				return false
			}
		}
	}
	return true
}
