package reverser

import (
	"math/big"

	"github.com/dshills/dungeon-cracker/pkg/bigrat"
	"github.com/dshills/dungeon-cracker/pkg/constraints"
	"github.com/dshills/dungeon-cracker/pkg/lcg"
	"github.com/dshills/dungeon-cracker/pkg/latticemath"
)

// modulus2to48 is 2^48, the LCG state modulus, as an exact integer.
var modulus2to48 = new(big.Int).Lsh(big.NewInt(1), lcg.Bits)

// halfWidth records, per equality row, how far a candidate lattice
// coordinate may stray from its centered target and still correspond to
// the observed residue.
type halfWidth struct {
	half *bigrat.Rational
}

// buildLattice constructs the (n+1)-dimensional integer lattice basis and
// centered target vector for sys's n equality rows.
//
// Row 0 is (1, a_1, ..., a_n): combining it with coefficient s0 tracks
// s0 itself in column 0 and its affine image a_i*s0 in column i. Row i
// (i=1..n) is -2^48 at column i, letting the reduction subtract away
// whole multiples of the LCG modulus from each call's affine image. A
// lattice point near the centered target therefore has, in column 0, a
// candidate initial state whose i-th call lands inside the residue
// interval the caller observed.
func buildLattice(sys *constraints.System) (*latticemath.Matrix, latticemath.Vector, []halfWidth) {
	eqs := sys.Equalities
	n := len(eqs)

	maxCall := 0
	for _, eq := range eqs {
		if eq.CallIndex+1 > maxCall {
			maxCall = eq.CallIndex + 1
		}
	}
	affine := lcg.PrecomputeAffine(maxCall)

	dim := n + 1
	basis := latticemath.NewMatrix(dim, dim)
	target := latticemath.NewVector(dim)
	bounds := make([]halfWidth, n)

	basis.Set(0, 0, bigrat.One())
	negM := new(big.Int).Neg(modulus2to48)

	for i, eq := range eqs {
		step := affine[eq.CallIndex+1]
		basis.Set(0, i+1, bigrat.FromInt(new(big.Int).SetUint64(step.A)))
		basis.Set(i+1, i+1, bigrat.FromInt(negM))

		width := new(big.Int).Div(modulus2to48, big.NewInt(int64(eq.Modulus)))
		half := new(big.Int).Rsh(width, 1)

		center := new(big.Int).Mul(big.NewInt(int64(eq.Residue)), width)
		center.Add(center, half)
		center.Sub(center, new(big.Int).SetUint64(step.C))
		center.Mod(center, modulus2to48)

		target[i+1] = bigrat.FromInt(center)
		bounds[i] = halfWidth{half: bigrat.FromInt(half)}
	}

	return basis, target, bounds
}
