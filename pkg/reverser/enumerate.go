package reverser

import (
	"github.com/dshills/dungeon-cracker/pkg/bigrat"
	"github.com/dshills/dungeon-cracker/pkg/latticemath"
)

// levelSearchCap bounds how far integerRangeWithinBudget expands a
// per-level interval before giving up: a defensive limit against a
// pathologically loose basis. A basis LLL-reduced by pkg/lll never comes
// close to it in practice; reduction is what keeps every level's feasible
// interval to a handful of integers.
const levelSearchCap = 1 << 12

// integerRangeWithinBudget returns the inclusive range of integers c
// satisfying (c-center)^2 * normSq <= budgetSq: the feasible interval one
// level of the depth-first search branches over. ok is false when even
// the integer nearest center falls outside the budget, meaning this
// branch of the search tree contains no solutions.
func integerRangeWithinBudget(center, normSq, budgetSq *bigrat.Rational) (lo, hi *bigrat.Int, ok bool) {
	if budgetSq.Sign() < 0 {
		return nil, nil, false
	}
	if normSq.Sign() <= 0 {
		c := center.RoundEven()
		return c, c, true
	}

	feasible := func(c *bigrat.Int) bool {
		diff := bigrat.FromInt(c).Sub(center)
		return diff.Mul(diff).Mul(normSq).Cmp(budgetSq) <= 0
	}

	base := center.RoundEven()
	if !feasible(base) {
		return nil, nil, false
	}

	lo, hi = base, base
	for d := 1; d < levelSearchCap; d++ {
		delta := bigrat.NewInt(int64(d))
		grew := false
		if up := new(bigrat.Int).Add(base, delta); feasible(up) {
			hi = up
			grew = true
		}
		if down := new(bigrat.Int).Sub(base, delta); feasible(down) {
			lo = down
			grew = true
		}
		if !grew {
			break
		}
	}
	return lo, hi, true
}

// branchCount returns hi-lo+1 as an int.
func branchCount(lo, hi *bigrat.Int) int {
	diff := new(bigrat.Int).Sub(hi, lo)
	diff.Add(diff, bigrat.NewInt(1))
	return int(diff.Int64())
}

// searchLevel depth-first traverses the reduced basis from level k down to
// 0. At each level it computes the feasible interval of integer
// coordinates given how much of the total error budget the levels above
// it already spent (integerRangeWithinBudget), and recurses into every
// coordinate in that interval. Once k drops below 0, every coordinate has
// been chosen and emit is called with the resulting lattice point.
//
// Two candidates that agree at the outermost (root) level but differ at
// any inner level both reach emit: unlike a single Babai nearest-plane
// descent, this does not collapse the inner levels to one rounded choice.
func searchLevel(
	basis *latticemath.Matrix,
	gs *latticemath.GramSchmidtResult,
	target latticemath.Vector,
	budgetSq *bigrat.Rational,
	k int,
	residual latticemath.Vector,
	spentSq *bigrat.Rational,
	emit func(latticemath.Vector),
) {
	if k < 0 {
		emit(target.Sub(residual))
		return
	}

	bStarK := gs.BStar.Row(k)
	normK := bStarK.NormSquared()
	var centerK *bigrat.Rational
	if normK.Sign() <= 0 {
		centerK = bigrat.Zero()
	} else {
		centerK = residual.Dot(bStarK).Div(normK)
	}

	remaining := budgetSq.Sub(spentSq)
	lo, hi, ok := integerRangeWithinBudget(centerK, normK, remaining)
	if !ok {
		return
	}

	row := basis.Row(k)
	one := bigrat.NewInt(1)
	for c := bigrat.CloneInt(lo); c.Cmp(hi) <= 0; c = new(bigrat.Int).Add(c, one) {
		diff := bigrat.FromInt(c).Sub(centerK)
		cost := diff.Mul(diff).Mul(normK)
		nextResidual := residual.Sub(row.Scale(bigrat.FromInt(c)))
		searchLevel(basis, gs, target, budgetSq, k-1, nextResidual, spentSq.Add(cost), emit)
	}
}
