package reverser

import (
	"fmt"
	"sort"

	"github.com/dshills/dungeon-cracker/pkg/bigrat"
	"github.com/dshills/dungeon-cracker/pkg/constraints"
	"github.com/dshills/dungeon-cracker/pkg/floor"
	"github.com/dshills/dungeon-cracker/pkg/lcg"
	"github.com/dshills/dungeon-cracker/pkg/latticemath"
	"github.com/dshills/dungeon-cracker/pkg/lll"
	"github.com/dshills/dungeon-cracker/pkg/placement"
)

// Prepared is the deterministic, side-effect-free output of Prepare: the
// reduced lattice plus enough metadata to drive CrackPartial without
// rebuilding anything. It is safe to reuse across any number of
// CrackPartial calls, including concurrently.
type Prepared struct {
	System        *constraints.System
	TotalBranches int
	Dimensions    int
	InfoBits      int
	Possibilities *bigrat.Int

	obs     *floor.Observation
	lattice *latticemath.Matrix
	gs      *latticemath.GramSchmidtResult
	target  latticemath.Vector
	bounds  []halfWidth

	budgetSq   *bigrat.Rational
	rootCenter *bigrat.Rational
	rootNormSq *bigrat.Rational
	rootLo     *bigrat.Int
}

// Prepare builds obs/sys's lattice, reduces it, and computes the
// root-level branch count, without enumerating any candidates. It is
// deterministic: repeated calls with identical inputs return identical
// branch counts.
//
// The root level (the outermost Gram-Schmidt coordinate, index dim-1) is
// the one branch range CrackPartial splits across external callers;
// every level below it is fully depth-first searched inside a single
// CrackPartial call, so two candidates sharing a root coefficient but
// differing at an inner coordinate are both still found.
func Prepare(obs *floor.Observation, sys *constraints.System) (*Prepared, error) {
	if sys.Infeasible {
		return &Prepared{System: sys, obs: obs, Possibilities: bigrat.NewInt(0)}, nil
	}

	basis, target, bounds := buildLattice(sys)

	reduced, err := lll.Reduce(basis)
	if err != nil {
		return nil, fmt.Errorf("reverser: %w", err)
	}
	gs := latticemath.GramSchmidt(reduced)
	dim := reduced.Rows()

	budgetSq := bigrat.Zero()
	for _, b := range bounds {
		budgetSq = budgetSq.Add(b.half.Mul(b.half))
	}

	rootK := dim - 1
	bStarRoot := gs.BStar.Row(rootK)
	rootNormSq := bStarRoot.NormSquared()
	var rootCenter *bigrat.Rational
	if rootNormSq.Sign() <= 0 {
		rootCenter = bigrat.Zero()
	} else {
		rootCenter = target.Dot(bStarRoot).Div(rootNormSq)
	}
	rootLo, rootHi, ok := integerRangeWithinBudget(rootCenter, rootNormSq, budgetSq)
	totalBranches := 0
	if ok {
		totalBranches = branchCount(rootLo, rootHi)
	}

	infoBits := sys.InfoBits()

	return &Prepared{
		System:        sys,
		TotalBranches: totalBranches,
		Dimensions:    dim,
		InfoBits:      infoBits,
		Possibilities: possibilitiesFor(infoBits),
		obs:           obs,
		lattice:       reduced,
		gs:            gs,
		target:        target,
		bounds:        bounds,
		budgetSq:      budgetSq,
		rootCenter:    rootCenter,
		rootNormSq:    rootNormSq,
		rootLo:        rootLo,
	}, nil
}

// Result holds the dungeon seeds one crack call recovered.
type Result struct {
	DungeonSeeds []uint64
}

// CrackPartial enumerates the half-open branch interval [branchStart,
// branchEnd) of p and returns every candidate dungeon seed that survives
// forward-replay verification. Branch indices outside [0, p.TotalBranches]
// are clamped rather than rejected, so external workers never need to
// special-case the boundary.
func CrackPartial(p *Prepared, branchStart, branchEnd int) (*Result, error) {
	if p.TotalBranches == 0 {
		return &Result{}, nil
	}
	if branchStart < 0 {
		branchStart = 0
	}
	if branchEnd > p.TotalBranches {
		branchEnd = p.TotalBranches
	}
	if branchStart >= branchEnd {
		return &Result{}, nil
	}

	placer := placement.Get(p.System.Version)
	if placer == nil {
		return nil, fmt.Errorf("reverser: unsupported version %q", p.System.Version)
	}

	seen := make(map[uint64]bool)
	var seeds []uint64

	rootK := p.Dimensions - 1
	rootRow := p.lattice.Row(rootK)

	emit := func(v latticemath.Vector) {
		if !withinBounds(v, p.target, p.bounds) {
			return
		}
		s0, ok := candidateSeed(v[0])
		if !ok || seen[s0] {
			return
		}
		seen[s0] = true

		replayed, size, err := placer.Forward(s0)
		if err != nil || size != p.obs.Size {
			return
		}
		if !satisfiesDisequalities(replayed, p.System) {
			return
		}
		if !matchesObservation(replayed, p.obs) {
			return
		}
		seeds = append(seeds, s0)
	}

	for branch := branchStart; branch < branchEnd; branch++ {
		c := new(bigrat.Int).Add(p.rootLo, bigrat.NewInt(int64(branch)))
		diff := bigrat.FromInt(c).Sub(p.rootCenter)
		cost := diff.Mul(diff).Mul(p.rootNormSq)
		residual := p.target.Sub(rootRow.Scale(bigrat.FromInt(c)))
		searchLevel(p.lattice, p.gs, p.target, p.budgetSq, rootK-1, residual, cost, emit)
	}

	sort.Slice(seeds, func(i, j int) bool { return seeds[i] < seeds[j] })
	return &Result{DungeonSeeds: seeds}, nil
}

// Crack enumerates every branch: equivalent to
// CrackPartial(p, 0, p.TotalBranches).
func Crack(p *Prepared) (*Result, error) {
	return CrackPartial(p, 0, p.TotalBranches)
}

func withinBounds(v, target latticemath.Vector, bounds []halfWidth) bool {
	for i, b := range bounds {
		diff := v[i+1].Sub(target[i+1])
		if diff.Sign() < 0 {
			diff = diff.Neg()
		}
		if diff.Cmp(b.half) > 0 {
			return false
		}
	}
	return true
}

func candidateSeed(x *bigrat.Rational) (uint64, bool) {
	if x.Denom().Cmp(bigrat.NewInt(1)) != 0 {
		return 0, false
	}
	n := new(bigrat.Int).Mod(x.Num(), modulus2to48)
	return n.Uint64(), true
}

// matchesObservation reports whether replayed agrees with original on
// every informative cell: an exact tile match, except unknown-solid
// cells which only require "not air". Air cells are skipped here: they
// are checked separately by satisfiesDisequalities, since an observed
// air tile is a disequality rather than a residue to match exactly.
func matchesObservation(replayed, original *floor.Observation) bool {
	for row := 0; row < floor.GridDim; row++ {
		for col := 0; col < floor.GridDim; col++ {
			if !original.IsInformativeAt(col, row) {
				continue
			}
			want := original.At(col, row)
			if want == floor.TileAir {
				continue
			}
			got := replayed.At(col, row)
			if want == floor.TileUnknownSolid {
				if !got.IsStoneObserved() {
					return false
				}
				continue
			}
			if got != want {
				return false
			}
		}
	}
	return true
}

// satisfiesDisequalities reports whether replayed keeps every air cell
// sys recorded as a disequality: a candidate seed is rejected unless
// every coordinate observed as air also replays as air.
func satisfiesDisequalities(replayed *floor.Observation, sys *constraints.System) bool {
	for _, d := range sys.Disequalities {
		if replayed.At(d.Coord.Col, d.Coord.Row) != floor.TileAir {
			return false
		}
	}
	return true
}

func possibilitiesFor(infoBits int) *bigrat.Int {
	if infoBits >= lcg.Bits {
		return bigrat.NewInt(1)
	}
	return new(bigrat.Int).Lsh(bigrat.NewInt(1), uint(lcg.Bits-infoBits))
}
