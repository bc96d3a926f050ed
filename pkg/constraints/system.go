package constraints

import (
	"fmt"
	"sort"

	"github.com/dshills/dungeon-cracker/pkg/floor"
	"github.com/dshills/dungeon-cracker/pkg/placement"
)

// Row is one equality constraint: the call at CallIndex, reduced mod
// Modulus, must equal Residue.
type Row struct {
	CallIndex int
	Modulus   int
	Residue   int
}

// Disequality records an observed Air cell: the call at CallIndex (under
// Modulus) must NOT land on any residue this version's per-tile model
// maps to solid stone. Unlike a Row, this never contributes an equality
// to the lattice (air's raw output is an excluded interval, not a known
// residue); it is carried separately and checked post-hoc, during
// forward-replay verification, against the candidate it would have
// produced at Coord.
type Disequality struct {
	Coord     placement.Coord
	CallIndex int
	Modulus   int
}

// System is the full constraint system compiled from one floor
// observation: a set of equality rows and air disequalities, plus the
// version and declared size needed to re-derive call sites during
// reduction and verification.
type System struct {
	Version       placement.Version
	Size          floor.Size
	Equalities    []Row
	Disequalities []Disequality

	// Infeasible is set when an observed tile can never arise under this
	// version's per-tile model at all (not even as a disequality).
	// reverser.Prepare answers such a system with zero branches;
	// cracker.Prepare rejects it with a degenerate-lattice error.
	Infeasible       bool
	InfeasibleReason string
}

// Build compiles obs (already validated against size) into a System for
// version. The two room-size-selection calls are folded in as known
// equality constraints, since the caller's declared floor size is taken
// to be the room's actual generated size.
func Build(obs *floor.Observation, version placement.Version) (*System, error) {
	p := placement.Get(version)
	if p == nil {
		return nil, fmt.Errorf("constraints: unsupported version %q", version)
	}
	size := obs.Size
	if !sizeAllowed(p.FloorSizes(), size) {
		return nil, fmt.Errorf("constraints: floor size %s is not legal for version %s", size, version)
	}

	sys := &System{Version: version, Size: size}

	xLong := size.Cols == 9
	zLong := size.Rows == 9
	sizeCalls := p.SizeSelectionCalls()
	sys.Equalities = append(sys.Equalities,
		Row{CallIndex: sizeCalls[0].CallIndex, Modulus: sizeCalls[0].Modulus, Residue: placement.AxisResidue(xLong)},
		Row{CallIndex: sizeCalls[1].CallIndex, Modulus: sizeCalls[1].Modulus, Residue: placement.AxisResidue(zLong)},
	)

	sites := p.TileCallSites(size)
	for coord, site := range sites {
		if !obs.IsInformativeAt(coord.Col, coord.Row) {
			continue
		}
		tile := obs.At(coord.Col, coord.Row)
		if tile == floor.TileUnknownSolid {
			// "Solid, kind unspecified": verified post-hoc as "not air",
			// contributes no lattice row.
			continue
		}
		if tile == floor.TileAir {
			// The call is still consumed (its index still advances the
			// LCG), but air is never a known residue: it only forbids
			// this call from landing on whatever residue this version's
			// per-tile model maps to stone, checked during verification.
			sys.Disequalities = append(sys.Disequalities, Disequality{
				Coord: coord, CallIndex: site.CallIndex, Modulus: site.Modulus,
			})
			continue
		}

		residues := placement.ResiduesForTile(site.Modulus, tile)
		switch len(residues) {
		case 0:
			sys.Infeasible = true
			sys.InfeasibleReason = fmt.Sprintf(
				"tile %s at (%d,%d) cannot arise under version %s's modulus-%d placement call",
				tile, coord.Col, coord.Row, version, site.Modulus)
		case 1:
			sys.Equalities = append(sys.Equalities, Row{CallIndex: site.CallIndex, Modulus: site.Modulus, Residue: residues[0]})
		default:
			// Ambiguous residue (e.g. cobble under a modulus-4 version):
			// no lattice row, verified post-hoc by forward replay.
		}
	}

	sort.Slice(sys.Equalities, func(i, j int) bool { return sys.Equalities[i].CallIndex < sys.Equalities[j].CallIndex })
	sort.Slice(sys.Disequalities, func(i, j int) bool { return sys.Disequalities[i].CallIndex < sys.Disequalities[j].CallIndex })
	return sys, nil
}

// sizeAllowed reports whether size appears in legal.
func sizeAllowed(legal []floor.Size, size floor.Size) bool {
	for _, s := range legal {
		if s == size {
			return true
		}
	}
	return false
}

// InfoBits returns the number of bits of residue information the
// equality rows carry: the sum of log2(Modulus) over every row.
func (s *System) InfoBits() int {
	bits := 0
	for _, row := range s.Equalities {
		for m := row.Modulus; m > 1; m >>= 1 {
			bits++
		}
	}
	return bits
}
