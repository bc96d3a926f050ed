package placement

import (
	"fmt"

	"github.com/dshills/dungeon-cracker/pkg/floor"
	"github.com/dshills/dungeon-cracker/pkg/lcg"
)

// Placement replays one version's dungeon floor placement routine: the
// room-size selection calls followed by the per-tile calls, in that
// version's call order.
type Placement interface {
	Version() Version

	// TileModulus is the nextInt bound every per-tile call uses: 4 for the
	// legacy versions (1.8-1.12), 2 for the modern ones (1.13-1.17).
	TileModulus() int

	// DecorationSalt is the number of extra LCG steps this version's chunk
	// decorator takes between seeding and the first dungeon feature call,
	// used by pkg/seedlift when lifting between seed layers.
	DecorationSalt() int

	// SizeSelectionCalls returns the two nextInt(2) calls, in call order,
	// that choose the X-axis and Z-axis room extents.
	SizeSelectionCalls() [2]CallSite

	// TileCallSites maps every full-grid coordinate inside size's room
	// rectangle to the CallSite that placed it.
	TileCallSites(size floor.Size) map[Coord]CallSite

	// FloorSizes returns the floor sizes this version can legally
	// generate: only 9x9 for the legacy versions (1.8-1.12), all four for
	// 1.13 and later, matching the game's own dungeon-size history.
	FloorSizes() []floor.Size

	// Forward replays the full placement routine from a dungeon seed,
	// returning the resulting tile grid and the room size the seed
	// produced.
	Forward(seed uint64) (*floor.Observation, floor.Size, error)
}

// allFloorSizes and legacyFloorSizes are the two legal-size sets a
// version's FloorSizes can return.
var (
	allFloorSizes    = []floor.Size{floor.Size9x9, floor.Size7x9, floor.Size9x7, floor.Size7x7}
	legacyFloorSizes = []floor.Size{floor.Size9x9}
)

// era holds the per-version placement parameters: every version's
// placement is one era value rather than its own procedure.
type era struct {
	version        Version
	tileModulus    int
	order          IterationOrder
	decorationSalt int
	// legacySizeOnly versions only ever generated the 9x9 floor; the
	// smaller room footprints were introduced starting with 1.13.
	legacySizeOnly bool
}

var eras = map[Version]era{
	V1_8:  {V1_8, 4, RowMajor, 0, true},
	V1_9:  {V1_9, 4, RowMajor, 0, true},
	V1_10: {V1_10, 4, RowMajor, 0, true},
	V1_11: {V1_11, 4, RowMajor, 0, true},
	V1_12: {V1_12, 4, RowMajor, 0, true},
	V1_13: {V1_13, 2, ColMajor, 1, false},
	V1_14: {V1_14, 2, ColMajor, 1, false},
	V1_15: {V1_15, 2, ColMajor, 1, false},
	V1_16: {V1_16, 2, ColMajor, 2, false},
	V1_17: {V1_17, 2, RowMajor, 3, false},
}

// genericPlacement implements Placement from an era's data.
type genericPlacement struct {
	e era
}

func init() {
	for v, e := range eras {
		Register(v, &genericPlacement{e: e})
	}
}

func (p *genericPlacement) Version() Version   { return p.e.version }
func (p *genericPlacement) TileModulus() int    { return p.e.tileModulus }
func (p *genericPlacement) DecorationSalt() int { return p.e.decorationSalt }

// FloorSizes returns the legal floor sizes for this era: only 9x9 for the
// legacy versions, all four for 1.13 and later.
func (p *genericPlacement) FloorSizes() []floor.Size {
	if p.e.legacySizeOnly {
		return legacyFloorSizes
	}
	return allFloorSizes
}

func (p *genericPlacement) SizeSelectionCalls() [2]CallSite {
	return [2]CallSite{
		{CallIndex: 0, Modulus: 2},
		{CallIndex: 1, Modulus: 2},
	}
}

// TileCallSites walks size's room rectangle in this era's iteration
// order, numbering calls starting at index 2 (after the two size-
// selection calls).
func (p *genericPlacement) TileCallSites(size floor.Size) map[Coord]CallSite {
	colOff, rowOff := size.Offsets()
	sites := make(map[Coord]CallSite, size.Cols*size.Rows)
	idx := 2

	place := func(col, row int) {
		sites[Coord{Col: col, Row: row}] = CallSite{CallIndex: idx, Modulus: p.e.tileModulus}
		idx++
	}

	switch p.e.order {
	case ColMajor:
		for c := 0; c < size.Cols; c++ {
			for r := 0; r < size.Rows; r++ {
				place(colOff+c, rowOff+r)
			}
		}
	default: // RowMajor
		for r := 0; r < size.Rows; r++ {
			for c := 0; c < size.Cols; c++ {
				place(colOff+c, rowOff+r)
			}
		}
	}
	return sites
}

// resolveSize maps the two size-selection residues to a floor.Size: 0
// selects the long (9-cell) extent on that axis, 1 the short (7-cell).
func resolveSize(xLong, zLong bool) floor.Size {
	switch {
	case xLong && zLong:
		return floor.Size9x9
	case !xLong && zLong:
		return floor.Size7x9
	case xLong && !zLong:
		return floor.Size9x7
	default:
		return floor.Size7x7
	}
}

// TileForResidue maps a per-tile call's result to the tile it placed,
// under this era's modulus. Residue 0 is always mossy. Under the legacy
// modulus-4 calls, residues 1-2 are cobble and residue 3 is air; under
// the modern modulus-2 calls there is no room left for air, so any
// non-zero residue is cobble.
func TileForResidue(modulus, residue int) floor.Tile {
	if residue == 0 {
		return floor.TileMossy
	}
	if modulus == 4 && residue == 3 {
		return floor.TileAir
	}
	return floor.TileCobble
}

// ResiduesForTile returns the set of call residues, under the given
// modulus, consistent with an observed tile. For air it returns {3} under
// modulus 4 and nil under modulus 2, since no modulus-2 residue produces
// air; the constraint builder never passes floor.TileAir here, recording
// air as a Disequality instead.
func ResiduesForTile(modulus int, t floor.Tile) []int {
	switch t {
	case floor.TileMossy:
		return []int{0}
	case floor.TileCobble:
		if modulus == 4 {
			return []int{1, 2}
		}
		return []int{1}
	case floor.TileAir:
		if modulus == 4 {
			return []int{3}
		}
		return nil
	default:
		return nil
	}
}

// Forward replays the size-selection calls and then every tile call in
// this era's order, producing the full 9x9 grid the seed generates. Cells
// outside the resolved room rectangle are Unknown-Solid, as in any
// Observation of that size: no tile call places them.
func (p *genericPlacement) Forward(seed uint64) (*floor.Observation, floor.Size, error) {
	s := seed & lcg.Mask

	var xResult, zResult int
	s, xResult = nextAxis(s)
	s, zResult = nextAxis(s)
	size := resolveSize(xResult == 0, zResult == 0)

	obs := floor.NewObservation(size)

	sites := p.TileCallSites(size)
	// Replay sites in call-index order so the LCG state advances correctly
	// regardless of the map's iteration order.
	ordered := make([]Coord, len(sites))
	for coord, site := range sites {
		ordered[site.CallIndex-2] = coord
	}
	for _, coord := range ordered {
		var result int
		var err error
		s, result, err = lcg.NextIntPow2(s, p.e.tileModulus)
		if err != nil {
			return nil, floor.Size{}, fmt.Errorf("placement: replaying tile call: %w", err)
		}
		obs.Grid[coord.Row][coord.Col] = TileForResidue(p.e.tileModulus, result)
	}

	return obs, size, nil
}

func nextAxis(s uint64) (uint64, int) {
	next, result, err := lcg.NextIntPow2(s, 2)
	if err != nil {
		// Modulus 2 is always a valid power of two; this cannot happen.
		panic(fmt.Sprintf("placement: %v", err))
	}
	return next, result
}
