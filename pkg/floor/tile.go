package floor

import "fmt"

// Tile is a tagged variant describing what, if anything, is known about a
// single floor cell.
type Tile int

const (
	// TileMossy is an observed mossy cobblestone cell. Informative.
	TileMossy Tile = iota
	// TileCobble is an observed regular cobblestone cell. Informative.
	TileCobble
	// TileAir is an observed non-solid cell: informative only as
	// "not stone", not as a residue constraint.
	TileAir
	// TileUnknown contributes no information at all.
	TileUnknown
	// TileUnknownSolid means "either mossy or cobble, but not air",
	// the value assigned to cells outside the visible sub-rectangle.
	TileUnknownSolid
)

// Byte returns the wire encoding (digit 0-4) for t.
func (t Tile) Byte() byte {
	return byte('0' + int(t))
}

// TileFromByte parses a wire digit ('0'-'4') into a Tile.
func TileFromByte(b byte) (Tile, error) {
	if b < '0' || b > '4' {
		return 0, fmt.Errorf("floor: invalid tile digit %q, want '0'-'4'", b)
	}
	return Tile(b - '0'), nil
}

// IsStoneObserved reports whether t is a directly observed mossy or
// cobble cell (the two tile kinds that contribute a residue constraint).
func (t Tile) IsStoneObserved() bool {
	return t == TileMossy || t == TileCobble
}

// IsAir reports whether t is an observed non-solid cell.
func (t Tile) IsAir() bool {
	return t == TileAir
}

// IsUnknown reports whether t carries no information whatsoever.
func (t Tile) IsUnknown() bool {
	return t == TileUnknown
}

// IsUnknownSolid reports whether t is known to be solid (mossy or
// cobble) but the specific kind was not observed.
func (t Tile) IsUnknownSolid() bool {
	return t == TileUnknownSolid
}

// Informative reports whether t contributes any constraint at all: every
// tag except plain Unknown.
func (t Tile) Informative() bool {
	return t != TileUnknown
}

// String renders a short label for debugging output.
func (t Tile) String() string {
	switch t {
	case TileMossy:
		return "mossy"
	case TileCobble:
		return "cobble"
	case TileAir:
		return "air"
	case TileUnknown:
		return "unknown"
	case TileUnknownSolid:
		return "unknown-solid"
	default:
		return fmt.Sprintf("tile(%d)", int(t))
	}
}
