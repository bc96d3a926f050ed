package floor

import "fmt"

// GridDim is the full grid side length; every Observation is stored as a
// dense GridDim x GridDim grid regardless of the visible sub-rectangle.
const GridDim = 9

// Size describes the visible sub-rectangle of an Observation: Cols is the
// X-extent (west-east), Rows is the Z-extent (north-south).
type Size struct {
	Cols int
	Rows int
}

// The four permitted floor sizes.
var (
	Size9x9 = Size{Cols: 9, Rows: 9}
	Size7x9 = Size{Cols: 7, Rows: 9}
	Size9x7 = Size{Cols: 9, Rows: 7}
	Size7x7 = Size{Cols: 7, Rows: 7}
)

// ParseSize parses the CLI floor-size token ("9x9", "7x9", "9x7", "7x7").
func ParseSize(token string) (Size, error) {
	switch token {
	case "9x9":
		return Size9x9, nil
	case "7x9":
		return Size7x9, nil
	case "9x7":
		return Size9x7, nil
	case "7x7":
		return Size7x7, nil
	default:
		return Size{}, fmt.Errorf("floor: unrecognized floor size %q", token)
	}
}

// String renders the size back to its CLI token form.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// offsets returns the (colOffset, rowOffset) of the visible rectangle
// within the full 9x9 grid: smaller windows are centered on the spawner,
// which sits at the grid's center.
func (s Size) offsets() (colOff, rowOff int) {
	return (GridDim - s.Cols) / 2, (GridDim - s.Rows) / 2
}

// Contains reports whether the full-grid coordinate (col, row) lies
// within this size's visible rectangle.
func (s Size) Contains(col, row int) bool {
	colOff, rowOff := s.offsets()
	return col >= colOff && col < colOff+s.Cols && row >= rowOff && row < rowOff+s.Rows
}

// Offsets exposes the (colOffset, rowOffset) of the visible rectangle
// within the full 9x9 grid, for callers (such as pkg/placement) that need
// to map a room-local coordinate onto full-grid coordinates.
func (s Size) Offsets() (colOff, rowOff int) {
	return s.offsets()
}

// Observation is a dense 9x9 tile grid together with the size of the
// sub-rectangle that was actually visible. Grid is indexed [row][col]
// with north-west origin: +X (col) is east, +Z (row) is south.
type Observation struct {
	Size Size
	Grid [GridDim][GridDim]Tile
}

// NewObservation returns an Observation of the given size with every cell
// initialized to Unknown-Solid outside the visible window and Unknown
// inside it (the caller then fills in whatever was actually observed).
func NewObservation(size Size) *Observation {
	o := &Observation{Size: size}
	for row := 0; row < GridDim; row++ {
		for col := 0; col < GridDim; col++ {
			if size.Contains(col, row) {
				o.Grid[row][col] = TileUnknown
			} else {
				o.Grid[row][col] = TileUnknownSolid
			}
		}
	}
	return o
}

// Set assigns tile t at the given full-grid coordinate. Returns an error
// if (col, row) is out of bounds.
func (o *Observation) Set(col, row int, t Tile) error {
	if col < 0 || col >= GridDim || row < 0 || row >= GridDim {
		return fmt.Errorf("floor: coordinate (%d, %d) out of bounds [0,%d)", col, row, GridDim)
	}
	o.Grid[row][col] = t
	return nil
}

// At returns the tile at the given full-grid coordinate.
func (o *Observation) At(col, row int) Tile {
	return o.Grid[row][col]
}

// ParseRows builds an Observation of the given size from row strings, one
// per visible row (north to south), each a left-to-right digit string
// matching the size's column extent. Missing rows are left Unknown-Solid.
func ParseRows(size Size, rows []string) (*Observation, error) {
	o := NewObservation(size)
	colOff, rowOff := size.offsets()

	if len(rows) > size.Rows {
		return nil, fmt.Errorf("floor: got %d floor rows, size %s allows at most %d", len(rows), size, size.Rows)
	}

	for r, line := range rows {
		if len(line) != size.Cols {
			return nil, fmt.Errorf("floor: row %d has length %d, want %d for size %s", r, len(line), size.Cols, size)
		}
		for c := 0; c < size.Cols; c++ {
			t, err := TileFromByte(line[c])
			if err != nil {
				return nil, fmt.Errorf("floor: row %d: %w", r, err)
			}
			if err := o.Set(colOff+c, rowOff+r, t); err != nil {
				return nil, err
			}
		}
	}
	for r := len(rows); r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			o.Grid[rowOff+r][colOff+c] = TileUnknownSolid
		}
	}
	return o, nil
}

// EncodeGrid81 serializes the full 9x9 grid row-major into the 81-byte
// wire form used at the programmatic boundary.
func (o *Observation) EncodeGrid81() []byte {
	out := make([]byte, 0, GridDim*GridDim)
	for row := 0; row < GridDim; row++ {
		for col := 0; col < GridDim; col++ {
			out = append(out, o.Grid[row][col].Byte())
		}
	}
	return out
}

// DecodeGrid81 parses the 81-byte wire form into an Observation of the
// given size. Cells outside size's visible rectangle must be
// Unknown-Solid.
func DecodeGrid81(size Size, data []byte) (*Observation, error) {
	if len(data) != GridDim*GridDim {
		return nil, fmt.Errorf("floor: grid must be exactly %d bytes, got %d", GridDim*GridDim, len(data))
	}
	o := &Observation{Size: size}
	for row := 0; row < GridDim; row++ {
		for col := 0; col < GridDim; col++ {
			t, err := TileFromByte(data[row*GridDim+col])
			if err != nil {
				return nil, fmt.Errorf("floor: cell (%d,%d): %w", col, row, err)
			}
			if !size.Contains(col, row) && t != TileUnknownSolid {
				return nil, fmt.Errorf("floor: cell (%d,%d) is outside the %s window but not unknown-solid", col, row, size)
			}
			o.Grid[row][col] = t
		}
	}
	return o, nil
}

// InformativeCount returns the number of cells that carry a constraint:
// every non-Unknown cell within the visible rectangle. Unknown-Solid
// cells outside the visible rectangle are placeholders, not observations:
// they carry no information even though the Tile tag itself nominally
// means "mossy or cobble, not air".
func (o *Observation) InformativeCount() int {
	n := 0
	for row := 0; row < GridDim; row++ {
		for col := 0; col < GridDim; col++ {
			if o.Size.Contains(col, row) && o.Grid[row][col].Informative() {
				n++
			}
		}
	}
	return n
}

// IsInformativeAt reports whether the cell at (col, row) carries a
// constraint: it must be within the visible rectangle and not plain
// Unknown. See InformativeCount for why border Unknown-Solid cells are
// excluded even though the Tile tag alone would say otherwise.
func (o *Observation) IsInformativeAt(col, row int) bool {
	return o.Size.Contains(col, row) && o.Grid[row][col].Informative()
}
