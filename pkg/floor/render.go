package floor

import (
	"bytes"

	svg "github.com/ajstarks/svgo"
)

// cellPixels is the edge length of one rendered grid cell.
const cellPixels = 32

// tileColor maps each Tile to the fill color used by RenderSVG.
func tileColor(t Tile) string {
	switch t {
	case TileMossy:
		return "#4a6741"
	case TileCobble:
		return "#6e6e6e"
	case TileAir:
		return "#cde6f5"
	case TileUnknownSolid:
		return "#b5a642"
	default: // TileUnknown
		return "#1a1a1a"
	}
}

// RenderSVG draws o's full 9x9 grid as a color-coded SVG diagram: mossy
// and cobble cells in their respective stone colors, air pale blue,
// unknown-solid tan, and plain unknown near-black.
func RenderSVG(o *Observation) []byte {
	var buf bytes.Buffer
	dim := GridDim * cellPixels
	canvas := svg.New(&buf)
	canvas.Start(dim, dim)

	for row := 0; row < GridDim; row++ {
		for col := 0; col < GridDim; col++ {
			t := o.Grid[row][col]
			x := col * cellPixels
			y := row * cellPixels
			canvas.Rect(x, y, cellPixels, cellPixels, "fill:"+tileColor(t)+";stroke:#000;stroke-width:1")
		}
	}

	canvas.End()
	return buf.Bytes()
}
