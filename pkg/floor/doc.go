// Package floor defines the Tile and Observation data model for a
// dungeon floor pattern: a 9x9 grid of tagged tiles with a visible
// sub-rectangle of size 9x9, 7x9, 9x7, or 7x7, the rest filled
// with the uninformative Unknown-Solid tag. It also implements the wire
// encoding used at the programmatic boundary (a fixed 81-byte grid) and
// an SVG rendering of an observation for debugging and documentation.
package floor
