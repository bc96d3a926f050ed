// Package placement encapsulates the dungeon floor placement routine for
// each supported game version (1.8 through 1.17): the exact sequence of
// LCG calls that choose the room's footprint and then, tile by tile,
// whether each cell is mossy cobblestone, regular cobblestone, or left as
// air. Each version's placement is described once as data, a small table
// of call modulus, iteration order, and decoration salt, rather than as
// ten near-identical procedures, and registered under its version tag
// through a name-to-implementation registry.
package placement
