// Package reverser combines the big-rational, lattice-math, and LLL
// packages with a constraint system to recover candidate dungeon seeds.
//
// Each equality row says "the call at index k, reduced mod m, observed
// residue r", equivalently the LCG state produced by that call lies in
// a known width-(2^48/m) interval. Centering each interval turns the
// whole system into a classic hidden-number-style closest-vector
// problem: build an (n+1)-dimensional lattice whose first coordinate
// tracks the unknown initial state and whose remaining n coordinates let
// reduction cancel out multiples of 2^48 from each call's affine image,
// then enumerate lattice points near the centered targets to read off
// candidate states.
//
// The enumeration is a depth-first search in the manner of Fincke-Pohst
// sphere enumeration: at every Gram-Schmidt level it branches over each
// integer coordinate that keeps the accumulated squared error within the
// total permitted error. The outermost (root) level's choices are the
// branches Prepare counts and CrackPartial splits. Every candidate is
// then checked against the observed air cells and by a full bit-exact
// forward replay (pkg/placement) before being accepted.
package reverser
