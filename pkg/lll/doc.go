// Package lll implements Lenstra-Lenstra-Lovasz lattice basis reduction
// over exact rationals, with the standard parameter delta = 3/4. It
// shrinks an arbitrary basis enough that the feasible region at the root
// of the reverser's enumeration tree (pkg/reverser) intersects a
// manageable number of lattice points.
package lll
