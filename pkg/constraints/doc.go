// Package constraints translates a floor observation and a version tag
// into the modular-affine constraint system
// the reverser needs: one equality row per tile whose call result pins
// down a single residue, skipping tiles whose observed kind is
// consistent with more than one residue (those are instead filtered out
// later by the reverser's mandatory forward-replay verification).
package constraints
