// Package lcg implements Java's 48-bit linear congruential generator
// (java.util.Random's algorithm): s' = (0x5DEECE66D*s + 0xB) mod 2^48.
// It is the shared primitive underneath the constraint builder, the
// version-specific placement replays, and the seed lift layers: all of
// them need to step the generator, extract power-of-two nextInt results,
// and reason about a call's output as an affine function of the initial
// state.
package lcg
