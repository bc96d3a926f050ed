// Package bigrat provides arbitrary-precision signed integer and rational
// arithmetic for the lattice-reduction core. Integers are math/big.Int
// under the hood; Rational is a hand-written canonicalizing wrapper that
// keeps numerator and denominator coprime with a positive denominator on
// every operation, since LLL's correctness depends on exact, not
// floating-point, arithmetic.
package bigrat
