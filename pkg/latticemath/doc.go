// Package latticemath provides dense matrices and vectors of exact
// rationals, plus Gram-Schmidt orthogonalization, for the LLL lattice
// reducer. Every entry is a *bigrat.Rational; there is no floating-point
// path anywhere in this package.
package latticemath
