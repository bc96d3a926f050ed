package bigrat

import "math/big"

// Int is the arbitrary-precision signed integer type used throughout the
// lattice core. It is math/big.Int directly; only the Rational wrapper
// below is hand-rolled, per the contract this package implements.
//
// All of math/big.Int's methods (Add, Sub, Mul, DivMod, GCD, BitLen, Bit,
// SetBit, Cmp, Sign, ...) are available directly on *Int.
type Int = big.Int

// NewInt returns a new Int set to x.
func NewInt(x int64) *Int {
	return big.NewInt(x)
}

// CloneInt returns a fresh copy of x.
func CloneInt(x *Int) *Int {
	return new(big.Int).Set(x)
}
