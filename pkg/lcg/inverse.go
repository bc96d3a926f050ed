package lcg

import "math/big"

// multiplierInverse is the modular inverse of Multiplier mod 2^48. Since
// Multiplier is odd, it is invertible mod any power of two; this is
// computed once via the extended Euclidean algorithm (through math/big,
// off the hot path, since it runs once per process, not per candidate).
var multiplierInverse = computeMultiplierInverse()

func computeMultiplierInverse() uint64 {
	mod := new(big.Int).Lsh(big.NewInt(1), Bits)
	mult := new(big.Int).SetUint64(Multiplier)
	inv := new(big.Int).ModInverse(mult, mod)
	if inv == nil {
		panic("lcg: Multiplier has no inverse mod 2^48 (should be impossible: Multiplier is odd)")
	}
	return inv.Uint64()
}

// InverseStep returns the unique previous state sPrev such that
// Step(sPrev) == s. The LCG step is a bijection on [0, 2^48) because
// Multiplier is odd.
func InverseStep(s uint64) uint64 {
	diff := (s + (Mask + 1) - (Increment & Mask)) & Mask // (s - Increment) mod 2^48, avoiding underflow
	return mulMod48(multiplierInverse, diff)
}

// AdvanceBy steps s forward n times (n >= 0).
func AdvanceBy(s uint64, n int) uint64 {
	for i := 0; i < n; i++ {
		s = Step(s)
	}
	return s
}

// InverseAdvanceBy steps s backward n times (n >= 0): the unique state
// that, after n forward Steps, reaches s.
func InverseAdvanceBy(s uint64, n int) uint64 {
	for i := 0; i < n; i++ {
		s = InverseStep(s)
	}
	return s
}
