package bigrat

import (
	"fmt"
	"math/big"
)

// Rational is an arbitrary-precision rational number kept in canonical
// form at all times: numerator and denominator are coprime and the
// denominator is strictly positive. Every constructor and every
// arithmetic operation re-establishes this invariant before returning.
type Rational struct {
	num *Int
	den *Int
}

// Zero returns the rational 0/1.
func Zero() *Rational {
	return &Rational{num: big.NewInt(0), den: big.NewInt(1)}
}

// One returns the rational 1/1.
func One() *Rational {
	return &Rational{num: big.NewInt(1), den: big.NewInt(1)}
}

// NewRational returns the canonical form of num/den.
// Panics if den is zero.
func NewRational(num, den int64) *Rational {
	return FromInts(big.NewInt(num), big.NewInt(den))
}

// FromInt returns the canonical form of n/1.
func FromInt(n *Int) *Rational {
	return &Rational{num: CloneInt(n), den: big.NewInt(1)}
}

// FromInts returns the canonical form of num/den. The inputs are copied;
// callers retain ownership of num and den. Panics if den is zero.
func FromInts(num, den *Int) *Rational {
	if den.Sign() == 0 {
		panic("bigrat: division by zero denominator")
	}
	r := &Rational{num: CloneInt(num), den: CloneInt(den)}
	r.canonicalize()
	return r
}

// canonicalize enforces den > 0 and gcd(|num|, den) == 1.
func (r *Rational) canonicalize() {
	if r.den.Sign() < 0 {
		r.num.Neg(r.num)
		r.den.Neg(r.den)
	}
	if r.num.Sign() == 0 {
		r.den.SetInt64(1)
		return
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.num), r.den)
	if g.Cmp(big.NewInt(1)) != 0 {
		r.num.Quo(r.num, g)
		r.den.Quo(r.den, g)
	}
}

// Num returns the (copied) canonical numerator.
func (r *Rational) Num() *Int { return CloneInt(r.num) }

// Denom returns the (copied) canonical denominator; always positive.
func (r *Rational) Denom() *Int { return CloneInt(r.den) }

// Add returns r + other.
func (r *Rational) Add(other *Rational) *Rational {
	num := new(big.Int).Add(
		new(big.Int).Mul(r.num, other.den),
		new(big.Int).Mul(other.num, r.den),
	)
	den := new(big.Int).Mul(r.den, other.den)
	return FromInts(num, den)
}

// Sub returns r - other.
func (r *Rational) Sub(other *Rational) *Rational {
	return r.Add(other.Neg())
}

// Mul returns r * other.
func (r *Rational) Mul(other *Rational) *Rational {
	num := new(big.Int).Mul(r.num, other.num)
	den := new(big.Int).Mul(r.den, other.den)
	return FromInts(num, den)
}

// Div returns r / other. Panics if other is zero.
func (r *Rational) Div(other *Rational) *Rational {
	if other.num.Sign() == 0 {
		panic("bigrat: division by zero rational")
	}
	num := new(big.Int).Mul(r.num, other.den)
	den := new(big.Int).Mul(r.den, other.num)
	return FromInts(num, den)
}

// Neg returns -r.
func (r *Rational) Neg() *Rational {
	return &Rational{num: new(big.Int).Neg(r.num), den: CloneInt(r.den)}
}

// Sign returns -1, 0, or 1 depending on the sign of r.
func (r *Rational) Sign() int {
	return r.num.Sign()
}

// Cmp compares r and other, returning -1, 0, or 1.
func (r *Rational) Cmp(other *Rational) int {
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	return lhs.Cmp(rhs)
}

// IsZero reports whether r is exactly zero.
func (r *Rational) IsZero() bool { return r.num.Sign() == 0 }

// Floor returns the greatest integer <= r.
func (r *Rational) Floor() *Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.num, r.den, m) // Euclidean: 0 <= m < den, den > 0, so q is the floor.
	return q
}

// RoundEven returns the nearest integer to r, rounding to even on exact ties.
func (r *Rational) RoundEven() *Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.num, r.den, m) // q = floor(r), 0 <= m < den

	twice := new(big.Int).Lsh(m, 1) // 2m
	switch twice.Cmp(r.den) {
	case -1:
		return q
	case 1:
		return q.Add(q, big.NewInt(1))
	default: // exact tie: round to even
		if q.Bit(0) == 0 {
			return q
		}
		return q.Add(q, big.NewInt(1))
	}
}

// String renders r as "num/den", or just "num" when den is 1.
func (r *Rational) String() string {
	if r.den.Cmp(big.NewInt(1)) == 0 {
		return r.num.String()
	}
	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}
