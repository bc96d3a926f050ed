package latticemath

import "github.com/dshills/dungeon-cracker/pkg/bigrat"

// Vector is a dense row of exact rationals.
type Vector []*bigrat.Rational

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = bigrat.Zero()
	}
	return v
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = bigrat.FromInts(x.Num(), x.Denom())
	}
	return out
}

// Dot returns the inner product of v and w. Panics on length mismatch.
func (v Vector) Dot(w Vector) *bigrat.Rational {
	if len(v) != len(w) {
		panic("latticemath: dot product of mismatched-length vectors")
	}
	sum := bigrat.Zero()
	for i := range v {
		sum = sum.Add(v[i].Mul(w[i]))
	}
	return sum
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	if len(v) != len(w) {
		panic("latticemath: add of mismatched-length vectors")
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	if len(v) != len(w) {
		panic("latticemath: sub of mismatched-length vectors")
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}
	return out
}

// Scale returns v scaled by c.
func (v Vector) Scale(c *bigrat.Rational) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Mul(c)
	}
	return out
}

// NormSquared returns the squared Euclidean norm of v.
func (v Vector) NormSquared() *bigrat.Rational {
	return v.Dot(v)
}

// IsZero reports whether every entry of v is exactly zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if !x.IsZero() {
			return false
		}
	}
	return true
}
