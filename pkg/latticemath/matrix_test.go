package latticemath

import (
	"testing"

	"github.com/dshills/dungeon-cracker/pkg/bigrat"
)

func TestGramSchmidtOrthogonal(t *testing.T) {
	b, err := NewMatrixFromInts([][]int64{
		{1, 1, 1},
		{-1, 0, 2},
		{3, 5, 6},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromInts: %v", err)
	}

	res := GramSchmidt(b)
	n := res.BStar.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dot := res.BStar.Row(i).Dot(res.BStar.Row(j))
			if !dot.IsZero() {
				t.Errorf("b*_%d . b*_%d = %s, want 0", i, j, dot)
			}
		}
	}
}

func TestGramSchmidtRecoversBasis(t *testing.T) {
	b, err := NewMatrixFromInts([][]int64{
		{1, 1, 1},
		{-1, 0, 2},
		{3, 5, 6},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromInts: %v", err)
	}
	res := GramSchmidt(b)

	for i := 0; i < b.Rows(); i++ {
		recovered := res.BStar.Row(i)
		for j := 0; j < i; j++ {
			recovered = recovered.Add(res.BStar.Row(j).Scale(res.Mu[i][j]))
		}
		want := b.Row(i)
		for k := 0; k < len(want); k++ {
			if recovered[k].Cmp(want[k]) != 0 {
				t.Errorf("row %d component %d: recovered %s, want %s", i, k, recovered[k], want[k])
			}
		}
	}
}

func TestSwapAndAddRowScaled(t *testing.T) {
	m, _ := NewMatrixFromInts([][]int64{
		{1, 0},
		{0, 1},
	})
	m.SwapRows(0, 1)
	if m.At(0, 0).Sign() != 0 || m.At(0, 1).Cmp(m.At(0, 1)) != 0 {
		t.Fatalf("unexpected row after swap: %v", m.Row(0))
	}
	if m.Row(0)[1].Num().Int64() != 1 {
		t.Fatalf("expected swapped row to be [0,1], got %v", m.Row(0))
	}

	m2, _ := NewMatrixFromInts([][]int64{
		{1, 0},
		{0, 1},
	})
	m2.AddRowScaled(0, 1, bigrat.NewRational(2, 1))
	if m2.Row(0)[1].Num().Int64() != 2 {
		t.Fatalf("expected row 0 to be [1,2] after AddRowScaled, got %v", m2.Row(0))
	}
}
