package lcg

import "testing"

func TestInverseStepUndoesStep(t *testing.T) {
	s := uint64(0xDEADBEEF1234) & Mask
	next := Step(s)
	if got := InverseStep(next); got != s {
		t.Fatalf("InverseStep(Step(s)) = %#x, want %#x", got, s)
	}
}

func TestInverseAdvanceByUndoesAdvanceBy(t *testing.T) {
	s := Scramble(987654321)
	for _, n := range []int{0, 1, 5, 17} {
		advanced := AdvanceBy(s, n)
		if got := InverseAdvanceBy(advanced, n); got != s {
			t.Fatalf("n=%d: InverseAdvanceBy(AdvanceBy(s,n),n) = %#x, want %#x", n, got, s)
		}
	}
}
