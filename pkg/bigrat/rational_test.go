package bigrat

import "testing"

func TestNewRationalCanonicalizes(t *testing.T) {
	tests := []struct {
		name       string
		num, den   int64
		wantNum    int64
		wantDen    int64
	}{
		{"already reduced", 1, 2, 1, 2},
		{"reduces gcd", 6, 8, 3, 4},
		{"negative denominator flips sign", 1, -2, -1, 2},
		{"negative numerator stays negative", -1, 2, -1, 2},
		{"both negative cancel", -3, -9, 1, 3},
		{"zero numerator normalizes denominator", 0, 5, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRational(tt.num, tt.den)
			if r.Num().Int64() != tt.wantNum || r.Denom().Int64() != tt.wantDen {
				t.Fatalf("NewRational(%d, %d) = %s/%s, want %d/%d",
					tt.num, tt.den, r.Num(), r.Denom(), tt.wantNum, tt.wantDen)
			}
		})
	}
}

func TestNewRationalZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero denominator")
		}
	}()
	NewRational(1, 0)
}

func TestArithmetic(t *testing.T) {
	half := NewRational(1, 2)
	third := NewRational(1, 3)

	if got := half.Add(third); got.Cmp(NewRational(5, 6)) != 0 {
		t.Errorf("1/2 + 1/3 = %s, want 5/6", got)
	}
	if got := half.Sub(third); got.Cmp(NewRational(1, 6)) != 0 {
		t.Errorf("1/2 - 1/3 = %s, want 1/6", got)
	}
	if got := half.Mul(third); got.Cmp(NewRational(1, 6)) != 0 {
		t.Errorf("1/2 * 1/3 = %s, want 1/6", got)
	}
	if got := half.Div(third); got.Cmp(NewRational(3, 2)) != 0 {
		t.Errorf("1/2 / 1/3 = %s, want 3/2", got)
	}
	if got := half.Neg(); got.Cmp(NewRational(-1, 2)) != 0 {
		t.Errorf("-(1/2) = %s, want -1/2", got)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic dividing by zero rational")
		}
	}()
	NewRational(1, 2).Div(Zero())
}

func TestFloor(t *testing.T) {
	tests := []struct {
		num, den int64
		want     int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{6, 2, 3},
		{-6, 2, -3},
	}
	for _, tt := range tests {
		got := NewRational(tt.num, tt.den).Floor()
		if got.Int64() != tt.want {
			t.Errorf("Floor(%d/%d) = %s, want %d", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestRoundEven(t *testing.T) {
	tests := []struct {
		num, den int64
		want     int64
	}{
		{5, 2, 2},  // 2.5 -> 2 (even)
		{7, 2, 4},  // 3.5 -> 4 (even)
		{-5, 2, -2}, // -2.5 -> -2 (even)
		{3, 2, 2},  // 1.5 -> 2 (even)
		{9, 4, 2},  // 2.25 -> 2
		{11, 4, 3}, // 2.75 -> 3
	}
	for _, tt := range tests {
		got := NewRational(tt.num, tt.den).RoundEven()
		if got.Int64() != tt.want {
			t.Errorf("RoundEven(%d/%d) = %s, want %d", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestCmpAndSign(t *testing.T) {
	a := NewRational(1, 3)
	b := NewRational(2, 3)
	if a.Cmp(b) >= 0 {
		t.Errorf("expected 1/3 < 2/3")
	}
	if Zero().Sign() != 0 {
		t.Errorf("expected Zero().Sign() == 0")
	}
	if NewRational(-1, 3).Sign() != -1 {
		t.Errorf("expected negative sign")
	}
}
