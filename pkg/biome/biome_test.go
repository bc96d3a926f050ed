package biome

import "testing"

func TestParseTagRoundTrip(t *testing.T) {
	cases := []Tag{Desert, NotDesert, Unknown}
	for _, want := range cases {
		got, err := ParseTag(want.String())
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", want, err)
		}
		if got != want {
			t.Fatalf("ParseTag(%q) = %v, want %v", want, got, want)
		}
	}
}

func TestParseTagRejectsUnknownToken(t *testing.T) {
	if _, err := ParseTag("jungle"); err == nil {
		t.Fatal("expected an error for an unrecognized biome token")
	}
}

func TestTagMatches(t *testing.T) {
	if !Desert.Matches(DesertGroup) {
		t.Error("Desert must match DesertGroup")
	}
	if Desert.Matches(OtherGroup) {
		t.Error("Desert must not match OtherGroup")
	}
	if NotDesert.Matches(DesertGroup) {
		t.Error("NotDesert must not match DesertGroup")
	}
	if !NotDesert.Matches(OtherGroup) {
		t.Error("NotDesert must match OtherGroup")
	}
	if !Unknown.Matches(DesertGroup) || !Unknown.Matches(OtherGroup) {
		t.Error("Unknown must match every group")
	}
}

func TestCoarseClassifierIsDeterministic(t *testing.T) {
	c := CoarseClassifier{}
	const seed = uint64(123456789)
	g1 := c.ClassifyColumn(seed, 320, -418)
	g2 := c.ClassifyColumn(seed, 320, -418)
	if g1 != g2 {
		t.Fatalf("ClassifyColumn not deterministic: %v vs %v", g1, g2)
	}
}

func TestCoarseClassifierAgreesWithinRegion(t *testing.T) {
	c := CoarseClassifier{}
	const seed = uint64(42)
	a := c.ClassifyColumn(seed, 10, 10)
	b := c.ClassifyColumn(seed, 20, 20)
	if a != b {
		t.Fatalf("columns in the same 256-block region disagreed: %v vs %v", a, b)
	}
}
