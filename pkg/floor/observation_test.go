package floor

import "testing"

func TestParseSizeRoundTrip(t *testing.T) {
	for _, tok := range []string{"9x9", "7x9", "9x7", "7x7"} {
		size, err := ParseSize(tok)
		if err != nil {
			t.Fatalf("ParseSize(%q): %v", tok, err)
		}
		if size.String() != tok {
			t.Errorf("ParseSize(%q).String() = %q", tok, size.String())
		}
	}
	if _, err := ParseSize("8x8"); err == nil {
		t.Error("expected error for unsupported size")
	}
}

func TestParseRowsCentersWindow(t *testing.T) {
	rows := []string{
		"0000000",
		"0000000",
		"0000000",
		"0011000",
		"0000000",
		"0000000",
		"0000000",
	}
	o, err := ParseRows(Size7x7, rows)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	// 7x7 centered in 9x9: offsets are (1,1).
	if o.At(3, 4) != TileCobble {
		t.Errorf("expected cobble at (3,4), got %s", o.At(3, 4))
	}
	if !o.IsInformativeAt(3, 4) {
		t.Error("expected (3,4) to be informative")
	}
	// A border cell must be unknown-solid and non-informative.
	if o.At(0, 0) != TileUnknownSolid {
		t.Errorf("expected border cell to be unknown-solid, got %s", o.At(0, 0))
	}
	if o.IsInformativeAt(0, 0) {
		t.Error("border cells must not be informative")
	}
}

func TestEncodeDecodeGrid81RoundTrip(t *testing.T) {
	rows := []string{
		"000001000",
		"000000000",
		"000000010",
		"001101000",
		"000000110",
		"000000011",
		"100010000",
		"000000000",
		"000000000",
	}
	o, err := ParseRows(Size9x9, rows)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	encoded := o.EncodeGrid81()
	if len(encoded) != 81 {
		t.Fatalf("EncodeGrid81 length = %d, want 81", len(encoded))
	}
	decoded, err := DecodeGrid81(Size9x9, encoded)
	if err != nil {
		t.Fatalf("DecodeGrid81: %v", err)
	}
	if decoded.EncodeGrid81() == nil || string(decoded.EncodeGrid81()) != string(encoded) {
		t.Error("round trip through DecodeGrid81/EncodeGrid81 changed the grid")
	}
}

func TestDecodeGrid81RejectsInformativeBorder(t *testing.T) {
	data := make([]byte, 81)
	for i := range data {
		data[i] = '4' // all unknown-solid: valid for any size
	}
	data[0] = '0' // mossy outside a 7x7 window's border
	if _, err := DecodeGrid81(Size7x7, data); err == nil {
		t.Error("expected error when a border cell carries real information")
	}
}

func TestAllUnknownIsNeverInformative(t *testing.T) {
	o := NewObservation(Size9x9)
	if o.InformativeCount() != 0 {
		t.Errorf("fresh 9x9 observation should have 0 informative cells, got %d", o.InformativeCount())
	}
}
