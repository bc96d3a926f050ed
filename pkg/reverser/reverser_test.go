package reverser

import (
	"testing"

	"github.com/dshills/dungeon-cracker/pkg/constraints"
	"github.com/dshills/dungeon-cracker/pkg/floor"
	"github.com/dshills/dungeon-cracker/pkg/placement"
)

func TestCrackRecoversTheSeedThatGeneratedTheObservation(t *testing.T) {
	const seed = uint64(0x0BADC0DE1234) & 0xFFFFFFFFFFFF
	p := placement.Get(placement.V1_13)
	obs, _, err := p.Forward(seed)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	sys, err := constraints.Build(obs, placement.V1_13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sys.Infeasible {
		t.Fatal("a self-consistent forward-generated observation must not be infeasible")
	}

	prepared, err := Prepare(obs, sys)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if prepared.TotalBranches == 0 {
		t.Fatal("expected at least one branch for a fully determined observation")
	}

	result, err := Crack(prepared)
	if err != nil {
		t.Fatalf("Crack: %v", err)
	}

	found := false
	for _, s := range result.DungeonSeeds {
		if s == seed {
			found = true
		}
	}
	if !found {
		t.Fatalf("Crack did not recover seed %#x among %d candidates", seed, len(result.DungeonSeeds))
	}
}

func TestPrepareIsDeterministic(t *testing.T) {
	obs := sampleObservation(t)
	sys, err := constraints.Build(obs, placement.V1_13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p1, err := Prepare(obs, sys)
	if err != nil {
		t.Fatalf("Prepare (1st): %v", err)
	}
	p2, err := Prepare(obs, sys)
	if err != nil {
		t.Fatalf("Prepare (2nd): %v", err)
	}
	if p1.TotalBranches != p2.TotalBranches {
		t.Errorf("TotalBranches differs across identical Prepare calls: %d vs %d", p1.TotalBranches, p2.TotalBranches)
	}
	if p1.InfoBits != p2.InfoBits || p1.Dimensions != p2.Dimensions {
		t.Error("Prepare metadata differs across identical calls")
	}
}

func TestCrackPartialUnionEqualsCrack(t *testing.T) {
	obs := sampleObservation(t)
	sys, err := constraints.Build(obs, placement.V1_13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p, err := Prepare(obs, sys)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	mid := p.TotalBranches / 2
	first, err := CrackPartial(p, 0, mid)
	if err != nil {
		t.Fatalf("CrackPartial(0,%d): %v", mid, err)
	}
	second, err := CrackPartial(p, mid, p.TotalBranches)
	if err != nil {
		t.Fatalf("CrackPartial(%d,%d): %v", mid, p.TotalBranches, err)
	}
	whole, err := Crack(p)
	if err != nil {
		t.Fatalf("Crack: %v", err)
	}

	union := map[uint64]bool{}
	for _, s := range first.DungeonSeeds {
		union[s] = true
	}
	for _, s := range second.DungeonSeeds {
		union[s] = true
	}
	wholeSet := map[uint64]bool{}
	for _, s := range whole.DungeonSeeds {
		wholeSet[s] = true
	}

	if len(union) != len(wholeSet) {
		t.Fatalf("partitioned union has %d seeds, whole crack has %d", len(union), len(wholeSet))
	}
	for s := range wholeSet {
		if !union[s] {
			t.Errorf("seed %#x present in Crack but missing from the partitioned union", s)
		}
	}
}

func TestManuallyInfeasibleSystemYieldsZeroBranches(t *testing.T) {
	sys := &constraints.System{
		Version:          placement.V1_17,
		Size:             floor.Size9x9,
		Infeasible:       true,
		InfeasibleReason: "manually constructed for this test",
	}
	obs := floor.NewObservation(floor.Size9x9)

	p, err := Prepare(obs, sys)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if p.TotalBranches != 0 {
		t.Errorf("TotalBranches = %d, want 0 for an infeasible system", p.TotalBranches)
	}

	result, err := Crack(p)
	if err != nil {
		t.Fatalf("Crack: %v", err)
	}
	if len(result.DungeonSeeds) != 0 {
		t.Error("expected zero seeds from an infeasible system")
	}
}

func TestAirUnderModulusTwoIsNotInfeasibleButFiltersWrongCandidates(t *testing.T) {
	const seed = uint64(0x0BADC0DE1234) & 0xFFFFFFFFFFFF
	p := placement.Get(placement.V1_17)
	obs, _, err := p.Forward(seed)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	// Find a cell this seed actually placed as solid, then lie and claim
	// it was observed as air: a self-consistent observation except for
	// that one disequality.
	col, row := -1, -1
	for r := 0; r < floor.GridDim && col == -1; r++ {
		for c := 0; c < floor.GridDim; c++ {
			if obs.IsInformativeAt(c, r) && obs.At(c, r).IsStoneObserved() {
				col, row = c, r
				break
			}
		}
	}
	if col == -1 {
		t.Fatal("sample seed produced no solid tile to corrupt")
	}
	if err := obs.Set(col, row, floor.TileAir); err != nil {
		t.Fatalf("Set: %v", err)
	}

	sys, err := constraints.Build(obs, placement.V1_17)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sys.Infeasible {
		t.Fatal("an air observation must never mark the system infeasible, even under a modulus-2 version")
	}
	if len(sys.Disequalities) == 0 {
		t.Fatal("expected the corrupted cell to be recorded as a disequality")
	}

	prepared, err := Prepare(obs, sys)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if prepared.TotalBranches == 0 {
		t.Fatal("expected at least one branch: the system is under-determined, not infeasible")
	}

	result, err := Crack(prepared)
	if err != nil {
		t.Fatalf("Crack: %v", err)
	}
	for _, s := range result.DungeonSeeds {
		if s == seed {
			t.Fatalf("seed %#x replays stone at the corrupted cell; it must be filtered by the air disequality", seed)
		}
	}
}

func sampleObservation(t *testing.T) *floor.Observation {
	t.Helper()
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
	obs, err := floor.ParseRows(floor.Size9x9, rows)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	return obs
}
