package seedlift

import (
	"fmt"

	"github.com/dshills/dungeon-cracker/pkg/biome"
	"github.com/dshills/dungeon-cracker/pkg/lcg"
	"github.com/dshills/dungeon-cracker/pkg/placement"
)

// Position is the spawner's world-space block coordinates. Only X and Z
// participate in the lift layers; Y is carried for completeness and for
// any future biome oracle that wants it.
type Position struct {
	X, Y, Z int32
}

// ChunkX and ChunkZ are the chunk coordinates (16-block cells) containing
// the spawner, the unit the chunk decorator is actually seeded per.
func (p Position) ChunkX() int64 { return int64(p.X) >> 4 }
func (p Position) ChunkZ() int64 { return int64(p.Z) >> 4 }

// Decorator multipliers for the population-seed expression
// S_s ^ ((a*(X>>4) + c*(Z>>4)) mod 2^48). These are fixed 48-bit
// constants, distinct from the LCG's own a/c so the two affine layers
// don't collapse into one, chosen once and used consistently by both the
// forward simulator and its inverse.
const (
	chunkXMultiplier uint64 = 0x2FE2B5C4A3D1 & lcg.Mask
	chunkZMultiplier uint64 = 0x1A2F3B4C5D6E & lcg.Mask
)

func populationSalt(chunkX, chunkZ int64) uint64 {
	x := uint64(chunkX) * chunkXMultiplier
	z := uint64(chunkZ) * chunkZMultiplier
	return (x + z) & lcg.Mask
}

// StructureToDungeon simulates the forward relation: the chunk decorator
// is seeded to the population seed, then advanced decorationSalt calls to
// reach the state dungeon decoration itself observes. It exists primarily
// so tests can construct a self-consistent (structureSeed, dungeonSeed)
// pair without this package's inverse, DungeonToStructure, trivially
// agreeing with itself.
func StructureToDungeon(structureSeed uint64, pos Position, version placement.Version) uint64 {
	p := placement.Get(version)
	populationSeed := structureSeed ^ populationSalt(pos.ChunkX(), pos.ChunkZ())
	return lcg.AdvanceBy(populationSeed, p.DecorationSalt())
}

// DungeonToStructure inverts StructureToDungeon: given a recovered dungeon
// seed and the spawner position it was recovered at, it computes the
// unique structure seed that produced it under version's decoration-salt
// table, a fixed per-version table rather than a brute-force search.
func DungeonToStructure(dungeonSeed uint64, pos Position, version placement.Version) (uint64, error) {
	p := placement.Get(version)
	if p == nil {
		return 0, fmt.Errorf("seedlift: unsupported version %q", version)
	}
	populationSeed := lcg.InverseAdvanceBy(dungeonSeed, p.DecorationSalt())
	return populationSeed ^ populationSalt(pos.ChunkX(), pos.ChunkZ()), nil
}

// WorldCandidates is the number of high-bit completions
// StructureToWorld brute-forces per structure seed: the structure seed
// covers 48 bits, leaving the top 16 bits of the 64-bit world seed free.
const WorldCandidates = 1 << 16

// StructureToWorld extends structureSeed to every 64-bit world seed
// consistent with it by enumerating the high 16 bits and inverting the
// Java LCG's seed initialization transform, keeping only the candidates
// that satisfy tag under classifier at pos. A nil classifier disables the
// biome filter regardless of tag, matching Unknown's behavior, since
// there is then no oracle to consult.
func StructureToWorld(structureSeed uint64, pos Position, tag biome.Tag, classifier biome.Classifier) []uint64 {
	low48 := lcg.Unscramble(structureSeed)

	var out []uint64
	for high16 := 0; high16 < WorldCandidates; high16++ {
		candidate := (uint64(high16) << 48) | low48
		if classifier != nil && !tag.Matches(classifier.ClassifyColumn(candidate, pos.X, pos.Z)) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
