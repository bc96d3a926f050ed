package cracker

import (
	"fmt"
	"sort"

	"github.com/dshills/dungeon-cracker/pkg/biome"
	"github.com/dshills/dungeon-cracker/pkg/constraints"
	"github.com/dshills/dungeon-cracker/pkg/reverser"
	"github.com/dshills/dungeon-cracker/pkg/seedlift"
)

// Options configures the optional collaborators a crack job can be given.
// The zero value is a fully usable default: Classifier falls back to
// biome.CoarseClassifier.
type Options struct {
	// Classifier supplies the biome oracle, which is the caller's
	// responsibility to provide. Nil selects biome.CoarseClassifier{}.
	Classifier biome.Classifier
}

func (o Options) classifier() biome.Classifier {
	if o.Classifier != nil {
		return o.Classifier
	}
	return biome.CoarseClassifier{}
}

// Prepared is the deterministic, reusable output of Prepare: the request
// plus the reduced-lattice state pkg/reverser computed for it. Safe to
// share across any number of CrackPartial calls, including concurrently.
type Prepared struct {
	Request Request
	Options Options

	TotalBranches int
	Dimensions    int
	InfoBits      int
	Possibilities int64

	core *reverser.Prepared
}

// Prepare compiles req's observation into a constraint system, builds and
// reduces its lattice, and returns the branch-count metadata the
// `prepare` entry point reports to callers. Deterministic: repeated calls
// with identical inputs return identical branch counts.
func Prepare(req Request, opts Options) (*Prepared, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	sys, err := constraints.Build(req.Obs, req.Version)
	if err != nil {
		return nil, fmt.Errorf("cracker: %w", err)
	}
	if sys.Infeasible {
		return nil, fmt.Errorf("cracker: degenerate lattice: %s", sys.InfeasibleReason)
	}

	core, err := reverser.Prepare(req.Obs, sys)
	if err != nil {
		return nil, fmt.Errorf("cracker: %w", err)
	}

	return &Prepared{
		Request:       req,
		Options:       opts,
		TotalBranches: core.TotalBranches,
		Dimensions:    core.Dimensions,
		InfoBits:      core.InfoBits,
		Possibilities: core.Possibilities.Int64(),
		core:          core,
	}, nil
}

// Result is the seed sets one crack call recovered at every layer: the
// `crack`/`crack_partial` entry points' documented return shape.
type Result struct {
	DungeonSeeds   []uint64
	StructureSeeds []uint64
	WorldSeeds     []uint64
}

// CrackPartial enumerates [branchStart, branchEnd) of p and lifts every
// surviving dungeon seed up through structure and world seeds, applying
// p.Request.Biome under p.Options' classifier.
func CrackPartial(p *Prepared, branchStart, branchEnd int) (*Result, error) {
	core, err := reverser.CrackPartial(p.core, branchStart, branchEnd)
	if err != nil {
		return nil, fmt.Errorf("cracker: %w", err)
	}

	result := &Result{DungeonSeeds: core.DungeonSeeds}
	classifier := p.Options.classifier()

	seenStructure := make(map[uint64]bool)
	seenWorld := make(map[uint64]bool)

	for _, d := range core.DungeonSeeds {
		s, err := seedlift.DungeonToStructure(d, p.Request.Position, p.Request.Version)
		if err != nil {
			return nil, fmt.Errorf("cracker: %w", err)
		}
		if !seenStructure[s] {
			seenStructure[s] = true
			result.StructureSeeds = append(result.StructureSeeds, s)
		}

		for _, w := range seedlift.StructureToWorld(s, p.Request.Position, p.Request.Biome, classifier) {
			if !seenWorld[w] {
				seenWorld[w] = true
				result.WorldSeeds = append(result.WorldSeeds, w)
			}
		}
	}

	sort.Slice(result.StructureSeeds, func(i, j int) bool { return result.StructureSeeds[i] < result.StructureSeeds[j] })
	sort.Slice(result.WorldSeeds, func(i, j int) bool { return result.WorldSeeds[i] < result.WorldSeeds[j] })
	return result, nil
}

// Crack enumerates every branch: equivalent to
// CrackPartial(p, 0, p.TotalBranches).
func Crack(p *Prepared) (*Result, error) {
	return CrackPartial(p, 0, p.TotalBranches)
}
