package cracker

import (
	"context"
	"sync"
)

// CrackParallel fans p's total branches out across n goroutines (clamped
// to at least 1), each crack-ing a roughly equal contiguous slice via
// reverser's branch-partition entry point, merges every worker's result,
// and deduplicates across workers. pkg/reverser itself owns no threads;
// CrackParallel is a thin convenience layered on top of CrackPartial,
// using a plain WaitGroup and channel fan-out rather than a third-party
// task-group library.
//
// ctx cancellation stops launching new work but does not interrupt a
// worker already mid-enumeration: there is no suspension point inside a
// single CrackPartial call to cancel into.
func CrackParallel(ctx context.Context, p *Prepared, n int) (*Result, error) {
	if n < 1 {
		n = 1
	}
	if p.TotalBranches == 0 {
		return &Result{}, nil
	}

	chunk := (p.TotalBranches + n - 1) / n
	type workerOutcome struct {
		result *Result
		err    error
	}
	outcomes := make(chan workerOutcome, n)

	var wg sync.WaitGroup
	for start := 0; start < p.TotalBranches; start += chunk {
		end := start + chunk
		if end > p.TotalBranches {
			end = p.TotalBranches
		}

		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			r, err := CrackPartial(p, start, end)
			outcomes <- workerOutcome{result: r, err: err}
		}(start, end)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	merged := &Result{}
	seenDungeon := make(map[uint64]bool)
	seenStructure := make(map[uint64]bool)
	seenWorld := make(map[uint64]bool)

	for o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		for _, d := range o.result.DungeonSeeds {
			if !seenDungeon[d] {
				seenDungeon[d] = true
				merged.DungeonSeeds = append(merged.DungeonSeeds, d)
			}
		}
		for _, s := range o.result.StructureSeeds {
			if !seenStructure[s] {
				seenStructure[s] = true
				merged.StructureSeeds = append(merged.StructureSeeds, s)
			}
		}
		for _, w := range o.result.WorldSeeds {
			if !seenWorld[w] {
				seenWorld[w] = true
				merged.WorldSeeds = append(merged.WorldSeeds, w)
			}
		}
	}

	return merged, nil
}
