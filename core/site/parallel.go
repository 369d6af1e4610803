package site

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"nucleo-core/molecule"
)

// Result holds the hits of one pattern on one molecule.
type Result struct {
	Pattern Pattern
	Offsets []int
	Cuts    []int
}

// Scan runs every pattern against m concurrently, at most workers at a time
// (0 = GOMAXPROCS). Results come back in the order of patterns. The molecule
// is only read, so no locking is needed; callers must not call SetShape on
// it while Scan runs.
func Scan(ctx context.Context, m molecule.NucleicAcid, patterns []Pattern, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seq := m.RawSequence()
	circular := m.Shape() == molecule.Circular
	n := m.Len()

	out := make([]Result, len(patterns))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i := range patterns {
		if err := groupCtx.Err(); err != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			p := patterns[i]
			hits := findSites(seq, circular, p.masks())
			out[i] = Result{
				Pattern: p,
				Offsets: hits,
				Cuts:    cutsFromHits(hits, p.CutOffset, n, circular),
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
