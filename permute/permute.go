package permute

import (
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Stat maps a group assignment (one group index per sample position) to a
// real-valued statistic. Implementations must not retain or mutate the
// argument; under Workers > 1 they are called from multiple goroutines and
// must therefore be safe for concurrent use over shared read-only state.
type Stat func(member []int) float64

// DefaultWorkers evaluates trials sequentially.
const DefaultWorkers = 1

// Options configures a Sample run.
type Options struct {
	// Workers bounds the number of goroutines evaluating trials.
	// 0 means DefaultWorkers. The worker count never changes the output,
	// only the wall-clock time.
	Workers int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options { return Options{Workers: DefaultWorkers} }

// Sample returns trials statistic values, one per independent uniformly
// random relabeling of member. Draws are generated sequentially from rng
// before any evaluation, so a fixed seed fixes the output regardless of
// worker count. A nil opts selects DefaultOptions. trials == 0 returns an
// empty slice and never touches rng.
func Sample(member []int, trials int, rng *rand.Rand, stat Stat, opts *Options) ([]float64, error) {
	if stat == nil {
		return nil, ErrNilStat
	}
	if trials < 0 {
		return nil, ErrBadTrials
	}

	workers := DefaultWorkers
	if opts != nil {
		if opts.Workers < 0 {
			return nil, ErrBadWorkers
		}
		if opts.Workers > 0 {
			workers = opts.Workers
		}
	}

	if trials == 0 {
		return []float64{}, nil
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	// Pre-generate every draw from the single source; trials stay i.i.d.
	// and the sequence is independent of scheduling below.
	draws := make([][]int, trials)
	for t := range draws {
		p := make([]int, len(member))
		copy(p, member)
		rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
		draws[t] = p
	}

	out := make([]float64, trials)
	if workers == 1 {
		for t, p := range draws {
			out[t] = stat(p)
		}

		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for t := range draws {
		t := t
		g.Go(func() error {
			out[t] = stat(draws[t])

			return nil
		})
	}
	// Workers never fail; Wait only fences completion.
	_ = g.Wait()

	return out, nil
}
