package anosim

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/ordstat/distmat"
	"github.com/katalvlaran/ordstat/permute"
)

// Analyzer precomputes the tie-aware rank transform for one
// (matrix, grouping) pair so repeated permutation runs skip the ranking
// pass. It is immutable after New; concurrent Run calls share the
// read-only ranks and own their draws and tallies.
type Analyzer[L cmp.Ordered] struct {
	n      int
	member []int
	groups []L
	ranks  []float64 // condensed, pair (i,j) with i<j in row-major order
	denom  float64   // M/2 with M = n(n-1)/2 pairs
}

// New validates the grouping against dm and precomputes the condensed
// tie-aware ranks.
func New[L cmp.Ordered](dm *distmat.DistanceMatrix, grouping Grouping[L]) (*Analyzer[L], error) {
	if dm == nil {
		return nil, ErrNilInput
	}

	member, groups, err := grouping.resolve(dm.IDs())
	if err != nil {
		return nil, err
	}
	if len(groups) < 2 {
		return nil, ErrSingleGroup
	}
	n := dm.Len()
	if len(groups) == n {
		return nil, ErrNoWithinPairs
	}

	return &Analyzer[L]{
		n:      n,
		member: member,
		groups: groups,
		ranks:  dm.CondensedRanks(),
		denom:  float64(n*(n-1)) / 4,
	}, nil
}

// statistic computes Clarke's R for one group assignment over the
// precomputed ranks. The within/between pair counts depend only on the
// label multiset, which permutation preserves, so both are non-zero here
// by New's validation.
func (a *Analyzer[L]) statistic(member []int) float64 {
	var withinSum, betweenSum float64
	var withinN, betweenN int
	p := 0
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if member[i] == member[j] {
				withinSum += a.ranks[p]
				withinN++
			} else {
				betweenSum += a.ranks[p]
				betweenN++
			}
			p++
		}
	}
	rB := betweenSum / float64(betweenN)
	rW := withinSum / float64(withinN)

	return (rB - rW) / a.denom
}

// Run computes the observed R and, when opts.Permutations > 0, the
// permutation p-value over the precomputed ranks.
//
// A nil opts selects DefaultOptions, whose Rand is deliberately nil: there
// is no implicit seed, so nil opts (or any Options with Permutations > 0
// and no Rand) fails with ErrNilRand naming the missing field. Pass
// Options{Permutations: 0} for an R-only run, or set Options.Rand.
func (a *Analyzer[L]) Run(opts *Options) (Result[L], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Permutations < 0 {
		return Result[L]{}, ErrBadPermutations
	}
	if o.Permutations > 0 && o.Rand == nil {
		return Result[L]{}, fmt.Errorf("Options.Rand is required for %d permutations: %w", o.Permutations, ErrNilRand)
	}

	r := a.statistic(a.member)

	pValue := math.NaN()
	if o.Permutations > 0 {
		stats, err := permute.Sample(a.member, o.Permutations, o.Rand, a.statistic,
			&permute.Options{Workers: o.Workers})
		if err != nil {
			return Result[L]{}, err
		}
		ge := 0
		for _, s := range stats {
			if s >= r {
				ge++
			}
		}
		// Add-one smoothing keeps a finite resample from claiming p == 0.
		pValue = float64(ge+1) / float64(o.Permutations+1)
	}

	return Result[L]{
		Method:       MethodName,
		SampleSize:   a.n,
		NumGroups:    len(a.groups),
		R:            r,
		PValue:       pValue,
		Permutations: o.Permutations,
		Groups:       slices.Clone(a.groups),
	}, nil
}

// Run is the one-shot form: it builds a throwaway Analyzer, recomputing
// the rank transform on every call. Prefer New for repeated runs over the
// same inputs.
func Run[L cmp.Ordered](dm *distmat.DistanceMatrix, grouping Grouping[L], opts *Options) (Result[L], error) {
	a, err := New(dm, grouping)
	if err != nil {
		return Result[L]{}, err
	}

	return a.Run(opts)
}
