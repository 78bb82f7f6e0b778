package anosim

import (
	"cmp"
	"math/rand"
)

// MethodName is the fixed method identifier carried by every Result.
const MethodName = "ANOSIM"

// DefaultPermutations is the conventional permutation-test size.
const DefaultPermutations = 999

// Options configures a single ANOSIM run.
type Options struct {
	// Permutations is the number of random relabelings in the null
	// distribution. 0 skips the test entirely; the Result's PValue is NaN.
	Permutations int

	// Rand supplies every random draw for the run. Required when
	// Permutations > 0; there is no implicit global fallback.
	Rand *rand.Rand

	// Workers bounds concurrent permutation evaluation. 0 or 1 is
	// sequential; any value leaves the result unchanged.
	Workers int
}

// DefaultOptions returns the documented defaults. Rand stays nil because
// the caller must decide the seed, so the defaults alone cannot drive a
// permutation run: Run rejects Permutations > 0 without a Rand. Set Rand,
// or set Permutations to 0 for an R-only run.
func DefaultOptions() Options {
	return Options{Permutations: DefaultPermutations, Workers: 1}
}

// Result packages one ANOSIM run. The leading field order is fixed for
// interoperability: method name, sample size, number of groups, R
// statistic, p-value, number of permutations.
type Result[L cmp.Ordered] struct {
	Method       string
	SampleSize   int
	NumGroups    int
	R            float64
	PValue       float64 // NaN when Permutations == 0
	Permutations int

	// Groups lists the distinct labels in ascending order.
	Groups []L
}
