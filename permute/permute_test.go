package permute_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ordstat/permute"
)

// sumStat is an order-sensitive statistic: Σ i·member[i]. Two assignments
// produce the same value only if they weight positions identically, which
// makes it a good probe for shuffle behavior.
func sumStat(member []int) float64 {
	var s float64
	for i, m := range member {
		s += float64(i) * float64(m)
	}

	return s
}

// TestSample_Errors walks the argument guards.
func TestSample_Errors(t *testing.T) {
	member := []int{0, 0, 1, 1}
	rng := rand.New(rand.NewSource(1))

	_, err := permute.Sample(member, 10, rng, nil, nil)
	assert.ErrorIs(t, err, permute.ErrNilStat)

	_, err = permute.Sample(member, -1, rng, sumStat, nil)
	assert.ErrorIs(t, err, permute.ErrBadTrials)

	_, err = permute.Sample(member, 10, nil, sumStat, nil)
	assert.ErrorIs(t, err, permute.ErrNilRand)

	_, err = permute.Sample(member, 10, rng, sumStat, &permute.Options{Workers: -1})
	assert.ErrorIs(t, err, permute.ErrBadWorkers)
}

// TestSample_ZeroTrials returns an empty slice without consuming the rng.
func TestSample_ZeroTrials(t *testing.T) {
	out, err := permute.Sample([]int{0, 1}, 0, nil, sumStat, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestSample_Deterministic verifies a fixed seed fixes the whole sequence.
func TestSample_Deterministic(t *testing.T) {
	member := []int{0, 0, 1, 1, 2, 2}

	a, err := permute.Sample(member, 100, rand.New(rand.NewSource(7)), sumStat, nil)
	require.NoError(t, err)
	b, err := permute.Sample(member, 100, rand.New(rand.NewSource(7)), sumStat, nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestSample_WorkerInvariance verifies the worker count never changes the
// output, only the scheduling.
func TestSample_WorkerInvariance(t *testing.T) {
	member := []int{0, 0, 0, 1, 1, 2}

	seq, err := permute.Sample(member, 200, rand.New(rand.NewSource(11)), sumStat, &permute.Options{Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8} {
		par, err := permute.Sample(member, 200, rand.New(rand.NewSource(11)), sumStat, &permute.Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d", workers)
	}
}

// TestSample_PreservesMultiset verifies every draw is a permutation of the
// input assignment (labels shuffled, never altered) and that the input
// itself is untouched.
func TestSample_PreservesMultiset(t *testing.T) {
	member := []int{0, 1, 1, 2, 2, 2}
	original := append([]int(nil), member...)

	seen := make(map[float64]int)
	multisetStat := func(m []int) float64 {
		sorted := append([]int(nil), m...)
		sort.Ints(sorted)
		assert.Equal(t, original, sorted, "draw must be a permutation of the input")

		return sumStat(m)
	}

	out, err := permute.Sample(member, 50, rand.New(rand.NewSource(3)), multisetStat, nil)
	require.NoError(t, err)
	require.Len(t, out, 50)
	for _, v := range out {
		seen[v]++
	}
	assert.Greater(t, len(seen), 1, "shuffles must actually vary the assignment")
	assert.Equal(t, original, member, "input assignment must not be mutated")
}
