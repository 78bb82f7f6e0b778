package distmat

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CondensedRanks returns the tie-aware average ranks (1-based) of the
// condensed distances, aligned with Condensed's pair order. Tied values
// receive the mean of the ranks they would jointly occupy, so the rank sum
// is always M(M+1)/2 for M = n(n-1)/2 pairs.
func (m *DistanceMatrix) CondensedRanks() []float64 {
	return rankAverage(m.Condensed())
}

// Ranks returns the full n×n symmetric rank matrix built from the condensed
// ranks. The diagonal is zero and carries no meaning; only off-diagonal
// entries are ranked.
func (m *DistanceMatrix) Ranks() *mat.SymDense {
	n := m.Len()
	ranks := m.CondensedRanks()
	out := mat.NewSymDense(n, nil)
	p := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out.SetSym(i, j, ranks[p])
			p++
		}
	}

	return out
}

// rankAverage assigns each value its 1-based rank in ascending order,
// averaging ranks within runs of exactly equal values.
func rankAverage(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	ranks := make([]float64, n)
	for lo := 0; lo < n; {
		hi := lo + 1
		for hi < n && values[order[hi]] == values[order[lo]] {
			hi++
		}
		// Positions lo..hi-1 hold ranks lo+1..hi; ties share the average.
		avg := float64(lo+hi+1) / 2
		for k := lo; k < hi; k++ {
			ranks[order[k]] = avg
		}
		lo = hi
	}

	return ranks
}
