package distmat

import "gonum.org/v1/gonum/mat"

// DistanceMatrix is an immutable n×n symmetric, zero-diagonal, non-negative
// matrix of pairwise dissimilarities together with the ordered sample
// identifiers indexing its rows and columns. Construct one with New or
// FromVectors; the zero value is not usable.
type DistanceMatrix struct {
	ids   []string
	index map[string]int
	data  *mat.SymDense
}

// Len returns the number of samples n.
func (m *DistanceMatrix) Len() int { return len(m.ids) }

// IDs returns a copy of the ordered sample identifiers.
func (m *DistanceMatrix) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}

// ID returns the identifier of sample i.
func (m *DistanceMatrix) ID(i int) string { return m.ids[i] }

// Index returns the row/column position of the given identifier.
func (m *DistanceMatrix) Index(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// At returns the dissimilarity between samples i and j.
// Like gonum matrix accessors, it panics on out-of-range indices.
func (m *DistanceMatrix) At(i, j int) float64 { return m.data.At(i, j) }

// Sym returns a defensive copy of the underlying symmetric matrix.
func (m *DistanceMatrix) Sym() *mat.SymDense {
	out := mat.NewSymDense(m.Len(), nil)
	out.CopySym(m.data)

	return out
}

// Condensed returns the upper triangle (excluding the diagonal) as a flat
// vector: each unordered pair exactly once, in row-major (i, j) order with
// i < j. The result has length n(n-1)/2.
func (m *DistanceMatrix) Condensed() []float64 {
	n := m.Len()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, m.data.At(i, j))
		}
	}

	return out
}
