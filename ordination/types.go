package ordination

import "gonum.org/v1/gonum/mat"

// Method name constants, fixed for interoperability with other PCoA
// implementations.
const (
	ShortName = "PCoA"
	LongName  = "Principal Coordinate Analysis"
)

// Result is an immutable PCoA ordination.
//
// Eigvals holds the n eigenvalues of the doubly-centered matrix in
// descending order; near-zero negatives are clamped to exactly 0, and at
// least one entry is ~0 for n >= 2. Coordinates is n×n with row i the
// embedding of sample i; column k is the k-th eigenvector scaled by
// sqrt(Eigvals[k]), so zero-eigenvalue axes are all-zero. Proportion is the
// fraction of total eigenvalue mass carried by each axis, or nil when the
// total is zero (single-sample input).
type Result struct {
	Eigvals     []float64
	Coordinates *mat.Dense
	Proportion  []float64
}
