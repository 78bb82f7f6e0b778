package ordination

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ordstat/distmat"
)

// zeroTol bounds how far below zero an eigenvalue may fall and still be
// treated as floating-point noise rather than a semimetric violation.
const zeroTol = 1e-10

// PCoA computes the principal-coordinate embedding of dm.
//
// Steps: Gower transformation E = -d²/2, double centering
// F = E - rowMean - colMean + grandMean, dense symmetric
// eigendecomposition of F, near-zero clamp, descending sort, and per-axis
// scaling of the orthonormal eigenvectors by sqrt(eigenvalue).
func PCoA(dm *distmat.DistanceMatrix) (*Result, error) {
	if dm == nil {
		return nil, ErrNilInput
	}
	n := dm.Len()

	// Gower's transformation: E[i][j] = -d[i][j]² / 2.
	e := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d := dm.At(i, j)
			e.SetSym(i, j, -(d*d)/2)
		}
	}

	// Double centering. E is symmetric, so row and column means coincide.
	means := make([]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += e.At(i, j)
		}
		means[i] = s / float64(n)
	}
	grand := floats.Sum(means) / float64(n)

	f := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			f.SetSym(i, j, e.At(i, j)-means[i]-means[j]+grand)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(f, true) {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Clamp eigenvalues that undershoot zero within tolerance; anything
	// beyond the tolerance is a genuine metric violation and must surface.
	for i, v := range vals {
		if v < 0 && v > -zeroTol {
			vals[i] = 0
		}
	}
	if minVal := floats.Min(vals); minVal < 0 {
		return nil, fmt.Errorf("minimum eigenvalue %v: %w", minVal, ErrNegativeEigenvalue)
	}

	// EigenSym reports eigenvalues in ascending order; reverse values and
	// eigenvector columns together so pairing is preserved. Scaling by
	// sqrt(eigenvalue) is valid because the eigenvectors are unit-normalized.
	eigvals := make([]float64, n)
	coords := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		src := n - 1 - k
		eigvals[k] = vals[src]
		scale := math.Sqrt(vals[src])
		for i := 0; i < n; i++ {
			coords.Set(i, k, vecs.At(i, src)*scale)
		}
	}

	var prop []float64
	if total := floats.Sum(eigvals); total > 0 {
		prop = make([]float64, n)
		for k, v := range eigvals {
			prop[k] = v / total
		}
	}

	return &Result{Eigvals: eigvals, Coordinates: coords, Proportion: prop}, nil
}
