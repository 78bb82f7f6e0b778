// Package ordination implements Principal Coordinate Analysis (PCoA, also
// known as classical or metric multidimensional scaling) over a validated
// distance matrix.
//
// What:
//
//   - PCoA transforms pairwise dissimilarities into an n-axis coordinate
//     embedding whose Euclidean distances reproduce the input as closely as
//     the data permits (Gower transformation + double centering + dense
//     symmetric eigendecomposition, Legendre & Legendre 1998 §9.2).
//
// Why:
//
//   - Visualize community or sample structure from ecologically meaningful
//     distances (UniFrac, Bray–Curtis) where plain PCA is inappropriate.
//   - Feed downstream clustering with coordinates instead of distances.
//
// Numerics:
//
//   - Eigenvalues within 1e-10 below zero are clamped to exactly 0; this is
//     floating-point noise, not signal.
//   - Any eigenvalue surviving the clamp strictly negative means the input
//     violates metric assumptions (a semimetric): PCoA fails with
//     ErrNegativeEigenvalue instead of returning a distorted embedding.
//     Taking absolute values of negative eigenvalues is not an accepted
//     correction and is deliberately not offered.
//   - At least one eigenvalue is always ~0: n points need at most n-1 axes.
//
// Errors:
//
//   - ErrNilInput: nil *distmat.DistanceMatrix.
//   - ErrEigenFailed: the symmetric eigensolver did not converge.
//   - ErrNegativeEigenvalue: semimetric input, see above.
//
// Complexity: O(n³) time (dense eigendecomposition), O(n²) memory.
package ordination
