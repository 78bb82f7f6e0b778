// Package distmat defines the immutable DistanceMatrix shared by the
// ordination and anosim packages, plus the tie-aware rank transform used by
// rank-based tests.
//
// What:
//
//   - DistanceMatrix wraps an n×n symmetric, zero-diagonal, non-negative
//     matrix of pairwise dissimilarities indexed by a fixed sequence of
//     unique sample identifiers. All structural invariants are enforced at
//     construction; downstream consumers never re-validate.
//   - Condensed / CondensedRanks expose the upper triangle as a flat vector
//     (each unordered pair once) and its tie-aware average ranks.
//   - Ranks returns the full symmetric rank matrix with a zero diagonal.
//   - FromVectors builds a DistanceMatrix from raw sample vectors under a
//     pluggable Metric (Euclidean, Manhattan, or any custom function).
//
// Why:
//
//   - Ecology/microbiome workflows: UniFrac or Bray–Curtis matrices feed
//     both PCoA embeddings and ANOSIM group tests from one validated value.
//   - Any pipeline where distances arrive precomputed and must be trusted
//     downstream without repeated shape/symmetry checks.
//
// Errors:
//
//   - ErrEmptyMatrix, ErrNotSquare, ErrIDMismatch, ErrEmptyID,
//     ErrDuplicateID: shape and identifier violations.
//   - ErrAsymmetry, ErrNonZeroDiagonal, ErrNegativeDistance, ErrNaNInf:
//     value-level violations of the distance-matrix contract.
//
// Complexity:
//
//   - New / FromVectors: O(n²) time and memory (FromVectors adds the metric
//     cost per pair).
//   - CondensedRanks / Ranks: O(M log M) with M = n(n-1)/2 pairs.
package distmat
