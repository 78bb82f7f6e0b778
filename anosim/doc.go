// Package anosim implements Analysis of Similarities (ANOSIM, Clarke 1993):
// a rank-based permutation test for whether predefined sample groups are
// more dissimilar between than within.
//
// What:
//
//   - R statistic: R = (r_B − r_W) / (M/2), where r_B and r_W are the mean
//     tie-aware ranks of between- and within-group distance pairs and
//     M = n(n−1)/2 is the pair count. R near 0 means no separation, near 1
//     strong separation; negative R means within-group pairs rank higher.
//   - p-value: fraction of uniformly random group relabelings whose R meets
//     or exceeds the observed one, with add-one smoothing
//     (count+1)/(permutations+1) so it is never exactly zero.
//
// Grouping input:
//
//   - ByPosition: labels aligned with the matrix's identifier order.
//   - ByID: identifier → label mapping (order-independent).
//   - ByColumn: an external tabular collaborator plus a column selector.
//
// All three normalize to the same internal assignment before any statistic
// logic runs; label identity beyond the induced partition never affects R.
// Labels may be any ordered type (numeric or textual).
//
// One-shot vs. reusable:
//
//   - Run recomputes the tie-aware rank transform on every call.
//   - New builds an Analyzer that precomputes ranks once; repeated Run
//     calls with different permutation counts (or concurrently) share the
//     read-only ranks and own their random draws and tallies.
//
// Randomness is injected explicitly via Options.Rand; there is no global
// random state, so identical seeds reproduce identical results.
//
// Errors:
//
//   - ErrNilInput, ErrLengthMismatch, ErrUnknownSample, ErrNilTable:
//     grouping/matrix alignment failures.
//   - ErrSingleGroup: fewer than 2 distinct groups.
//   - ErrNoWithinPairs: every group is a singleton, leaving no within-group
//     pairs for the statistic. (Singleton groups among larger ones are fine.)
//   - ErrBadPermutations, ErrNilRand: permutation configuration failures.
package anosim
