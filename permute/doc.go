// Package permute drives permutation null distributions: it re-evaluates a
// caller-supplied statistic over independent uniformly random relabelings of
// a fixed group assignment.
//
// What:
//
//   - Sample produces one statistic value per trial, each trial drawn as a
//     Fisher–Yates shuffle of a copy of the input assignment. The driver is
//     statistic-agnostic: it never inspects or depends on the statistic's
//     internal computation.
//
// Determinism & Concurrency:
//
//   - All shuffles are generated sequentially from the single injected
//     *rand.Rand, so the output is reproducible for a fixed seed.
//   - Evaluation may fan out across Options.Workers goroutines (errgroup);
//     every trial owns its shuffled copy and writes to a distinct slot, so
//     the result is bit-identical for any worker count.
//
// Errors:
//
//   - ErrNilStat: nil statistic function.
//   - ErrBadTrials: negative trial count.
//   - ErrNilRand: trials > 0 with no random source.
//   - ErrBadWorkers: negative worker count.
//
// Complexity: O(trials·(n + cost(stat))) time, O(trials·n) memory for the
// pre-generated draws.
package permute
