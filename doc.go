// Package ordstat is a small statistics toolkit for symmetric dissimilarity
// matrices: ordination embeddings and rank-based group-separation tests.
//
// 🚀 What is ordstat?
//
//	A focused library that brings together:
//		• distmat/     — validated, immutable DistanceMatrix + tie-aware rank transform
//		• ordination/  — Principal Coordinate Analysis (PCoA / classical MDS)
//		• anosim/      — Analysis of Similarities (Clarke's R + permutation test)
//		• permute/     — statistic-agnostic permutation driver
//
// ✨ Why choose ordstat?
//
//   - Explicit numerics – semimetric inputs surface as errors, never as a
//     silently distorted embedding
//   - Reproducible – every random draw comes from an injected *rand.Rand,
//     no global state
//   - Concurrency-ready – permutation trials fan out across workers without
//     changing the result
//   - Dense linear algebra delegated to gonum, not reimplemented
//
// Quick sketch:
//
//	dm, _  := distmat.New(distances, ids)
//	ord, _ := ordination.PCoA(dm)
//	res, _ := anosim.Run(dm, anosim.ByPosition(groups), &anosim.Options{
//		Permutations: 999,
//		Rand:         rand.New(rand.NewSource(42)),
//	})
//
// Dive into each package's doc.go for contracts, error sets and examples.
package ordstat
