package anosim

import "errors"

var (
	// ErrNilInput indicates a nil distance matrix argument.
	ErrNilInput = errors.New("anosim: nil distance matrix")
	// ErrLengthMismatch indicates a positional label sequence whose length
	// differs from the number of samples.
	ErrLengthMismatch = errors.New("anosim: label count does not match sample count")
	// ErrUnknownSample indicates a matrix identifier with no label in the
	// grouping mapping or table column.
	ErrUnknownSample = errors.New("anosim: sample identifier missing from grouping")
	// ErrNilTable indicates a ByColumn grouping over a nil table.
	ErrNilTable = errors.New("anosim: grouping table is nil")
	// ErrSingleGroup indicates fewer than two distinct groups.
	ErrSingleGroup = errors.New("anosim: grouping must induce at least two groups")
	// ErrNoWithinPairs indicates every group is a singleton: the statistic
	// needs at least one within-group pair.
	ErrNoWithinPairs = errors.New("anosim: grouping leaves no within-group pairs")
	// ErrBadPermutations indicates a negative permutation count.
	ErrBadPermutations = errors.New("anosim: permutation count must be >= 0")
	// ErrNilRand indicates permutations were requested without a random source.
	ErrNilRand = errors.New("anosim: random source is nil")
)
