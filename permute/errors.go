package permute

import "errors"

var (
	// ErrNilStat indicates a nil statistic function.
	ErrNilStat = errors.New("permute: statistic function is nil")
	// ErrBadTrials indicates a negative trial count.
	ErrBadTrials = errors.New("permute: trial count must be >= 0")
	// ErrNilRand indicates trials were requested without a random source.
	ErrNilRand = errors.New("permute: random source is nil")
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("permute: worker count must be >= 0")
)
