package distmat

import (
	"fmt"
	"math"
)

// Metric computes the dissimilarity between two equal-length sample vectors.
// Implementations must be symmetric and return 0 for identical inputs.
type Metric interface {
	Distance(a, b []float64) float64
}

// MetricFunc adapts a plain function into a Metric.
type MetricFunc func(a, b []float64) float64

// Distance calls f.
func (f MetricFunc) Distance(a, b []float64) float64 { return f(a, b) }

// Euclidean is the L2 metric.
type Euclidean struct{}

// Distance returns sqrt(Σ (a_i - b_i)²).
func (Euclidean) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Manhattan is the L1 (city-block) metric.
type Manhattan struct{}

// Distance returns Σ |a_i - b_i|.
func (Manhattan) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// FromVectors builds a DistanceMatrix by evaluating metric on every unordered
// pair of sample vectors. All vectors must share one length; ids follow the
// same rules as New. The metric is evaluated once per pair and mirrored, so
// the result is symmetric by construction.
func FromVectors(vectors [][]float64, ids []string, metric Metric) (*DistanceMatrix, error) {
	n := len(vectors)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if metric == nil {
		metric = Euclidean{}
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d has length %d, want %d: %w", i, len(v), dim, ErrVectorLength)
		}
	}

	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(vectors[i], vectors[j])
			data[i][j] = d
			data[j][i] = d
		}
	}

	return New(data, ids)
}
