package distmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// New builds a validated DistanceMatrix from a square slice of pairwise
// dissimilarities and the matching sample identifiers. The data is copied;
// later mutation of the input does not affect the returned matrix.
//
// Validation enforces, in order: at least one row, one identifier per row,
// non-empty unique identifiers, square shape, finite entries, non-negative
// entries, a zero diagonal, and symmetry (exact equality; callers that need
// tolerance should symmetrize beforehand).
func New(data [][]float64, ids []string) (*DistanceMatrix, error) {
	n := len(data)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%d identifiers for %d rows: %w", len(ids), n, ErrIDMismatch)
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("position %d: %w", i, ErrEmptyID)
		}
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%q: %w", id, ErrDuplicateID)
		}
		index[id] = i
	}

	sym := mat.NewSymDense(n, nil)
	for i, row := range data {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			if v < 0 {
				return nil, fmt.Errorf("entry (%d,%d) = %v: %w", i, j, v, ErrNegativeDistance)
			}
			if i == j && v != 0 {
				return nil, fmt.Errorf("entry (%d,%d) = %v: %w", i, i, v, ErrNonZeroDiagonal)
			}
			if j < i && data[j][i] != v {
				return nil, fmt.Errorf("entries (%d,%d) and (%d,%d) differ: %w", i, j, j, i, ErrAsymmetry)
			}
			if j > i {
				sym.SetSym(i, j, v)
			}
		}
	}

	owned := make([]string, n)
	copy(owned, ids)

	return &DistanceMatrix{ids: owned, index: index, data: sym}, nil
}
