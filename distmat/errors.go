package distmat

import "errors"

var (
	// ErrEmptyMatrix indicates the input has no rows.
	ErrEmptyMatrix = errors.New("distmat: matrix must have at least one row")
	// ErrNotSquare indicates a row length differs from the number of rows.
	ErrNotSquare = errors.New("distmat: matrix is not square")
	// ErrIDMismatch indicates the identifier count differs from the matrix size.
	ErrIDMismatch = errors.New("distmat: identifier count does not match matrix size")
	// ErrEmptyID indicates an empty sample identifier.
	ErrEmptyID = errors.New("distmat: sample identifier is empty")
	// ErrDuplicateID indicates a repeated sample identifier.
	ErrDuplicateID = errors.New("distmat: duplicate sample identifier")
	// ErrAsymmetry indicates d[i][j] != d[j][i] for some pair.
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric")
	// ErrNonZeroDiagonal indicates a non-zero self-distance.
	ErrNonZeroDiagonal = errors.New("distmat: diagonal entry is not zero")
	// ErrNegativeDistance indicates a negative dissimilarity.
	ErrNegativeDistance = errors.New("distmat: negative distance")
	// ErrNaNInf indicates a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("distmat: NaN or Inf encountered")
	// ErrVectorLength indicates sample vectors of differing lengths.
	ErrVectorLength = errors.New("distmat: sample vectors must share one length")
)
