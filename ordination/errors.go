package ordination

import "errors"

var (
	// ErrNilInput indicates a nil distance matrix argument.
	ErrNilInput = errors.New("ordination: nil distance matrix")
	// ErrEigenFailed indicates the symmetric eigendecomposition did not converge.
	ErrEigenFailed = errors.New("ordination: eigendecomposition failed")
	// ErrNegativeEigenvalue indicates eigenvalues below the clamp tolerance:
	// the input dissimilarities violate metric assumptions (semimetric).
	ErrNegativeEigenvalue = errors.New("ordination: negative eigenvalues appeared; input distances are semimetric")
)
