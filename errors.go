package spatial

import "errors"

// Sentinel errors returned by constructors and operations in this package.
// Callers match them with errors.Is; every returned error wraps exactly one
// of these.
var (
	// ErrInvalidValue reports a non-finite (NaN or ±Inf) component passed
	// to a constructor.
	ErrInvalidValue = errors.New("invalid value")

	// ErrZeroMagnitude reports an inversion, normalization or division
	// attempted on a quaternion whose norm is at or below the zero
	// threshold.
	ErrZeroMagnitude = errors.New("zero magnitude")

	// ErrInvalidRotation reports a quaternion that cannot represent a
	// rotation even after the zero-quaternion substitution.
	ErrInvalidRotation = errors.New("invalid rotation")

	// ErrNotOrthogonal reports a matrix that fails the m·mᵀ ≈ I rotation
	// check.
	ErrNotOrthogonal = errors.New("matrix is not orthogonal")

	// ErrWrongShape reports a matrix input smaller than 3×3.
	ErrWrongShape = errors.New("matrix has wrong shape")
)
