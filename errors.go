package tricolor

import "errors"

var (
	// ErrInvalidDensity is returned when the lattice density is out of range.
	ErrInvalidDensity = errors.New("tricolor: invalid density")

	// ErrNilSurface is returned when no drawing surface has been provided.
	ErrNilSurface = errors.New("tricolor: nil surface")
)
