package simgo

import "errors"

var (
	// ErrInvalidDamping is returned when the damping factor is outside (0, 1].
	ErrInvalidDamping = errors.New("damping must be in (0, 1]")

	// ErrInvalidMaxIterations is returned when the iteration cap is not positive.
	ErrInvalidMaxIterations = errors.New("max iterations must be positive")

	// ErrInvalidTolerance is returned when the convergence tolerance is not positive.
	ErrInvalidTolerance = errors.New("tolerance must be positive")
)
