package toroid

import "errors"

// Sentinel errors for the optimizer. Callers should match with errors.Is;
// every failure returned by this package wraps one of these.
var (
	// ErrInvalidArgument indicates a non-physical input such as a
	// non-positive wire diameter or an unsupported aspect ratio.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrGeometryInfeasible indicates the requested winding cannot be
	// packed, e.g. the wire is too thick for the computed bore.
	ErrGeometryInfeasible = errors.New("geometry infeasible")

	// ErrRootFindFailure indicates the winding parameter solve did not
	// converge inside the search bracket.
	ErrRootFindFailure = errors.New("root finding failed")
)
