package montecarlo

import "errors"

var (
	// ErrInvalidParameter reports a precondition violation on option or
	// simulation parameters. It is raised before any simulation work begins.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrShapeMismatch reports a price grid whose dimensions cannot be
	// reduced to a price (no terminal column available).
	ErrShapeMismatch = errors.New("grid shape mismatch")
)
