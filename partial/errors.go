package partial

import "errors"

// Sentinel errors for partial dump operations.
var (
	// ErrUsage is returned when multiple values are supplied without a
	// trailing Options as the final argument.
	ErrUsage = errors.New("multiple values require trailing Options")
)
