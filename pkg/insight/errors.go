package insight

import "errors"

// Error taxonomy for the metric functions. Callers classify failures with
// errors.Is rather than matching message text.
var (
	// ErrInputType marks arguments of the wrong kind: graph values where a
	// label array is expected, or array pairs whose shapes cannot be compared.
	ErrInputType = errors.New("invalid input type")

	// ErrInputValue marks malformed contents: empty arrays, non-contiguous
	// label sets, reference labelings without a usable domain, non-positive
	// trial counts.
	ErrInputValue = errors.New("invalid input value")
)
