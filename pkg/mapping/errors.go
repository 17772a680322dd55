package mapping

import "errors"

var (
	// ErrBadLutSize is returned for a LUT size outside the supported range.
	ErrBadLutSize = errors.New("lut size out of range")

	// ErrTruthUnsupported is returned when truth-table computation is
	// requested for a LUT size above the single-word limit.
	ErrTruthUnsupported = errors.New("truth tables require lut size <= 6")

	// ErrEmptyNetwork is returned when a manager is built over a network
	// with no primary outputs.
	ErrEmptyNetwork = errors.New("network has no outputs to map")
)
