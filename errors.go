package lut

import "errors"

// Errors returned by NewGammaLUT and Init. Construction errors wrap these
// with the offending values; test for them with errors.Is.
var (
	// ErrInvalidBitDepth is returned when the target bit depth is outside [1, 16].
	ErrInvalidBitDepth = errors.New("lut: bit depth must be in [1, 16]")

	// ErrZeroSourceMax is returned when a channel of the color type reports
	// a maximum of zero, which would make the source range empty.
	ErrZeroSourceMax = errors.New("lut: channel maximum must be positive")

	// ErrTableTooSmall is returned when a channel can hold levels that would
	// index past the end of a 2^bits table.
	ErrTableTooSmall = errors.New("lut: table too small for color type")

	// ErrConsumed is returned by Init on a builder that was already initialized.
	ErrConsumed = errors.New("lut: builder already consumed")
)
