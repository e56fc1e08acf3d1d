package huffcode

import "errors"

var (
	// ErrAlphabetSize is returned when a frequency slice does not contain
	// exactly one value per alphabet symbol.
	ErrAlphabetSize = errors.New("huffcode: frequency vector must have exactly 5 entries")
	// ErrFrequencyRange is returned under config.Reject when a frequency
	// lies outside [0, MaxFrequency].
	ErrFrequencyRange = errors.New("huffcode: frequency out of range")
)
