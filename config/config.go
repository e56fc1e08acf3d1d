package config

// Policy decides the fate of a frequency that lies outside the legal
// range.
type Policy uint8

const (
	// Reject makes the codec fail the whole request with an error.
	Reject Policy = iota + 1
	// Clamp silently saturates the offending frequency at the maximal
	// legal value.
	Clamp
)

type (
	Input struct {
		// OutOfRange selects what happens to frequencies above
		// huffcode.MaxFrequency. The legacy packed-word interface cannot
		// produce such values, so the policy only matters for the slice
		// boundary.
		OutOfRange Policy
	}

	Output struct {
		// Labels assigns a printable character to every symbol id, in id
		// order. Purely cosmetic: rendering uses it, packing never does.
		Labels string
	}
)

// Config holds the boundary settings of the codec. Always start from
// Default() and override what you need instead of constructing the
// struct manually.
type Config struct {
	Input  Input
	Output Output
}

// Default returns the default config: out-of-range frequencies are
// rejected, symbols render as a through e.
func Default() *Config {
	return &Config{
		Input: Input{
			OutOfRange: Reject,
		},
		Output: Output{
			Labels: "abcde",
		},
	}
}
