package arr

import "errors"

// Sentinel errors returned by the arr codecs and helpers.
var (
	// ErrCycle is returned when a value refers back to one of its own
	// containers and therefore cannot be encoded.
	ErrCycle = errors.New("arr: value contains a reference cycle")

	// ErrUnsupportedValue is returned when a value has no JSON or YAML
	// representation (NaN, channels, functions, …) or when the input
	// document cannot be decoded.
	ErrUnsupportedValue = errors.New("arr: unsupported value")

	// ErrMismatchedLengths is returned by [Combine] when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")
)
