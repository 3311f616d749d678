package cipher

import "errors"

var (
	// ErrInvalidKey is returned when a key is empty, holds characters the
	// algorithm cannot use, or does not parse.
	ErrInvalidKey = errors.New("cipher: invalid key")

	// ErrUnknownAlgorithm is returned for algorithm names outside the supported set.
	ErrUnknownAlgorithm = errors.New("cipher: unknown algorithm")

	// ErrUnknownMode is returned for modes other than encrypt and decrypt.
	ErrUnknownMode = errors.New("cipher: unknown mode")

	// ErrMalformedInput is returned when a ciphertext cannot have been produced
	// by the algorithm, such as a zig-zag text that does not fill its grid.
	ErrMalformedInput = errors.New("cipher: malformed input")
)
