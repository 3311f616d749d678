package cipher

import (
	"fmt"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type Algorithm -trimprefix Algorithm -transform lower -text -yaml -output algorithm.gen.go

// Algorithm identifies one of the supported ciphers.
type Algorithm int

const (
	AlgorithmCaesar Algorithm = iota
	AlgorithmVigenere
	AlgorithmWolseley
	AlgorithmZigZag
)

// ParseAlgorithm looks up an algorithm by name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg, err := AlgorithmString(strings.TrimSpace(name))
	if err != nil {
		return 0, fmt.Errorf("%w %q (supported: %s)", ErrUnknownAlgorithm, name, strings.Join(AlgorithmStrings(), ", "))
	}
	return alg, nil
}

// Substitution reports whether the algorithm maps text rune by rune, keeping
// every rune in place.
func (a Algorithm) Substitution() bool {
	return a != AlgorithmZigZag
}

// KeyDescription says what the algorithm expects as key.
func (a Algorithm) KeyDescription() string {
	switch a {
	case AlgorithmCaesar:
		return "ignored"
	case AlgorithmVigenere:
		return "uppercase letters, repeated over the text"
	case AlgorithmWolseley:
		return "uppercase keyword seeding the square"
	case AlgorithmZigZag:
		return "positive integer column width"
	default:
		return "unknown"
	}
}
