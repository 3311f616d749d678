package cipher

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/alphabet"
)

// Cipher is the capability shared by every algorithm.
type Cipher interface {
	// Algorithm identifies the implementation.
	Algorithm() Algorithm

	// Encrypt transforms plaintext with key.
	Encrypt(text, key string) (string, error)

	// Decrypt reverses Encrypt for the same key.
	Decrypt(text, key string) (string, error)
}

// Option configures ciphers built by [New].
type Option func(*options)

type options struct {
	rand *lockedRand
}

// lockedRand serializes access to a source shared by several ciphers.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// WithRand sets the random source zig-zag encryption pads with. It has no
// effect on the other algorithms. Ciphers built with the same Option share r
// safely.
func WithRand(r *rand.Rand) Option {
	lr := &lockedRand{r: r}
	return func(o *options) {
		o.rand = lr
	}
}

// New returns the cipher for alg.
func New(alg Algorithm, opts ...Option) (Cipher, error) {
	switch alg {
	case AlgorithmCaesar:
		return NewCaesar(), nil
	case AlgorithmVigenere:
		return Vigenere{}, nil
	case AlgorithmWolseley:
		return Wolseley{}, nil
	case AlgorithmZigZag:
		return NewZigZag(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// Apply runs c in the given mode.
func Apply(c Cipher, mode Mode, text, key string) (string, error) {
	switch mode {
	case ModeEncrypt:
		return c.Encrypt(text, key)
	case ModeDecrypt:
		return c.Decrypt(text, key)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// Transform builds the cipher for alg and applies it in mode.
func Transform(mode Mode, alg Algorithm, text, key string, opts ...Option) (string, error) {
	c, err := New(alg, opts...)
	if err != nil {
		return "", err
	}
	return Apply(c, mode, text, key)
}

// validateLetters checks that key is a non-empty run of Alphabet letters.
func validateLetters(alg Algorithm, key string) error {
	if key == "" {
		return fmt.Errorf("%w: %s key must not be empty", ErrInvalidKey, alg)
	}
	for i, c := range key {
		if !alphabet.Contains(c) {
			return fmt.Errorf("%w: %s key has %q at position %d, want A-Z", ErrInvalidKey, alg, c, i)
		}
	}
	return nil
}
