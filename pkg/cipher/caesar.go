package cipher

import "github.com/doodlesbykumbi/ciphers-in-go/pkg/alphabet"

// CaesarShift is the fixed left rotation applied to the alphabet.
const CaesarShift = 3

// Caesar substitutes every letter with the one CaesarShift places later. The
// key is accepted for interface uniformity and ignored.
type Caesar struct {
	perm alphabet.Permutation
}

// NewCaesar returns a Caesar cipher.
func NewCaesar() Caesar {
	return Caesar{perm: alphabet.Permutation(alphabet.RotateLeft(alphabet.Alphabet, CaesarShift))}
}

func (Caesar) Algorithm() Algorithm {
	return AlgorithmCaesar
}

func (c Caesar) Encrypt(text, _ string) (string, error) {
	return c.permutation().Encrypt(text), nil
}

func (c Caesar) Decrypt(text, _ string) (string, error) {
	return c.permutation().Decrypt(text), nil
}

// permutation keeps the zero value usable.
func (c Caesar) permutation() alphabet.Permutation {
	if c.perm == "" {
		return NewCaesar().perm
	}
	return c.perm
}
