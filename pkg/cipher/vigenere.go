package cipher

import (
	"strings"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/alphabet"
)

// Vigenere rotates the alphabet by a different amount for every rune: the
// index of the key letter at the same position, with the key repeated over the
// text. Passthrough runes still consume a key letter.
type Vigenere struct{}

func (Vigenere) Algorithm() Algorithm {
	return AlgorithmVigenere
}

func (Vigenere) Encrypt(text, key string) (string, error) {
	return vigenere(text, key, alphabet.Permutation.EncryptRune)
}

func (Vigenere) Decrypt(text, key string) (string, error) {
	return vigenere(text, key, alphabet.Permutation.DecryptRune)
}

// VigenerePermutations returns the permutation used at each key position.
func VigenerePermutations(key string) ([]alphabet.Permutation, error) {
	if err := validateLetters(AlgorithmVigenere, key); err != nil {
		return nil, err
	}
	perms := make([]alphabet.Permutation, len(key))
	for i := 0; i < len(key); i++ {
		shift := alphabet.Index(rune(key[i]))
		perms[i] = alphabet.Permutation(alphabet.RotateLeft(alphabet.Alphabet, shift))
	}
	return perms, nil
}

func vigenere(text, key string, apply func(alphabet.Permutation, rune) rune) (string, error) {
	perms, err := VigenerePermutations(key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for _, c := range text {
		b.WriteRune(apply(perms[i], c))
		i = (i + 1) % len(perms)
	}
	return b.String(), nil
}
