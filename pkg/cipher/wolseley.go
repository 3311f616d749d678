package cipher

import (
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/alphabet"
)

// squareSize is the number of slots in the keyed square; I and J share one.
const squareSize = alphabet.Size - 1

// Wolseley is a monoalphabetic substitution read from a keyed square: each
// letter is replaced by the letter in the mirrored slot. The square is rebuilt
// from the key on every call.
type Wolseley struct{}

func (Wolseley) Algorithm() Algorithm {
	return AlgorithmWolseley
}

func (Wolseley) Encrypt(text, key string) (string, error) {
	perm, err := WolseleyPermutation(key)
	if err != nil {
		return "", err
	}
	return perm.Encrypt(text), nil
}

func (Wolseley) Decrypt(text, key string) (string, error) {
	perm, err := WolseleyPermutation(key)
	if err != nil {
		return "", err
	}
	return perm.Decrypt(text), nil
}

// WolseleySquare lays out the key letters, then the rest of the alphabet, in
// squareSize slots. Repeated letters are skipped and whichever of I or J comes
// first takes the shared slot.
func WolseleySquare(key string) (string, error) {
	square, _, err := wolseleySquare(key)
	return square, err
}

// WolseleyPermutation maps every letter to the square entry mirrored from its
// slot. I and J map to the same letter.
func WolseleyPermutation(key string) (alphabet.Permutation, error) {
	square, slots, err := wolseleySquare(key)
	if err != nil {
		return "", err
	}

	perm := make([]byte, alphabet.Size)
	for i := range perm {
		perm[i] = square[squareSize-1-slots[i]]
	}
	return alphabet.Permutation(perm), nil
}

func wolseleySquare(key string) (string, [alphabet.Size]int, error) {
	var slots [alphabet.Size]int
	if err := validateLetters(AlgorithmWolseley, key); err != nil {
		return "", slots, err
	}

	const i, j = 'I' - 'A', 'J' - 'A'
	var placed [alphabet.Size]bool
	square := make([]byte, 0, squareSize)
	place := func(c byte) {
		n := c - 'A'
		if placed[n] {
			return
		}
		if n == i || n == j {
			placed[i], placed[j] = true, true
			slots[i], slots[j] = len(square), len(square)
		} else {
			placed[n] = true
			slots[n] = len(square)
		}
		square = append(square, c)
	}

	for k := 0; k < len(key); k++ {
		place(key[k])
	}
	for k := 0; k < alphabet.Size; k++ {
		place(alphabet.Alphabet[k])
	}
	return string(square), slots, nil
}
