package alphabet

import "strings"

// Alphabet is the fixed ordered set of letters every cipher works over.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of letters in Alphabet.
const Size = len(Alphabet)

// Permutation maps the letter at Alphabet index i to the rune at index i.
type Permutation string

// Identity returns the permutation that maps every letter to itself.
func Identity() Permutation {
	return Permutation(Alphabet)
}

// Index returns the position of c in Alphabet, or -1.
func Index(c rune) int {
	if c < 'A' || c > 'Z' {
		return -1
	}
	return int(c - 'A')
}

// Contains reports whether c is an Alphabet letter.
func Contains(c rune) bool {
	return Index(c) >= 0
}

// EncryptRune substitutes c through the permutation.
func (p Permutation) EncryptRune(c rune) rune {
	i := Index(c)
	if i < 0 || i >= len(p) {
		return c
	}
	return rune(p[i])
}

// DecryptRune returns the Alphabet letter at the first position where c
// occurs in the permutation.
func (p Permutation) DecryptRune(c rune) rune {
	if c > 0x7f {
		return c
	}
	i := strings.IndexByte(string(p), byte(c))
	if i < 0 || i >= Size {
		return c
	}
	return rune(Alphabet[i])
}

// Encrypt substitutes every rune of text.
func (p Permutation) Encrypt(text string) string {
	return strings.Map(p.EncryptRune, text)
}

// Decrypt reverses Encrypt for the same permutation.
func (p Permutation) Decrypt(text string) string {
	return strings.Map(p.DecryptRune, text)
}

// Bijective reports whether p uses every Alphabet letter exactly once.
func (p Permutation) Bijective() bool {
	if len(p) != Size {
		return false
	}
	var seen [Size]bool
	for _, c := range string(p) {
		i := Index(c)
		if i < 0 || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}

// RotateLeft moves the first n characters of s to the end. n is taken modulo
// len(s) and a negative n rotates right.
func RotateLeft(s string, n int) string {
	if len(s) == 0 {
		return s
	}
	n %= len(s)
	if n < 0 {
		n += len(s)
	}
	return s[n:] + s[:n]
}

// RotateRight moves the last n characters of s to the front.
func RotateRight(s string, n int) string {
	return RotateLeft(s, -n)
}
