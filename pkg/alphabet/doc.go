// Package alphabet provides the permutation model shared by the substitution
// ciphers.
//
// A [Permutation] is a 26-entry substitution table indexed by the position of
// each letter in [Alphabet]. Runes that are not uppercase Latin letters pass
// through unchanged in both directions.
//
//	p := alphabet.Permutation(alphabet.RotateLeft(alphabet.Alphabet, 3))
//	p.Encrypt("ABC") // "DEF"
//	p.Decrypt("DEF") // "ABC"
package alphabet
