// Package cipher implements the classical ciphers of the toolkit.
//
// Four algorithms are available, selected through the closed [Algorithm]
// enum:
//
//   - caesar: fixed rotation of the alphabet by three; the key is ignored
//   - vigenere: per-letter rotation driven by a repeating alphabetic key
//   - wolseley: monoalphabetic substitution read from a mirrored keyed square
//   - zigzag: columnar transposition with alternating row direction; the key is
//     the column width
//
// # Usage
//
//	c, err := cipher.New(cipher.AlgorithmVigenere)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext, err := c.Encrypt("HELLO", "KEY") // "RIJVS"
//	plaintext, err := c.Decrypt(ciphertext, "KEY")
//
// Or by name, the way the CLI does it:
//
//	mode, _ := cipher.ParseMode("encrypt")
//	alg, _ := cipher.ParseAlgorithm("caesar")
//	out, err := cipher.Transform(mode, alg, "ABC", "") // "DEF"
//
// # Errors
//
// Failures wrap one of [ErrInvalidKey], [ErrUnknownAlgorithm],
// [ErrUnknownMode] or [ErrMalformedInput] and can be matched with errors.Is.
//
// # Zig-zag padding
//
// Zig-zag encryption pads the last row with random letters when the text
// length is not a multiple of the width. Decryption cannot tell padding from
// text, so the original is recovered only up to the padded tail. Use
// [ZigZag.EncryptWithPadding] or [PadLength] to find out whether it happened.
package cipher
