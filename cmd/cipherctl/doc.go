// Command cipherctl encrypts and decrypts text with classical ciphers.
//
// The toolkit implements four ciphers that are not cryptographically secure
// and exist for study:
//
//   - caesar: fixed rotation by three, the key is ignored
//   - vigenere: per-letter rotation driven by a repeating key
//   - wolseley: keyed 5x5 square read mirrored, I and J share a cell
//   - zigzag: columnar transposition with alternating row direction
//
// # Usage
//
//	cipherctl encrypt "HELLO" vigenere KEY
//	cipherctl decrypt "RIJVS" vigenere KEY
//	cipherctl encrypt "HELLOWORLDAB" zigzag 3
//	cipherctl encrypt --markdown "$(cat notes.md)" caesar -
//
// The ciphers only transform uppercase A-Z; everything else passes through.
// Use --normalize to uppercase text and key first.
//
// # Other commands
//
//   - algorithms: list the algorithms and the key each one expects
//   - configuration show: print configuration attributes and their sources
//   - server: serve encrypt and decrypt over HTTP
//   - watch: re-transform a file every time it is written
//
// # Environment Variables
//
//   - CIPHERS_CONFIG_PATH: directory holding ciphers.yml (default: /etc/ciphers)
//   - CIPHERS_ALGORITHMS: comma-separated algorithms the server accepts
//   - CIPHERS_NORMALIZE: uppercase text and key before transforming
//   - CIPHERS_MAX_TEXT_LENGTH: largest text the server accepts, in bytes
//   - CIPHERS_LOG_LEVEL: log level (debug, info, warn, error)
//   - CIPHERS_LOG_FORMAT: log format (text, json)
//   - BIND_ADDRESS, PORT: server listen address (default: 0.0.0.0:8000)
package main
