// Package config loads toolkit settings.
//
// Values start from defaults, are overridden by the YAML file
// $CIPHERS_CONFIG_PATH/ciphers.yml (default /etc/ciphers/ciphers.yml), and
// finally by environment variables. Every attribute remembers which of the
// three it came from.
//
// # Environment Variables
//
//   - CIPHERS_ALGORITHMS: Comma-separated algorithms the server accepts
//   - CIPHERS_NORMALIZE: Uppercase text and key before transforming
//   - CIPHERS_MAX_TEXT_LENGTH: Largest text the server transforms
//   - CIPHERS_LOG_LEVEL: Log level (debug, info, warn, error)
//   - CIPHERS_LOG_FORMAT: Log format (text, json)
//   - BIND_ADDRESS: Server bind address (default: 0.0.0.0)
//   - PORT: Server port (default: 8000)
package config
