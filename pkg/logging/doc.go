// Package logging sets up the process-wide structured logger.
package logging
