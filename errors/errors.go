// Package errors defines the sentinel errors and error-presentation helpers
// shared across the stonkie CLI. It is conventionally imported as errUtils to
// avoid clashing with the standard library.
package errors

import (
	"os"

	"github.com/cockroachdb/errors"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Sentinel errors for the backend API client.
var (
	ErrAPIClientNil      = errors.New("backend client cannot be nil")
	ErrRequestFailed     = errors.New("backend request failed")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrAnswerShape       = errors.New("unexpected answer payload shape")
	ErrInvalidReportType = errors.New("invalid report type")
	ErrBackendUnhealthy  = errors.New("backend health check failed")
)

// Sentinel errors for command input validation.
var (
	ErrTickerRequired = errors.New("ticker symbol is required")
	ErrEmptyQuestion  = errors.New("question cannot be empty")
	ErrInvalidFormat  = errors.New("invalid output format")
)

// Sentinel errors for configuration and logging.
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
