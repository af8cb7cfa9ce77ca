// Package errors defines application errors and exit code mapping.
package errors

import (
	sterrors "errors"

	"github.com/pkg/errors"
)

var (
	// ErrUsage indicates a command usage failure; usage text is the only
	// diagnostic the user needs.
	ErrUsage = errors.New("usage error")
	// ErrNotFound indicates the input file does not exist or could not be
	// opened; nothing was read.
	ErrNotFound = errors.New("input file not found")
	// ErrRead indicates an I/O failure mid-stream; output flushed before the
	// failure remains visible.
	ErrRead = errors.New("read failure")
	// ErrClose indicates the input file could not be released after a read
	// attempt. It never invalidates a checksum already printed.
	ErrClose = errors.New("close failure")
	// ErrInvalidArgument indicates a malformed or out-of-range argument,
	// rejected before any I/O.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ExitCode maps an error to a process exit code. Usage paths are a normal
// return, matching the utility this tool mirrors; operation failures exit
// nonzero without crashing the process.
func ExitCode(err error) int {
	if err == nil || sterrors.Is(err, ErrUsage) {
		return 0
	}

	return 1
}
