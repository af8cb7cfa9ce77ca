// Package validate provides command argument validation helpers.
package validate

import (
	"fmt"
	"strconv"

	apperrors "crcutil/internal/errors"
	"crcutil/internal/stream"
)

var (
	// ErrMalformed indicates a BufferSize argument that is not an unsigned
	// decimal integer.
	ErrMalformed = fmt.Errorf("malformed buffer size: %w", apperrors.ErrInvalidArgument)
	// ErrOutOfRange indicates a BufferSize argument outside the supported range.
	ErrOutOfRange = fmt.Errorf("buffer size out of range: %w", apperrors.ErrInvalidArgument)
)

// ParseBufferSize parses a BufferSize command argument and enforces the
// supported range. Rejection happens before any file is touched.
func ParseBufferSize(arg string) (int, error) {
	value, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", arg, ErrMalformed)
	}
	if value < stream.MinBufferSize || value > stream.MaxBufferSize {
		return 0, fmt.Errorf("%d outside [%d, %d]: %w", value, stream.MinBufferSize, stream.MaxBufferSize, ErrOutOfRange)
	}
	return int(value), nil
}
