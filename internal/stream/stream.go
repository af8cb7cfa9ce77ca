// Package stream drives a CRC-32 accumulator over a byte source in
// bounded-size chunks, optionally surfacing the running value after each
// chunk.
package stream

import (
	"fmt"
	"io"

	"crcutil/internal/crc"
	apperrors "crcutil/internal/errors"
)

const (
	// DefaultBufferSize is the chunk size used when none is configured.
	DefaultBufferSize = 32768
	// MinBufferSize is the smallest accepted chunk size.
	MinBufferSize = 1
	// MaxBufferSize is the largest accepted chunk size.
	MaxBufferSize = 2147483645
)

// Report carries the running checksum observed after one chunk. Index starts
// at 0 and increments once per chunk regardless of chunk length.
type Report struct {
	Index int
	Value uint32
}

// Checksum reads r until exhaustion in chunks of at most bufferSize bytes,
// folding each chunk into a fresh accumulator, and returns the final value.
// When onChunk is non-nil it is invoked after every chunk consumed,
// including the last; its final Value always equals the returned checksum.
// The source is read once, in order, with no seeking.
func Checksum(r io.Reader, bufferSize int, onChunk func(Report)) (uint32, error) {
	if bufferSize < MinBufferSize || bufferSize > MaxBufferSize {
		return 0, fmt.Errorf("buffer size %d outside [%d, %d]: %w", bufferSize, MinBufferSize, MaxBufferSize, apperrors.ErrInvalidArgument)
	}

	acc := crc.New()
	buf := make([]byte, bufferSize)
	index := 0
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			acc.Update(buf[:n])
			if onChunk != nil {
				onChunk(Report{Index: index, Value: acc.Sum32()})
			}
			index++
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, fmt.Errorf("read source: %w: %w", readErr, apperrors.ErrRead)
		}
	}

	return acc.Sum32(), nil
}
