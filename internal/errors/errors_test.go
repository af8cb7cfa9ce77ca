package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", ErrUsage, 0},
		{"wrapped usage", fmt.Errorf("missing argument: %w", ErrUsage), 0},
		{"not found", ErrNotFound, 1},
		{"read", ErrRead, 1},
		{"close", ErrClose, 1},
		{"invalid argument", fmt.Errorf("buffer size: %w", ErrInvalidArgument), 1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ExitCode(tt.err), tt.name)
	}
}
