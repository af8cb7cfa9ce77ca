package selftest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Run(buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(Vectors))

	want := []string{
		`"" = 0`,
		`"a" = e8b7be43`,
		`"abc" = 352441c2`,
		`"cyclic redundancy check" = 7ea817ba`,
		`"abcdefghijklmnopqrstuvwxyz" = 4c2750bd`,
		`"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" = 1fc2e6d2`,
		`"12345678901234567890123456789012345678901234567890123456789012345678901234567890" = 7ca94a72`,
	}
	require.Equal(t, want, lines)
}
