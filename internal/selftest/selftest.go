// Package selftest runs the fixed CRC-32 vector suite.
package selftest

import (
	"fmt"
	"io"

	"crcutil/internal/crc"
)

// Vectors is the fixed input list, in print order.
var Vectors = []string{
	"",
	"a",
	"abc",
	"cyclic redundancy check",
	"abcdefghijklmnopqrstuvwxyz",
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
	"12345678901234567890123456789012345678901234567890123456789012345678901234567890",
}

// Run prints one `"<string>" = <hex>` line per vector.
func Run(w io.Writer) error {
	for _, s := range Vectors {
		if _, err := fmt.Fprintf(w, "\"%s\" = %x\n", s, crc.Checksum([]byte(s))); err != nil {
			return fmt.Errorf("write test suite line: %w", err)
		}
	}
	return nil
}
