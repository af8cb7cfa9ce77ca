package cli

import (
	"fmt"

	"crcutil/internal/buildinfo"
)

// printVersion writes build metadata for the -version flag.
func (r *RootCommand) printVersion() error {
	if _, err := fmt.Fprintln(r.out, buildinfo.Get().String()); err != nil {
		return fmt.Errorf("write version output: %w", err)
	}
	return nil
}
