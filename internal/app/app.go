// Package app wires CrcUtil application execution.
package app

import (
	"crcutil/internal/cli"
	apperrors "crcutil/internal/errors"
)

// App wires CLI execution.
type App struct{}

// New creates an App.
func New() App {
	return App{}
}

// Run executes the application and returns a process exit code. Every
// diagnostic the user should see is already printed by the cli layer, so
// failures are only mapped here, never re-reported.
func (a App) Run(args []string) int {
	root := cli.NewOSRootCommand()
	root.SetArgs(args)

	return apperrors.ExitCode(root.Execute())
}
