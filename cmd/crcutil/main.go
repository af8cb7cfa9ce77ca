// Package main is the CrcUtil CLI entrypoint.
package main

import (
	"os"

	"crcutil/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run(os.Args[1:]))
}
