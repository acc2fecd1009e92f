// Package main is the entry point for the jsonform CLI.
package main

import (
	"fmt"
	"os"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	setVersion(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
