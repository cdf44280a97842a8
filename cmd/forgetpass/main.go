// Package main is the entry point for the forgetpass CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// formatVersion renders the --version output.
func formatVersion(version, commit, date string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// run executes the root command and returns the process exit code.
// The first interrupt cancels the command context; a second one
// terminates the process.
func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := NewRootCmd()
	cmd.Version = formatVersion(version, commit, date)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
