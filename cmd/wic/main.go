// Package main provides the entry point for the wic CLI.
package main

import (
	"context"
	"os"

	"github.com/avalluri/wic/internal/cli"
)

// Build information set via ldflags at release time.
//
//nolint:gochecknoglobals // Set by the linker
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()

	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
