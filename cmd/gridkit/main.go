// Command gridkit reads tile maps and runs flood fill, shortest path and
// transforms over them. See internal/cli for the commands.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridkit/internal/cli"
)

// Set by -ldflags "-X main.version=...".
var version string

func main() {
	// A .env file is optional; it usually only carries GRIDKIT_SESSION.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("could not load .env", "err", err)
	}

	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
