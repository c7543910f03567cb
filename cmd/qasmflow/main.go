package main

import (
	"os"

	"qasmflow/internal/cli"
)

// version is stamped at build time via -ldflags.
var version = "0.1.0-dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
