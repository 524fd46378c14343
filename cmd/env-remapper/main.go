// Package main provides the CLI entrypoint for env-remapper.
//
// env-remapper reads INPUT_* variables from the environment, maps their
// dot-separated names onto a nested document and publishes it as a step
// output named "json".
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd(os.Environ())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
