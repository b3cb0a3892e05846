// Package main provides the CLI entry point for cbamatrix.
package main

import (
	"os"

	"github.com/ukaji3/cbamatrix-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
