// Command bairiak generates packed boolean flag types from YAML or CUE specs.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/bairiak/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands print their own errors. Anything else is a usage error
		// from cobra.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
