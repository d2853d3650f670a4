package main

import (
	"errors"
	"os"

	"github.com/arthur-debert/shkit/cmd/shkit"
)

func main() {
	rootCmd := shkit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var exitErr *shkit.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		shkit.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
