package main

import (
	"os"

	"github.com/quinnoshea/claude-builder/cmd"
	"github.com/quinnoshea/claude-builder/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
