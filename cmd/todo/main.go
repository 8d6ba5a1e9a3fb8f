package main

import (
	"os"

	"github.com/idilsaglam/duetodo/internal/cli"
	"github.com/idilsaglam/duetodo/internal/ui"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
}
