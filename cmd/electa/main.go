package main

import (
	"fmt"
	"os"

	"github.com/example/electa/internal/cli"
	"github.com/example/electa/internal/version"
	"github.com/example/electa/internal/wire"
)

func main() {
	rootCmd := cli.NewRootCmd(version.String())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
