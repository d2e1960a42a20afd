package main

import (
	"os"

	"lictool/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.DisplayError(os.Stderr, err)
		os.Exit(1)
	}
}
