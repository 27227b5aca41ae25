package main

import (
	"os"

	"github.com/fec-analyzer/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
