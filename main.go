package main

import (
	"os"

	"github.com/priyankac/axon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
