package main

import (
	"os"

	"github.com/VoidLight00/lemon-protocol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
