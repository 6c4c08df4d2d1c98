package main

import (
	"os"

	"github.com/msto63/stringops/cmd/stringops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
