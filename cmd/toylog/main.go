// Package main is the entry point for the toylog CLI.
package main

import (
	"os"

	"github.com/trickstertwo/toylog/cmd/toylog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
