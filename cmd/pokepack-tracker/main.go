// Package main is the entry point for pokepack-tracker.
package main

import (
	"os"

	"github.com/pokepack/pokepack-tracker/cmd/pokepack-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
