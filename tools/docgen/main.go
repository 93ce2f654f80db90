// Command docgen renders the pokepack-tracker CLI reference as one
// markdown file per command.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/pokepack/pokepack-tracker/cmd/pokepack-tracker/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	if err := run(*output); err != nil {
		fmt.Fprintln(os.Stderr, "docgen:", err)
		os.Exit(1)
	}
}

func run(output string) error {
	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root := cmd.Root()
	// The timestamp footer churns every run and pollutes diffs.
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, output); err != nil {
		return fmt.Errorf("generating docs: %w", err)
	}

	fmt.Printf("CLI docs written to %s/\n", output)
	return nil
}
