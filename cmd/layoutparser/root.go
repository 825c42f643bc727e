package main

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "layoutparser",
		Short:   "Infer flex layout structure from absolute frame geometry",
		Version: version,
		Long: `layoutparser reads a NodeSchema tree (JSON or YAML) describing a design
tool's absolute frames and annotates every container with its inferred
layoutType, alignment, and flex CSS style.

It provides commands for:
  - Parsing a single tree and writing the annotated result
  - Batch-parsing many trees concurrently
  - Validating a fixture's CEL assertions against the inferred output`,
	}

	root.AddCommand(newParseCommand())
	root.AddCommand(newBatchCommand())
	root.AddCommand(newValidateCommand())

	return root
}
