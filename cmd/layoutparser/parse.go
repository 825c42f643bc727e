package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/visionkit/layoutparser"
	"github.com/visionkit/layoutparser/serialize"
)

type parseOptions struct {
	format  string
	output  string
	verbose bool
}

func newParseCommand() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Infer layout for a single tree",
		Long: `Parse reads a NodeSchema tree from file (or stdin if file is omitted),
runs the layout inference engine over it, and writes the annotated tree.

Example:
  layoutparser parse tree.json
  layoutparser parse tree.yaml --format yaml
  cat tree.json | layoutparser parse --verbose`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runParse(cmd.Context(), cmd, path, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "json", "input/output format: json|yaml")
	flags.StringVarP(&opts.output, "output", "o", "", "write result to this file instead of stdout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print the resolved layoutType for every container")

	return cmd
}

func runParse(ctx context.Context, cmd *cobra.Command, path string, opts *parseOptions) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	node, err := decodeNode(data, opts.format)
	if err != nil {
		return fmt.Errorf("decode tree: %w", err)
	}

	annotated := layoutparser.LayoutParser(node)

	if opts.verbose {
		reportTree(cmd.OutOrStdout(), annotated, 0)
	}

	out, err := encodeNode(annotated, opts.format)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return writeOutput(opts.output, out)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func decodeNode(data []byte, format string) (*layoutparser.NodeSchema, error) {
	switch format {
	case "json", "":
		return serialize.FromJSON(data)
	case "yaml", "yml":
		return serialize.FromYAML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q (use json|yaml)", format)
	}
}

func encodeNode(node *layoutparser.NodeSchema, format string) ([]byte, error) {
	switch format {
	case "json", "":
		return serialize.ToJSON(node)
	case "yaml", "yml":
		return serialize.ToYAML(node)
	default:
		return nil, fmt.Errorf("unsupported format %q (use json|yaml)", format)
	}
}

func reportTree(w io.Writer, node *layoutparser.NodeSchema, depth int) {
	if node == nil {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	layoutType := node.LayoutType
	if layoutType == "" {
		layoutType = "(absolute)"
	}
	fmt.Fprintf(w, "%s%s [%s] -> %s\n", indent, node.ComponentName, node.ID, layoutType)
	for _, child := range node.Children {
		reportTree(w, child, depth+1)
	}
}
