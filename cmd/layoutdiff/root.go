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

var version = "0.1.0"

type diffOptions struct {
	format string
}

func newRootCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:     "layoutdiff before after",
		Short:   "Compare two annotated layout trees",
		Version: version,
		Long: `layoutdiff reads two NodeSchema trees — typically the same source tree
run through the engine at two different points in time, or two
hand-authored variants — and reports every node whose inferred
layoutType, alignment, or flex style diverge.

Trees are matched by position (child index) rather than by id, since
the layout-group wrapper nodes LayoutParser inserts for mix containers
get a freshly generated id on every run.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.Context(), cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "input format: json|yaml")

	return cmd
}

func runDiff(ctx context.Context, cmd *cobra.Command, beforePath, afterPath string, opts *diffOptions) error {
	before, err := loadTree(beforePath, opts.format)
	if err != nil {
		return fmt.Errorf("load %s: %w", beforePath, err)
	}
	after, err := loadTree(afterPath, opts.format)
	if err != nil {
		return fmt.Errorf("load %s: %w", afterPath, err)
	}

	diffs := diffNodes("root", before, after)

	out := cmd.OutOrStdout()
	if len(diffs) == 0 {
		fmt.Fprintln(out, "no differences")
		return nil
	}
	for _, d := range diffs {
		fmt.Fprintln(out, d)
	}
	return fmt.Errorf("%d differences found", len(diffs))
}

func loadTree(path, format string) (*layoutparser.NodeSchema, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	switch format {
	case "json", "":
		return serialize.FromJSON(data)
	case "yaml", "yml":
		return serialize.FromYAML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q (use json|yaml)", format)
	}
}
