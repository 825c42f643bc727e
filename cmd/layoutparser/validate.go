package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visionkit/layoutparser/schema"
)

type validateOptions struct {
	verbose bool
}

func newValidateCommand() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [fixture-file]",
		Short: "Run a fixture's CEL assertions against its inferred layout",
		Long: `Validate loads a fixture file (an input tree plus a list of CEL
assertions), runs the layout inference engine over its input, and reports
whether every assertion passes.

Example:
  layoutparser validate fixtures/space-between.json --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print every assertion, not just failures")

	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, path string, opts *validateOptions) error {
	fixture, err := schema.LoadFixture(path)
	if err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}

	results, err := fixture.Run()
	if err != nil {
		return fmt.Errorf("run fixture: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", fixture.ID, fixture.Title)

	failed := 0
	for _, r := range results {
		if r.Passed {
			if opts.verbose {
				fmt.Fprintf(out, "  ok   %s\n", r.Assertion.Expression)
			}
			continue
		}
		failed++
		msg := r.Assertion.Message
		if msg == "" {
			msg = r.Assertion.Expression
		}
		fmt.Fprintf(out, "  FAIL %s: %s\n", msg, r.Error)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d assertions failed", failed, len(results))
	}
	fmt.Fprintf(out, "all %d assertions passed\n", len(results))
	return nil
}
