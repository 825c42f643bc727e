package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/visionkit/layoutparser"
)

type batchOptions struct {
	format      string
	outputDir   string
	concurrency int
}

func newBatchCommand() *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Infer layout for many trees concurrently",
		Long: `Batch parses every file given (or expanded from glob patterns) with a
bounded pool of workers, writing each annotated tree alongside a sibling
file under --output-dir.

Example:
  layoutparser batch fixtures/*.json --output-dir out/
  layoutparser batch a.json b.yaml --concurrency 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "json", "input/output format: json|yaml")
	flags.StringVarP(&opts.outputDir, "output-dir", "o", ".", "directory to write annotated trees into")
	flags.IntVarP(&opts.concurrency, "concurrency", "c", 4, "maximum number of files processed in parallel")

	return cmd
}

func runBatch(ctx context.Context, cmd *cobra.Command, patterns []string, opts *batchOptions) error {
	paths, err := expandPatterns(patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input files matched")
	}

	limit := opts.concurrency
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	var failures []string

	for _, path := range paths {
		path := path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if err := processOne(path, opts); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", path, err))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d files failed:\n%s", len(failures), len(paths), strings.Join(failures, "\n"))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "processed %d files\n", len(paths))
	return nil
}

func processOne(path string, opts *batchOptions) error {
	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	node, err := decodeNode(data, opts.format)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	annotated := layoutparser.LayoutParser(node)

	out, err := encodeNode(annotated, opts.format)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	dest := filepath.Join(opts.outputDir, filepath.Base(path))
	if err := writeOutput(dest, out); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

func expandPatterns(patterns []string) ([]string, error) {
	var paths []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			paths = append(paths, p)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}
