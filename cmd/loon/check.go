package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/loon-lang/loon/pkg/ioctx"
	"github.com/loon-lang/loon/pkg/loon"
)

// checkFiles type-checks every expression line in the given files. Each run
// owns its own state, so files are checked concurrently; output is buffered
// per file and printed in argument order.
func checkFiles(ctx context.Context, config loon.Config, paths []string) error {
	results := make([]strings.Builder, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		eg.Go(func() error {
			return checkFile(ctx, config, path, &results[i])
		})
	}
	err := eg.Wait()

	stdout := ioctx.StdoutFromContext(ctx)
	for i := range results {
		_, _ = fmt.Fprint(stdout, results[i].String())
	}
	return err
}

// checkFile checks one file line by line, writing report output to out.
// The first failing line aborts the file.
func checkFile(ctx context.Context, config loon.Config, path string, out *strings.Builder) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	fmt.Fprintf(out, "== %s\n", path)
	for lineno, line := range strings.Split(string(data), "\n") {
		if !shouldCheckLine(line) {
			continue
		}
		report, err := loon.Check(ctx, line)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", path, lineno+1)
		}
		fmt.Fprintf(out, "%s\n", strings.TrimSpace(line))
		for _, rl := range report.Lines(config.SortVars) {
			fmt.Fprintf(out, "  %s\n", rl)
		}
	}
	return nil
}

// shouldCheckLine filters blank lines and # comments out of batch input.
func shouldCheckLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}
