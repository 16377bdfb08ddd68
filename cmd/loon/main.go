package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/loon-lang/loon/pkg/ioctx"
	"github.com/loon-lang/loon/pkg/loon"
)

const version = "v0.1.0"

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "loon [flags] [file...]",
		Short: "Loon type inference REPL",
		Long: `Loon infers the principal type (INT, BOOL, or a generic class) of every
variable in a small expression language, reporting a unification error when
an expression is inconsistently typed.`,
		Example: `  # Start the interactive REPL
  loon

  # Check every expression in one or more files
  loon examples.loon more.loon

  # Enable debug logging
  loon --debug`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(debug)

			config, err := loadConfig()
			if err != nil {
				return err
			}

			if len(args) > 0 {
				return checkFiles(cmd.Context(), config, args)
			}
			return runREPL(cmd.Context(), config)
		},
	}

	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func loadConfig() (loon.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return loon.Config{}, err
	}
	return loon.FindConfig(cwd)
}
