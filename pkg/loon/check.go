package loon

import (
	"context"
	"log/slog"
)

// Check runs the full pipeline on one line of source: lex, parse, infer.
// Each call owns all of its state, so concurrent calls on independent
// lines are safe.
func Check(ctx context.Context, source string) (*Report, error) {
	toks, err := Tokenize(source)
	if err != nil {
		return nil, err
	}

	root, err := Parse(toks)
	if err != nil {
		return nil, err
	}

	report, err := Infer(root)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "checked expression",
		"tokens", len(toks),
		"vars", report.Len(),
	)
	return report, nil
}
