package loon

import "fmt"

// LexError is an unrecognized character in the source line.
type LexError struct {
	Char   rune
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: unrecognized character %q at offset %d", e.Char, e.Offset)
}

// ParseError is a token stream that does not match the grammar. Offset is
// the byte offset of the offending token, or -1 when the stream ended
// before the grammar was satisfied.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("parse error at end of input: %s", e.Msg)
	}
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

// UnifyError is an attempt to equate two slots already resolved to
// different base types.
type UnifyError struct {
	Left, Right string
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf("type error: cannot unify %s with %s", e.Left, e.Right)
}
