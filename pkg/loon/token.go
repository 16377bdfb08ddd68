package loon

import (
	"fmt"
	"strconv"
)

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokenIdent TokenKind = iota
	TokenInt
	TokenBool
	TokenKeyword
)

func (k TokenKind) String() string {
	switch k {
	case TokenIdent:
		return "identifier"
	case TokenInt:
		return "integer"
	case TokenBool:
		return "boolean"
	case TokenKeyword:
		return "keyword"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one lexical token. Tokens are immutable and consumed in
// emission order by the parser.
type Token struct {
	Kind TokenKind
	Text string // raw source text; for keywords, the keyword itself
	Int  int    // value when Kind is TokenInt
	Bool bool   // value when Kind is TokenBool
	Pos  int    // byte offset of the token's first character
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(text string) bool {
	return t.Kind == TokenKeyword && t.Text == text
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdent:
		return fmt.Sprintf("identifier %q", t.Text)
	case TokenInt:
		return "integer " + strconv.Itoa(t.Int)
	case TokenBool:
		return "boolean " + strconv.FormatBool(t.Bool)
	case TokenKeyword:
		return fmt.Sprintf("keyword %q", t.Text)
	default:
		return fmt.Sprintf("token %q", t.Text)
	}
}
