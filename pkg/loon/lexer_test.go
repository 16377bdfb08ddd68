package loon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeWords(t *testing.T) {
	toks, err := Tokenize("let x = foo in true")
	require.NoError(t, err)
	require.Len(t, toks, 6)

	assert.True(t, toks[0].IsKeyword("let"))
	assert.Equal(t, Token{Kind: TokenIdent, Text: "x", Pos: 4}, toks[1])
	assert.True(t, toks[2].IsKeyword("="))
	assert.Equal(t, Token{Kind: TokenIdent, Text: "foo", Pos: 8}, toks[3])
	assert.True(t, toks[4].IsKeyword("in"))
	assert.Equal(t, Token{Kind: TokenBool, Text: "true", Bool: true, Pos: 15}, toks[5])
}

func TestTokenizeNegativeLiterals(t *testing.T) {
	t.Run("contiguous digits make a negative literal", func(t *testing.T) {
		toks, err := Tokenize("-1")
		require.NoError(t, err)
		require.Len(t, toks, 1)
		assert.Equal(t, Token{Kind: TokenInt, Text: "-1", Int: -1, Pos: 0}, toks[0])
	})

	t.Run("space after minus makes a keyword", func(t *testing.T) {
		toks, err := Tokenize("- 1")
		require.NoError(t, err)
		require.Len(t, toks, 2)
		assert.True(t, toks[0].IsKeyword("-"))
		assert.Equal(t, Token{Kind: TokenInt, Text: "1", Int: 1, Pos: 2}, toks[1])
	})

	t.Run("minus before identifier is a keyword", func(t *testing.T) {
		toks, err := Tokenize("-x")
		require.NoError(t, err)
		require.Len(t, toks, 2)
		assert.True(t, toks[0].IsKeyword("-"))
		assert.Equal(t, TokenIdent, toks[1].Kind)
	})
}

func TestTokenizeNumbers(t *testing.T) {
	toks, err := Tokenize("(+ 12 345)")
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, 12, toks[2].Int)
	assert.Equal(t, 345, toks[3].Int)
}

func TestTokenizeOperators(t *testing.T) {
	toks, err := Tokenize("( ) + - * / < = ! && ||")
	require.NoError(t, err)
	require.Len(t, toks, 11)
	for i, want := range []string{"(", ")", "+", "-", "*", "/", "<", "=", "!", "&&", "||"} {
		assert.True(t, toks[i].IsKeyword(want), "token %d should be keyword %q", i, want)
	}
}

func TestTokenizeBooleans(t *testing.T) {
	toks, err := Tokenize("true false truth")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, Token{Kind: TokenBool, Text: "true", Bool: true, Pos: 0}, toks[0])
	assert.Equal(t, Token{Kind: TokenBool, Text: "false", Bool: false, Pos: 5}, toks[1])
	// Longest match: "truth" is an identifier, not "true" + "th".
	assert.Equal(t, Token{Kind: TokenIdent, Text: "truth", Pos: 11}, toks[2])
}

func TestTokenizeErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		char   rune
		offset int
	}{
		{"unknown character", "(? 1 2)", '?', 1},
		{"lone ampersand", "(& x y)", '&', 1},
		{"lone pipe", "x | y", '|', 2},
		{"unicode character", "1 λ", 'λ', 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize(tc.input)
			require.Error(t, err)

			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tc.char, lexErr.Char)
			assert.Equal(t, tc.offset, lexErr.Offset)
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := Tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, toks)
}
