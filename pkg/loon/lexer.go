package loon

import (
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Word-form keywords. true/false are lexed as boolean literals, not
// keywords, so they are absent here.
var wordKeywords = map[string]bool{
	"if":   true,
	"then": true,
	"else": true,
	"let":  true,
	"in":   true,
}

// Tokenize scans one line of source text into tokens, longest match first.
// The first unrecognized character aborts the scan with a LexError.
func Tokenize(line string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++

		case isAlpha(c):
			start := i
			for i < len(line) && isAlpha(line[i]) {
				i++
			}
			toks = append(toks, classifyWord(line[start:i], start))

		case isDigit(c):
			tok, rest, err := lexInt(line, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = rest

		case c == '-':
			// A '-' immediately followed by a digit starts a negative
			// integer literal; otherwise it is the subtraction keyword.
			if i+1 < len(line) && isDigit(line[i+1]) {
				tok, rest, err := lexInt(line, i)
				if err != nil {
					return nil, err
				}
				toks = append(toks, tok)
				i = rest
			} else {
				toks = append(toks, Token{Kind: TokenKeyword, Text: "-", Pos: i})
				i++
			}

		case c == '(' || c == ')' || c == '+' || c == '*' || c == '/' ||
			c == '<' || c == '=' || c == '!':
			toks = append(toks, Token{Kind: TokenKeyword, Text: string(c), Pos: i})
			i++

		case c == '&' || c == '|':
			// Only the doubled forms are tokens.
			if i+1 < len(line) && line[i+1] == c {
				toks = append(toks, Token{Kind: TokenKeyword, Text: line[i : i+2], Pos: i})
				i += 2
			} else {
				return nil, &LexError{Char: rune(c), Offset: i}
			}

		default:
			r, _ := utf8.DecodeRuneInString(line[i:])
			return nil, &LexError{Char: r, Offset: i}
		}
	}
	return toks, nil
}

func classifyWord(word string, pos int) Token {
	switch {
	case word == "true" || word == "false":
		return Token{Kind: TokenBool, Text: word, Bool: word == "true", Pos: pos}
	case wordKeywords[word]:
		return Token{Kind: TokenKeyword, Text: word, Pos: pos}
	default:
		return Token{Kind: TokenIdent, Text: word, Pos: pos}
	}
}

// lexInt consumes an integer literal starting at pos (which may point at a
// leading '-') and returns the token and the offset past its last digit.
func lexInt(line string, pos int) (Token, int, error) {
	end := pos + 1 // the first byte is a digit or a '-' with a digit after it
	for end < len(line) && isDigit(line[end]) {
		end++
	}
	text := line[pos:end]
	val, err := strconv.Atoi(text)
	if err != nil {
		return Token{}, 0, errors.Wrapf(err, "integer literal %q at offset %d", text, pos)
	}
	return Token{Kind: TokenInt, Text: text, Int: val, Pos: pos}, end, nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
