package token

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	blockCommentRegex = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRegex  = regexp.MustCompile(`//[^\n]*`)
)

// Token patterns, tried in declaration order at each position. Identifiers
// win over keywords at this stage; keyword tagging happens afterwards.
var patterns = []struct {
	typ Type
	re  *regexp.Regexp
}{
	{Identifier, regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)},
	{Number, regexp.MustCompile(`^(?:\d+\.\d*|\d*\.\d+|\d+)(?:[eE][+-]?\d+)?`)},
	{String, regexp.MustCompile(`^"(?:[^"\\]|\\.)*"`)},
	{Arrow, regexp.MustCompile(`^->`)},
	{Operator, regexp.MustCompile(`^(?:==|!=|<=|>=|\+=|-=|\*=|/=|&&|\|\||::)`)},
	{Symbol, regexp.MustCompile(`^[{}\[\]();,.:<>+\-*/%&|^~?=]`)},
}

// LexError reports a character no token pattern matches.
type LexError struct {
	Char    rune
	Line    int
	Column  int
	Context string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at %d:%d near %q", e.Char, e.Line, e.Column, e.Context)
}

// StripComments removes block comments, then line comments. Block comments
// are a tokenizer-path concern only; the graph builder strips line comments
// on its own.
func StripComments(src string) string {
	src = blockCommentRegex.ReplaceAllString(src, "")
	return lineCommentRegex.ReplaceAllString(src, "")
}

// Lex scans comment-free source into an ordered token slice. Whitespace is
// skipped; any other unmatched character fails with a LexError carrying its
// position and a short context snippet.
func Lex(src string) ([]Token, error) {
	var tokens []Token
	line, col := 1, 1

	for i := 0; i < len(src); {
		rest := src[i:]

		matched := false
		for _, p := range patterns {
			value := p.re.FindString(rest)
			if value == "" {
				continue
			}
			typ := p.typ
			if typ == Identifier && keywords[value] {
				typ = Keyword
			}
			tokens = append(tokens, Token{Type: typ, Value: value})
			line, col = advance(value, line, col)
			i += len(value)
			matched = true
			break
		}
		if matched {
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		if unicode.IsSpace(r) {
			line, col = advance(rest[:size], line, col)
			i += size
			continue
		}

		return nil, &LexError{Char: r, Line: line, Column: col, Context: snippet(rest)}
	}
	return tokens, nil
}

func advance(text string, line, col int) (int, int) {
	for _, r := range text {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func snippet(rest string) string {
	if len(rest) > 20 {
		rest = rest[:20]
	}
	return strings.ReplaceAll(rest, "\n", `\n`)
}
