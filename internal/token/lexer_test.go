package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexBasicStatement(t *testing.T) {
	tokens, err := Lex(`measure q[0] -> c[0];`)
	require.NoError(t, err)

	assert.Equal(t, []Token{
		{Keyword, "measure"},
		{Identifier, "q"},
		{Symbol, "["},
		{Number, "0"},
		{Symbol, "]"},
		{Arrow, "->"},
		{Identifier, "c"},
		{Symbol, "["},
		{Number, "0"},
		{Symbol, "]"},
		{Symbol, ";"},
	}, tokens)
}

func TestLexNumbersAndStrings(t *testing.T) {
	tokens, err := Lex(`rz(3.14e-2) q[1]; include "qelib1.inc";`)
	require.NoError(t, err)

	var values []string
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	assert.Contains(t, values, "3.14e-2")
	assert.Contains(t, values, `"qelib1.inc"`)

	var types []Type
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Contains(t, types, Number)
	assert.Contains(t, types, String)
	assert.Contains(t, types, Keyword) // include
}

func TestLexOperators(t *testing.T) {
	tokens, err := Lex(`if (c==1) x q[0];`)
	require.NoError(t, err)

	assert.Equal(t, Token{Keyword, "if"}, tokens[0])
	assert.Contains(t, tokens, Token{Operator, "=="})
}

func TestLexErrorPosition(t *testing.T) {
	_, err := Lex("qreg q[2];\nh @q[0];")
	require.Error(t, err)

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, '@', lexErr.Char)
	assert.Equal(t, 2, lexErr.Line)
	assert.Equal(t, 3, lexErr.Column)
	assert.Contains(t, lexErr.Error(), "@q[0]")
}

func TestStripComments(t *testing.T) {
	src := "/* block\ncomment */OPENQASM 2.0; // trailing\nh q[0];"
	cleaned := StripComments(src)
	assert.NotContains(t, cleaned, "block")
	assert.NotContains(t, cleaned, "trailing")
	assert.Contains(t, cleaned, "OPENQASM 2.0;")
	assert.Contains(t, cleaned, "h q[0];")
}

func TestCollectDeclared(t *testing.T) {
	src := `OPENQASM 2.0;
qreg q[2];
qreg q[2];
creg c[1];
gate majority a, b, c { cx c, b; }
opaque magic x;
qubit anc;
`
	tokens, err := Lex(StripComments(src))
	require.NoError(t, err)

	table := CollectDeclared(tokens)
	assert.Equal(t, []string{"q"}, table["qreg"])
	assert.Equal(t, []string{"c"}, table["creg"])
	assert.Equal(t, []string{"anc"}, table["qubit"])
	assert.Empty(t, table["bit"])
	assert.Equal(t, []string{"majority", "magic"}, table["gate"])
}
