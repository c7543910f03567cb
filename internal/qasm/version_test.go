package qasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementsStripCommentsAndBlanks(t *testing.T) {
	src := "// header comment\nOPENQASM 2.0;\n\nqreg q[1]; // trailing\n   \nh q[0];\n"
	assert.Equal(t, []string{
		"OPENQASM 2.0;",
		"qreg q[1];",
		"h q[0];",
	}, Statements(src))
}

func TestStatementsAreRestartable(t *testing.T) {
	src := "h q[0];\nx q[1];"
	first := Statements(src)
	second := Statements(src)
	assert.Equal(t, first, second)
}

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		stmts []string
		want  Version
	}{
		{[]string{"OPENQASM 2.0;", "qreg q[1];"}, Version2},
		{[]string{"OPENQASM 3.0;"}, Version3},
		{[]string{"OPENQASM 3;"}, Version3},
		{[]string{"qreg q[1];", "OPENQASM 2.0;"}, Version2},
		{[]string{"qreg q[1];", "h q[0];"}, VersionUnknown},
		{[]string{"OPENQASM 9.9;"}, VersionUnknown},
		{nil, VersionUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveVersion(tt.stmts), tt.stmts)
	}
}
