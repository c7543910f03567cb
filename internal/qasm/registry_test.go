package qasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitIDs(reg *Registry) []string {
	bits := reg.Bits()
	ids := make([]string, 0, len(bits))
	for _, bit := range bits {
		ids = append(ids, bit.ID)
	}
	return ids
}

func TestBuildRegistryVersion2(t *testing.T) {
	stmts := []string{
		"OPENQASM 2.0;",
		"qreg q[2];",
		"creg c[2];",
	}
	reg := BuildRegistry(stmts, Version2)

	assert.Equal(t, []string{"q0", "q1", "c0", "c1"}, bitIDs(reg))

	q0, ok := reg.Lookup("q0")
	require.True(t, ok)
	assert.Equal(t, BitQuantum, q0.Kind)
	c1, ok := reg.Lookup("c1")
	require.True(t, ok)
	assert.Equal(t, BitClassical, c1.Kind)
}

func TestBuildRegistryVersion2IgnoresRegisterName(t *testing.T) {
	// Legacy single-register convention: the declared name is dropped.
	reg := BuildRegistry([]string{"qreg data[2];"}, Version2)
	assert.Equal(t, []string{"q0", "q1"}, bitIDs(reg))
}

func TestBuildRegistryVersion3BothOrderings(t *testing.T) {
	sizeFirst := BuildRegistry([]string{"qubit[3] q;"}, Version3)
	assert.Equal(t, []string{"q0", "q1", "q2"}, bitIDs(sizeFirst))

	nameFirst := BuildRegistry([]string{"qubit anc[2];"}, Version3)
	assert.Equal(t, []string{"anc0", "anc1"}, bitIDs(nameFirst))
}

func TestBuildRegistryVersion3IgnoresLegacyDeclarations(t *testing.T) {
	reg := BuildRegistry([]string{"qreg q[2];", "creg c[2];"}, Version3)
	assert.Equal(t, 0, reg.Len())
}

func TestBuildRegistryUnknownVersionIsEmpty(t *testing.T) {
	reg := BuildRegistry([]string{"qreg q[4];", "qubit[4] q;"}, VersionUnknown)
	assert.Equal(t, 0, reg.Len())
}

func TestDuplicateDeclarationsOverwrite(t *testing.T) {
	// Documented behavior: re-declaring an id overwrites rather than
	// erroring, and the id keeps its first-declaration position.
	reg := BuildRegistry([]string{"qreg q[3];", "qreg q[2];"}, Version2)
	assert.Equal(t, []string{"q0", "q1", "q2"}, bitIDs(reg))

	reg = BuildRegistry([]string{"qreg q[1];", "qreg q[2];"}, Version2)
	assert.Equal(t, []string{"q0", "q1"}, bitIDs(reg))
}
