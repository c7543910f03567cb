package qasm

import "fmt"

// MalformedOperandError reports an operand inside a recognized gate shape
// that is not a valid bit reference. It aborts the parse.
type MalformedOperandError struct {
	Token     string
	Statement string
}

func (e *MalformedOperandError) Error() string {
	return fmt.Sprintf("unrecognized bit format %q in statement %q", e.Token, e.Statement)
}

// UnknownBitError reports a syntactically valid bit reference whose id was
// never declared. A missing OPENQASM directive leaves the registry empty,
// so every gate statement in such a source fails this way.
type UnknownBitError struct {
	ID        string
	Statement string
}

func (e *UnknownBitError) Error() string {
	return fmt.Sprintf("bit %q is not declared by any register (statement %q)", e.ID, e.Statement)
}
