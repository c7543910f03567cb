package qasm

import (
	"regexp"
	"strings"
)

// GateShape is the structural class a gate statement falls into.
type GateShape int

const (
	ShapeUnrecognized  GateShape = iota
	ShapeSingleQubit             // plain, one operand
	ShapeTwoQubit                // plain, two operands
	ShapeOneQubitParam           // parametrized, one operand
	ShapeTwoQubitParam           // parametrized, two operands
)

// String returns the serialized node type for the shape. Parametrized and
// plain two-operand gates share a type string, matching the wire format the
// animation front end consumes.
func (s GateShape) String() string {
	switch s {
	case ShapeSingleQubit:
		return "single_qubit_gate"
	case ShapeTwoQubit, ShapeTwoQubitParam:
		return "two_qubit_gate"
	case ShapeOneQubitParam:
		return "one_qubit_gate"
	default:
		return "unrecognized"
	}
}

// GateStmt is a classified gate statement ready for the graph builder.
type GateStmt struct {
	Shape    GateShape
	Name     string
	Params   string   // raw parameter text, parametrized shapes only
	Operands []string // normalized bit ids, e.g. q[2] -> q2
}

var (
	// bitRefRegex matches a whole bit reference token: letters plus index,
	// with or without brackets.
	bitRefRegex = regexp.MustCompile(`^([a-zA-Z]+)\[?(\d+)\]?$`)

	// paramStmtRegex splits a parametrized statement into gate name, raw
	// parameter text and the operand tail.
	paramStmtRegex = regexp.MustCompile(`^([a-zA-Z_]\w*)\s*\(([^()]*)\)\s*(.*)$`)

	operandSplitRegex = regexp.MustCompile(`[,\s]+`)
	leadingWordRegex  = regexp.MustCompile(`^[a-zA-Z_]\w*`)
)

// nonGateKeywords lead statements the builder never models as gates:
// measurements, barriers, resets, conditionals and definitions. They still
// consume a statement index, leaving a gap in the timeline keys.
var nonGateKeywords = map[string]bool{
	"measure": true,
	"barrier": true,
	"reset":   true,
	"if":      true,
	"gate":    true,
	"opaque":  true,
}

// declarationKeywords lead statements that never reach classification and
// never consume a statement index.
var declarationKeywords = map[string]bool{
	"OPENQASM": true,
	"include":  true,
	"qreg":     true,
	"creg":     true,
	"qubit":    true,
	"bit":      true,
}

func leadingWord(stmt string) string {
	return leadingWordRegex.FindString(stmt)
}

func isDeclaration(stmt string) bool {
	return declarationKeywords[leadingWord(stmt)]
}

// classifyStatement determines the gate shape of a statement and extracts
// its name, parameter text and operand bit ids. Statements matching no gate
// shape come back as ShapeUnrecognized with a nil error; a malformed bit
// reference inside a recognized shape is a hard error.
func classifyStatement(stmt string) (GateStmt, error) {
	if nonGateKeywords[leadingWord(stmt)] {
		return GateStmt{}, nil
	}

	if strings.ContainsRune(stmt, '(') {
		m := paramStmtRegex.FindStringSubmatch(stmt)
		if m == nil {
			return GateStmt{}, nil
		}
		operands := splitOperands(m[3])
		switch len(operands) {
		case 1:
			return makeGate(ShapeOneQubitParam, m[1], m[2], operands, stmt)
		case 2:
			return makeGate(ShapeTwoQubitParam, m[1], m[2], operands, stmt)
		}
		return GateStmt{}, nil
	}

	parts := splitOperands(stmt)
	switch len(parts) {
	case 2:
		return makeGate(ShapeSingleQubit, parts[0], "", parts[1:], stmt)
	case 3:
		return makeGate(ShapeTwoQubit, parts[0], "", parts[1:], stmt)
	}
	return GateStmt{}, nil
}

func makeGate(shape GateShape, name, params string, tokens []string, stmt string) (GateStmt, error) {
	gate := GateStmt{
		Shape:  shape,
		Name:   strings.TrimSpace(name),
		Params: strings.TrimSpace(params),
	}
	for _, tok := range tokens {
		id, ok := bitID(tok)
		if !ok {
			return GateStmt{}, &MalformedOperandError{Token: tok, Statement: stmt}
		}
		gate.Operands = append(gate.Operands, id)
	}
	return gate, nil
}

// bitID normalizes a bit reference token to its registry id: q[2] -> q2.
func bitID(token string) (string, bool) {
	m := bitRefRegex.FindStringSubmatch(token)
	if m == nil {
		return "", false
	}
	return m[1] + m[2], true
}

func splitOperands(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, ";"))
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range operandSplitRegex.Split(s, -1) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
