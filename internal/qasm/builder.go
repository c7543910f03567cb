package qasm

import "fmt"

// Builder is the stateful core of the parse. It owns the live graph, the
// per-bit last-writer map and the gate/statement counters; nothing else
// reads or writes that state during a run.
type Builder struct {
	registry   *Registry
	graph      Graph
	timeline   *Timeline
	lastWriter map[string]string // bit id -> gate id of its most recent writer
	bitIndex   map[string]int    // bit id -> position in graph.Nodes
	gateCount  int
	stmtCount  int
}

// Parse runs the full pipeline over QASM source text and returns the
// completed timeline. Hard errors (malformed operands, undeclared bits)
// abort the parse and discard the partial timeline.
func Parse(src string) (*Timeline, error) {
	stmts := Statements(src)
	version := ResolveVersion(stmts)

	b := &Builder{
		registry:   BuildRegistry(stmts, version),
		timeline:   NewTimeline(),
		lastWriter: make(map[string]string),
		bitIndex:   make(map[string]int),
	}
	for _, bit := range b.registry.Bits() {
		b.bitIndex[bit.ID] = len(b.graph.Nodes)
		b.graph.Nodes = append(b.graph.Nodes, newBitNode(bit))
	}
	b.timeline.Record(0, &b.graph)

	for _, stmt := range stmts {
		if isDeclaration(stmt) {
			continue
		}
		b.stmtCount++

		gate, err := classifyStatement(stmt)
		if err != nil {
			return nil, err
		}
		if gate.Shape == ShapeUnrecognized {
			continue
		}
		if err := b.apply(gate, stmt); err != nil {
			return nil, err
		}
		b.timeline.Record(b.stmtCount, &b.graph)
	}
	return b.timeline, nil
}

// apply allocates the next gate node and wires one edge per operand, in
// operand order. Both edges of a two-operand gate resolve against the
// writer state as it stood before this statement; the last-writer map is
// updated only after every edge has been appended.
func (b *Builder) apply(gate GateStmt, stmt string) error {
	for _, id := range gate.Operands {
		if _, ok := b.registry.Lookup(id); !ok {
			return &UnknownBitError{ID: id, Statement: stmt}
		}
	}

	gateID := fmt.Sprintf("g_%d", b.gateCount)
	b.gateCount++
	b.graph.Nodes = append(b.graph.Nodes, newGateNode(gateID, gate))

	sources := make([]string, len(gate.Operands))
	for i, id := range gate.Operands {
		if writer, ok := b.lastWriter[id]; ok {
			sources[i] = writer
		} else {
			sources[i] = id
		}
	}
	for _, source := range sources {
		b.graph.Edges = append(b.graph.Edges, Edge{Source: source, Target: gateID})
	}
	for _, id := range gate.Operands {
		b.lastWriter[id] = gateID
		writer := gateID
		b.graph.Nodes[b.bitIndex[id]].LastWriter = &writer
	}
	return nil
}
