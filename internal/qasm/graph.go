package qasm

import "encoding/json"

// Node is one vertex in a snapshot: either a circuit bit or a gate
// application. Bit nodes carry the id of the last gate that wrote them;
// gate nodes carry their shape and optional raw parameter text.
type Node struct {
	ID         string
	Type       string
	Name       string
	GateInfo   string  // parametrized gates only
	LastWriter *string // bit nodes only; nil until a gate touches the bit
	isGate     bool
}

// IsGate reports whether the node is a gate application rather than a bit.
func (n Node) IsGate() bool { return n.isGate }

func newBitNode(bit Bit) Node {
	return Node{ID: bit.ID, Type: string(bit.Kind), Name: bit.Name}
}

func newGateNode(id string, stmt GateStmt) Node {
	return Node{
		ID:       id,
		Type:     stmt.Shape.String(),
		Name:     stmt.Name,
		GateInfo: stmt.Params,
		isGate:   true,
	}
}

// MarshalJSON keeps the two node flavors on their wire shapes: bit nodes
// always carry last_gate_connected (explicit null while unwritten), gate
// nodes carry gate_info only when parametrized.
func (n Node) MarshalJSON() ([]byte, error) {
	if !n.isGate {
		return json.Marshal(struct {
			ID         string  `json:"id"`
			Type       string  `json:"type"`
			Name       string  `json:"name"`
			LastWriter *string `json:"last_gate_connected"`
		}{n.ID, n.Type, n.Name, n.LastWriter})
	}
	return json.Marshal(struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Name     string `json:"name"`
		GateInfo string `json:"gate_info,omitempty"`
	}{n.ID, n.Type, n.Name, n.GateInfo})
}

// Edge records that target consumed the value produced at source. Source is
// a bit id for a first touch, otherwise the prior writer's gate id; target
// is always a gate id.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is a node/edge set. Nodes keep creation order: bits first, gates
// appended as statements arrive; edges keep creation order too.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Clone deep-copies the graph so a recorded snapshot can never be altered
// by later parsing.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(clone.Nodes, g.Nodes)
	copy(clone.Edges, g.Edges)
	for i := range clone.Nodes {
		if w := clone.Nodes[i].LastWriter; w != nil {
			v := *w
			clone.Nodes[i].LastWriter = &v
		}
	}
	return clone
}
