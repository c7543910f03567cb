package qasm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDeepCopiesTheGraph(t *testing.T) {
	writer := "g_0"
	live := Graph{
		Nodes: []Node{
			newBitNode(Bit{ID: "q0", Kind: BitQuantum, Name: "q0"}),
		},
	}
	live.Nodes[0].LastWriter = &writer

	timeline := NewTimeline()
	timeline.Record(0, &live)

	// Mutating the live graph after recording must not leak into the
	// stored snapshot.
	*live.Nodes[0].LastWriter = "g_9"
	live.Nodes = append(live.Nodes, newGateNode("g_1", GateStmt{Shape: ShapeSingleQubit, Name: "h"}))
	live.Edges = append(live.Edges, Edge{Source: "q0", Target: "g_1"})

	snap, ok := timeline.Snapshot(0)
	require.True(t, ok)
	require.Len(t, snap.Nodes, 1)
	assert.Empty(t, snap.Edges)
	require.NotNil(t, snap.Nodes[0].LastWriter)
	assert.Equal(t, "g_0", *snap.Nodes[0].LastWriter)
}

func TestRecordIsAppendOnly(t *testing.T) {
	timeline := NewTimeline()
	timeline.Record(0, &Graph{})
	timeline.Record(0, &Graph{Edges: []Edge{{Source: "q0", Target: "g_0"}}})

	snap, _ := timeline.Snapshot(0)
	assert.Empty(t, snap.Edges)
	assert.Equal(t, []int{0}, timeline.Indexes())
}

func TestTimelineJSONKeyOrderAndShape(t *testing.T) {
	src := `OPENQASM 2.0;
qreg q[2];
creg c[1];
h q[0];
rz(pi/4) q[0];
cx q[0], q[1];
`
	timeline, err := Parse(src)
	require.NoError(t, err)

	data, err := json.Marshal(timeline)
	require.NoError(t, err)
	doc := string(data)

	// Keys appear as statement-index strings in increasing numeric order.
	assert.Regexp(t, `^\{"0":.*"1":.*"2":.*"3":`, doc)

	// Bit nodes always carry last_gate_connected, null while unwritten.
	assert.Contains(t, doc, `{"id":"q1","type":"qubit","name":"q1","last_gate_connected":null}`)
	assert.Contains(t, doc, `{"id":"q0","type":"qubit","name":"q0","last_gate_connected":"g_0"}`)
	assert.Contains(t, doc, `{"id":"c0","type":"classical_bit","name":"c0","last_gate_connected":null}`)

	// Gate nodes carry gate_info only when parametrized.
	assert.Contains(t, doc, `{"id":"g_0","type":"single_qubit_gate","name":"h"}`)
	assert.Contains(t, doc, `{"id":"g_1","type":"one_qubit_gate","name":"rz","gate_info":"pi/4"}`)
	assert.Contains(t, doc, `{"id":"g_2","type":"two_qubit_gate","name":"cx"}`)

	assert.Contains(t, doc, `{"source":"g_1","target":"g_2"}`)
}

func TestTimelineMarshalTenPlusKeys(t *testing.T) {
	// "10" must sort after "9", which a map-based marshal would get wrong.
	timeline := NewTimeline()
	for _, idx := range []int{0, 2, 9, 10, 11} {
		timeline.Record(idx, &Graph{})
	}

	data, err := json.Marshal(timeline)
	require.NoError(t, err)
	assert.Regexp(t, `^\{"0":.*"2":.*"9":.*"10":.*"11":`, string(data))
}
