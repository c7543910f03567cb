package qasm

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Timeline is the append-only store of graph snapshots, keyed by the
// statement counter. Entry 0 is always the bits-only initial state. Keys
// are not contiguous: statements the classifier skipped consume an index
// without recording a snapshot.
type Timeline struct {
	snapshots map[int]*Graph
	order     []int
}

func NewTimeline() *Timeline {
	return &Timeline{snapshots: make(map[int]*Graph)}
}

// Record deep-copies g and stores it under index. An already-recorded index
// is left untouched: the timeline is append-only.
func (t *Timeline) Record(index int, g *Graph) {
	if _, ok := t.snapshots[index]; ok {
		return
	}
	t.snapshots[index] = g.Clone()
	t.order = append(t.order, index)
}

// Indexes returns the recorded statement indexes in increasing order.
func (t *Timeline) Indexes() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)
	return out
}

// Snapshot returns the graph recorded at index. Callers must treat the
// result as read-only.
func (t *Timeline) Snapshot(index int) (*Graph, bool) {
	g, ok := t.snapshots[index]
	return g, ok
}

// Final returns the largest-index snapshot, or nil for an empty timeline.
func (t *Timeline) Final() *Graph {
	if len(t.order) == 0 {
		return nil
	}
	return t.snapshots[t.order[len(t.order)-1]]
}

func (t *Timeline) Len() int { return len(t.order) }

// MarshalJSON writes the timeline as an object keyed by statement-index
// strings in increasing numeric order, the document shape the animation
// front end consumes. encoding/json sorts map keys lexically ("10" before
// "2"), so the object is framed by hand.
func (t *Timeline) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, idx := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(idx))
		buf.WriteString(`":`)
		body, err := json.Marshal(t.snapshots[idx])
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
