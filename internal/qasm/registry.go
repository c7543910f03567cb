package qasm

import (
	"regexp"
	"strconv"
)

// BitKind distinguishes quantum wires from classical ones. The values are
// the serialized node type strings.
type BitKind string

const (
	BitQuantum   BitKind = "qubit"
	BitClassical BitKind = "classical_bit"
)

// Bit is a single circuit wire, created once during registry construction.
type Bit struct {
	ID   string
	Kind BitKind
	Name string
}

// Registry holds the circuit's bits in declaration order.
type Registry struct {
	order []string
	bits  map[string]Bit
}

func NewRegistry() *Registry {
	return &Registry{bits: make(map[string]Bit)}
}

// Add inserts a bit. Re-declaring an existing id overwrites the earlier
// entry in place: last write wins, the id keeps its original position.
func (r *Registry) Add(bit Bit) {
	if _, ok := r.bits[bit.ID]; !ok {
		r.order = append(r.order, bit.ID)
	}
	r.bits[bit.ID] = bit
}

func (r *Registry) Lookup(id string) (Bit, bool) {
	bit, ok := r.bits[id]
	return bit, ok
}

// Bits returns all bits in declaration order.
func (r *Registry) Bits() []Bit {
	out := make([]Bit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bits[id])
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }

// Declaration grammars. 2.0 keeps the legacy single-register convention:
// bit ids collapse to q<i>/c<i> regardless of the declared register name.
// 3.0 names bits after the declared register and accepts both operand
// orderings; classical declarations are not modeled for 3.0.
var (
	qregRegex      = regexp.MustCompile(`^qreg\s+\w+\[(\d+)\]`)
	cregRegex      = regexp.MustCompile(`^creg\s+\w+\[(\d+)\]`)
	qubitNameFirst = regexp.MustCompile(`^qubit\s+([a-zA-Z_]\w*)\[(\d+)\]`)
	qubitSizeFirst = regexp.MustCompile(`^qubit\[(\d+)\]\s+([a-zA-Z_]\w*)`)
)

// BuildRegistry scans statements for register declarations under the
// grammar the resolved version selects. VersionUnknown recognizes nothing.
func BuildRegistry(stmts []string, version Version) *Registry {
	reg := NewRegistry()
	for _, stmt := range stmts {
		switch version {
		case Version2:
			if m := qregRegex.FindStringSubmatch(stmt); m != nil {
				addRange(reg, "q", BitQuantum, m[1])
			}
			if m := cregRegex.FindStringSubmatch(stmt); m != nil {
				addRange(reg, "c", BitClassical, m[1])
			}
		case Version3:
			if m := qubitNameFirst.FindStringSubmatch(stmt); m != nil {
				addRange(reg, m[1], BitQuantum, m[2])
			} else if m := qubitSizeFirst.FindStringSubmatch(stmt); m != nil {
				addRange(reg, m[2], BitQuantum, m[1])
			}
		}
	}
	return reg
}

func addRange(reg *Registry, name string, kind BitKind, sizeText string) {
	size, err := strconv.Atoi(sizeText)
	if err != nil {
		return
	}
	for i := 0; i < size; i++ {
		id := name + strconv.Itoa(i)
		reg.Add(Bit{ID: id, Kind: kind, Name: id})
	}
}
