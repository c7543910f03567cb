package qasm

import "strings"

// Version selects which register-declaration grammar governs a parse.
type Version int

const (
	VersionUnknown Version = iota
	Version2
	Version3
)

func (v Version) String() string {
	switch v {
	case Version2:
		return "2.0"
	case Version3:
		return "3.0"
	default:
		return "unknown"
	}
}

// ResolveVersion scans statements for an OPENQASM directive and returns the
// version it names. Sources without a directive resolve to VersionUnknown,
// which leaves the bit registry empty - gate statements then fail with an
// UnknownBitError rather than an up-front version error.
func ResolveVersion(stmts []string) Version {
	for _, stmt := range stmts {
		if !strings.HasPrefix(stmt, "OPENQASM") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(stmt, "OPENQASM"))
		rest = strings.TrimSpace(strings.TrimSuffix(rest, ";"))
		if fields := strings.Fields(rest); len(fields) > 0 {
			rest = fields[0]
		}
		switch rest {
		case "2.0", "2":
			return Version2
		case "3.0", "3":
			return Version3
		}
		return VersionUnknown
	}
	return VersionUnknown
}
