package qasm

import "strings"

// Statements splits raw QASM source into trimmed, comment-free statements.
// Everything from the first "//" to end of line is dropped and blank lines
// are discarded; source order is preserved. The graph-builder path does not
// handle block comments - those belong to the tokenizer.
func Statements(src string) []string {
	var out []string
	for _, raw := range strings.Split(src, "\n") {
		line := raw
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
