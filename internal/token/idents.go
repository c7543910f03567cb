package token

// DeclaredKinds lists the declaration classes CollectDeclared recognizes,
// in output order.
var DeclaredKinds = []string{"qreg", "creg", "qubit", "bit", "gate"}

// Declared is one declared identifier tagged with its declaration class.
type Declared struct {
	Type  string `json:"typ"`
	Value string `json:"val"`
}

// CollectDeclared extracts declared identifier names by keyword class:
// qreg/creg/qubit/bit register names plus gate and opaque definitions,
// both filed under "gate". Order is preserved and names are de-duplicated
// per class.
func CollectDeclared(tokens []Token) map[string][]string {
	out := map[string][]string{
		"qreg":  {},
		"creg":  {},
		"qubit": {},
		"bit":   {},
		"gate":  {},
	}

	for i, t := range tokens {
		if t.Type != Keyword {
			continue
		}
		name, ok := nextIdentifier(tokens, i)
		if !ok {
			continue
		}
		switch t.Value {
		case "qreg", "creg", "qubit", "bit":
			out[t.Value] = append(out[t.Value], name)
		case "gate", "opaque":
			out["gate"] = append(out["gate"], name)
		}
	}

	for kind, names := range out {
		out[kind] = dedupe(names)
	}
	return out
}

func nextIdentifier(tokens []Token, i int) (string, bool) {
	if i+1 < len(tokens) && tokens[i+1].Type == Identifier {
		return tokens[i+1].Value, true
	}
	return "", false
}

func dedupe(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
