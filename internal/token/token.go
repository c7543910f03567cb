package token

// Type classifies a lexed token.
type Type string

const (
	Identifier Type = "identifier"
	Keyword    Type = "keyword"
	Number     Type = "number"
	String     Type = "string"
	Arrow      Type = "arrow"
	Operator   Type = "operator"
	Symbol     Type = "symbol"
)

// Types lists every type the lexer can produce.
var Types = []Type{Identifier, Keyword, Number, String, Arrow, Operator, Symbol}

// Token is one lexical unit of QASM source. The JSON field names match the
// document shape downstream tooling consumes.
type Token struct {
	Type  Type   `json:"typ"`
	Value string `json:"val"`
}

// keywords is the fixed reserved-word set tagged with the keyword subtype.
var keywords = map[string]bool{
	"OPENQASM": true,
	"qreg":     true,
	"creg":     true,
	"gate":     true,
	"opaque":   true,
	"barrier":  true,
	"measure":  true,
	"reset":    true,
	"if":       true,
	"include":  true,
	"U":        true,
	"CX":       true,
	"qubit":    true,
	"bit":      true,
	"uint":     true,
	"int":      true,
	"let":      true,
	"const":    true,
	"def":      true,
}
