package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"qasmflow/internal/emit"
	"qasmflow/internal/token"
)

func newTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Tokenize a circuit and emit the token stream as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokens,
	}
	cmd.Flags().Bool("ndjson", false, "emit one token per line instead of a JSON array")
	cmd.Flags().StringSlice("include", nil, "only emit tokens of these types")
	cmd.Flags().StringSlice("idents-of", nil,
		"emit declared identifiers of these kinds instead of raw tokens (empty list means all kinds)")
	return cmd
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	toks, err := token.Lex(token.StripComments(src))
	if err != nil {
		return err
	}

	ndjson, err := cmd.Flags().GetBool("ndjson")
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("idents-of") {
		kinds, err := cmd.Flags().GetStringSlice("idents-of")
		if err != nil {
			return err
		}
		decls, err := declaredOfKinds(toks, kinds)
		if err != nil {
			return err
		}
		if ndjson {
			return emit.WriteNDJSON(cmd.OutOrStdout(), decls)
		}
		return emit.WriteJSON(cmd.OutOrStdout(), decls, 2)
	}

	include, err := cmd.Flags().GetStringSlice("include")
	if err != nil {
		return err
	}
	if len(include) > 0 {
		toks, err = tokensOfTypes(toks, include)
		if err != nil {
			return err
		}
	}

	if ndjson {
		return emit.WriteNDJSON(cmd.OutOrStdout(), toks)
	}
	return emit.WriteJSON(cmd.OutOrStdout(), toks, 2)
}

// declaredOfKinds collects declared identifiers limited to the requested
// declaration kinds. An empty kind list selects every kind.
func declaredOfKinds(toks []token.Token, kinds []string) ([]token.Declared, error) {
	known := make(map[string]bool, len(token.DeclaredKinds))
	for _, kind := range token.DeclaredKinds {
		known[kind] = true
	}

	wanted := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		if !known[kind] {
			return nil, fmt.Errorf("unknown declaration kind %q (valid: %s)",
				kind, strings.Join(token.DeclaredKinds, ", "))
		}
		wanted[kind] = true
	}

	byKind := token.CollectDeclared(toks)
	decls := make([]token.Declared, 0)
	for _, kind := range token.DeclaredKinds {
		if len(wanted) > 0 && !wanted[kind] {
			continue
		}
		for _, name := range byKind[kind] {
			decls = append(decls, token.Declared{Type: kind, Value: name})
		}
	}
	return decls, nil
}

// tokensOfTypes filters the token stream to the requested token types,
// rejecting type names the lexer never produces.
func tokensOfTypes(toks []token.Token, include []string) ([]token.Token, error) {
	known := make(map[token.Type]bool, len(token.Types))
	names := make([]string, 0, len(token.Types))
	for _, typ := range token.Types {
		known[typ] = true
		names = append(names, string(typ))
	}
	sort.Strings(names)

	wanted := make(map[token.Type]bool, len(include))
	for _, typ := range include {
		if !known[token.Type(typ)] {
			return nil, fmt.Errorf("unknown token type %q (valid: %s)",
				typ, strings.Join(names, ", "))
		}
		wanted[token.Type(typ)] = true
	}

	kept := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if wanted[tok.Type] {
			kept = append(kept, tok)
		}
	}
	return kept, nil
}
