package roster

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold trims s and applies Unicode case folding.
func Fold(s string) string {
	// Casers are stateful; build one per call.
	return cases.Fold().String(strings.TrimSpace(s))
}

// TokenSet is an ordered set of folded tokens parsed from a comma-separated cell.
type TokenSet []string

// ParseTokens splits a comma-separated cell into folded tokens.
// Empty tokens and duplicates are dropped; first-seen order is kept.
func ParseTokens(cell string) TokenSet {
	var out TokenSet
	for _, raw := range strings.Split(cell, ",") {
		tok := Fold(raw)
		if tok == "" || out.Has(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Has reports whether token (trimmed and folded) is a member of the set.
func (t TokenSet) Has(token string) bool {
	want := Fold(token)
	for _, tok := range t {
		if tok == want {
			return true
		}
	}
	return false
}

// String renders the set back into its cell form.
func (t TokenSet) String() string {
	return strings.Join(t, ", ")
}
