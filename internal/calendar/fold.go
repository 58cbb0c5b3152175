package calendar

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldName reduces a user-supplied name to lower-case ASCII-like form by
// case folding and stripping combining marks ("Māgh" becomes "magh").
func foldName(val string) string {
	val = strings.TrimSpace(val)
	// Transformers keep state, so the chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	out, _, err := transform.String(t, val)
	if err != nil {
		return strings.ToLower(val)
	}
	return out
}
