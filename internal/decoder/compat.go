package decoder

import (
	"regexp"
	"strings"

	"github.com/turtacn/go-selfies/internal/grammar"
)

// Legacy (v1-era) symbol spellings accepted under Options.Compatible.
var (
	reLegacyBranch = regexp.MustCompile(`^\[Branch([123])_([123])\]$`)
	reLegacyRing   = regexp.MustCompile(`^\[Expl([=#/\\]?)Ring([123])\]$`)
)

var legacyBranchPrefix = map[string]string{"1": "", "2": "=", "3": "#"}

// rewriteLegacy maps legacy spellings onto their current forms:
//
//	[Branch1_2]   → [=Branch1]
//	[Expl=Ring1]  → [=Ring1]
//	[C@@Hexpl]    → [C@@H]
//
// Unrecognized symbols pass through untouched and fail (or read as zero)
// exactly where their modern counterparts would.
func rewriteLegacy(tokens []grammar.Token) []grammar.Token {
	out := make([]grammar.Token, len(tokens))
	for i, tok := range tokens {
		out[i] = grammar.Token{Index: tok.Index, Text: rewriteLegacySymbol(tok.Text)}
	}
	return out
}

func rewriteLegacySymbol(text string) string {
	if m := reLegacyBranch.FindStringSubmatch(text); m != nil {
		return "[" + legacyBranchPrefix[m[2]] + "Branch" + m[1] + "]"
	}
	if m := reLegacyRing.FindStringSubmatch(text); m != nil {
		return "[" + m[1] + "Ring" + m[2] + "]"
	}
	if strings.HasSuffix(text, "expl]") {
		return strings.TrimSuffix(text, "expl]") + "]"
	}
	return text
}

//Personal.AI order the ending
