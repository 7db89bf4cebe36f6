package selfies

import (
	"sort"
	"strings"

	"github.com/turtacn/go-selfies/internal/grammar"
)

// LenSelfies returns the number of symbols in a SELFIES string, counting dot
// separators as symbols.
func LenSelfies(selfies string) int {
	return strings.Count(selfies, "[") + strings.Count(selfies, ".")
}

// SplitSelfies tokenizes a SELFIES string into its symbols (dot separators
// included).  It fails with a decoder error on a hanging bracket or stray
// character.
func SplitSelfies(selfies string) ([]string, error) {
	tokens, err := grammar.Tokenize(selfies)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out, nil
}

// GetAlphabetFromSelfies collects the set of symbols appearing across the
// given SELFIES strings, excluding the dot separator, sorted.
func GetAlphabetFromSelfies(selfiesSeq []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, s := range selfiesSeq {
		symbols, err := SplitSelfies(s)
		if err != nil {
			return nil, err
		}
		for _, sym := range symbols {
			if sym != grammar.Dot {
				seen[sym] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out, nil
}

//Personal.AI order the ending
