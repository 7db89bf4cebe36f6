// Package smiles converts between SMILES text and the molecular graph.  The
// parser covers the standard OpenSMILES subset used by the codec: organic
// subset atoms, bracket atoms with isotope / chirality / hydrogen count /
// charge, bond characters -=#/\, branch parentheses, single-digit ring
// closures, and dot disconnection.
package smiles

import (
	"fmt"
	"strings"

	"github.com/turtacn/go-selfies/internal/chem"
	"github.com/turtacn/go-selfies/internal/constraints"
	"github.com/turtacn/go-selfies/pkg/errors"
	attr "github.com/turtacn/go-selfies/pkg/types/attribution"
)

// aromaticSymbols maps lowercase aromatic notation to the element symbol.
var aromaticSymbols = map[string]string{
	"b": "B", "c": "C", "n": "N", "o": "O", "p": "P", "s": "S",
	"se": "Se", "as": "As", "te": "Te",
}

// ringOpen records a pending ring-bond half at its opening digit.
type ringOpen struct {
	atom   int
	pos    int // reserved slot in the atom's adjacency list
	order  float64
	stereo string
}

// pendingBond carries a bond character until the next atom or ring digit.
type pendingBond struct {
	set      bool
	explicit bool // an explicit '-' keeps aromatic neighbors at order 1
	order    float64
	stereo   string
}

// Parse builds a molecular graph from a SMILES string.  When attribute is
// set, every atom records the input index and text of the SMILES atom that
// produced it.
func Parse(s string, attribute bool) (*chem.Graph, error) {
	g := chem.NewGraph(attribute)

	rings := make(map[byte]ringOpen)
	var stack []int
	prev := -1
	var pending pendingBond
	atomOrdinal := 0

	fail := func(code errors.ErrorCode, msg string) error {
		return errors.EncoderErr(code, msg, s)
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '(':
			if prev < 0 {
				return nil, fail(errors.ErrCodeSMILESParseFailed, "branch before any atom")
			}
			stack = append(stack, prev)
			i++

		case c == ')':
			if len(stack) == 0 {
				return nil, fail(errors.ErrCodeSMILESParseFailed, "unmatched ')'")
			}
			if pending.set {
				return nil, fail(errors.ErrCodeSMILESParseFailed, "dangling bond before ')'")
			}
			prev = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			i++

		case c == '.':
			if pending.set {
				return nil, fail(errors.ErrCodeSMILESParseFailed, "bond character before '.'")
			}
			if len(stack) != 0 {
				return nil, fail(errors.ErrCodeSMILESParseFailed, "dot inside branch")
			}
			prev = -1
			i++

		case c == '-' || c == '=' || c == '#' || c == '/' || c == '\\':
			if pending.set {
				return nil, fail(errors.ErrCodeSMILESParseFailed, "two consecutive bond characters")
			}
			pending = bondFromSMILESChar(c)
			i++

		case c == '$' || c == ':':
			return nil, fail(errors.ErrCodeSMILESUnsupported,
				fmt.Sprintf("unsupported bond character %q", string(c)))

		case c == '*':
			return nil, fail(errors.ErrCodeSMILESUnsupported, "wildcard atoms are not supported")

		case c == '%':
			return nil, fail(errors.ErrCodeSMILESUnsupported,
				"multi-digit ring closures are not supported")

		case c >= '0' && c <= '9':
			if prev < 0 {
				return nil, fail(errors.ErrCodeSMILESParseFailed, "ring digit before any atom")
			}
			if err := closeOrOpenRing(g, rings, c, prev, &pending); err != nil {
				return nil, errors.Wrap(err, errors.CodeUnknown, "ring bond rejected").
					WithDetail("smiles=" + s)
			}
			i++

		default:
			atom, text, n, err := parseAtomAt(s, i)
			if err != nil {
				return nil, err
			}
			idx := g.AddAtom(atom, prev < 0)
			if attribute {
				g.AttributeAtom(idx, []attr.Attribution{{Index: atomOrdinal, Token: text}})
			}
			if prev >= 0 {
				order, stereo := pending.order, pending.stereo
				if !pending.set {
					order, stereo = chem.OrderSingle, ""
				}
				if order == chem.OrderSingle && !pending.explicit &&
					g.Atom(prev).Aromatic && atom.Aromatic {
					order = chem.OrderAromatic
				}
				g.AddBond(prev, idx, order, stereo)
				if attribute {
					g.AttributeBond(prev, idx, []attr.Attribution{{Index: atomOrdinal, Token: text}})
				}
			}
			pending = pendingBond{}
			prev = idx
			atomOrdinal++
			i += n
		}
	}

	if len(stack) != 0 {
		return nil, fail(errors.ErrCodeSMILESParseFailed, "unclosed '('")
	}
	if pending.set {
		return nil, fail(errors.ErrCodeSMILESParseFailed, "dangling bond at end of input")
	}
	if len(rings) != 0 {
		return nil, fail(errors.ErrCodeSMILESUnclosedRing, "ring bond never closed")
	}
	return g, nil
}

func bondFromSMILESChar(c byte) pendingBond {
	switch c {
	case '=':
		return pendingBond{set: true, order: chem.OrderDouble}
	case '#':
		return pendingBond{set: true, order: chem.OrderTriple}
	case '/':
		return pendingBond{set: true, order: chem.OrderSingle, stereo: "/"}
	case '\\':
		return pendingBond{set: true, order: chem.OrderSingle, stereo: "\\"}
	default: // '-'
		return pendingBond{set: true, explicit: true, order: chem.OrderSingle}
	}
}

// closeOrOpenRing handles one ring digit on the current atom.  The first
// occurrence reserves an adjacency slot; the second inserts the ring bond at
// the reserved position so adjacency order matches notation order.
func closeOrOpenRing(g *chem.Graph, rings map[byte]ringOpen, digit byte, prev int, pending *pendingBond) error {
	open, ok := rings[digit]
	if !ok {
		rings[digit] = ringOpen{
			atom:   prev,
			pos:    len(g.OutBonds(prev)),
			order:  pendingOrder(pending),
			stereo: pending.stereo,
		}
		*pending = pendingBond{}
		return nil
	}
	delete(rings, digit)

	a, b := open.atom, prev
	if a == b {
		return errors.New(errors.ErrCodeSMILESParseFailed, "ring bond closes on its own atom")
	}
	if g.HasBond(a, b) {
		return errors.New(errors.ErrCodeSMILESParseFailed, "duplicate bond between ring atoms")
	}

	order := open.order
	if pendingOrder(pending) > order {
		order = pendingOrder(pending)
	}
	if order == 0 {
		order = chem.OrderSingle
	}
	if order == chem.OrderSingle && g.Atom(a).Aromatic && g.Atom(b).Aromatic {
		order = chem.OrderAromatic
	}

	aStereo, bStereo := open.stereo, pending.stereo
	if aStereo == "" && bStereo != "" {
		aStereo = flip(bStereo)
	} else if bStereo == "" && aStereo != "" {
		bStereo = flip(aStereo)
	}

	g.AddRingBond(a, b, order, aStereo, bStereo, open.pos, -1)
	*pending = pendingBond{}
	return nil
}

// pendingOrder maps an unset pending bond to 0 so that max(open, close)
// resolves explicit markers over implied singles.
func pendingOrder(p *pendingBond) float64 {
	if !p.set {
		return 0
	}
	return p.order
}

func flip(s string) string {
	switch s {
	case "/":
		return "\\"
	case "\\":
		return "/"
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Atom parsing
// ─────────────────────────────────────────────────────────────────────────────

// parseAtomAt reads the atom starting at s[i] and returns the atom, its source
// text, and the number of bytes consumed.
func parseAtomAt(s string, i int) (*chem.Atom, string, int, error) {
	if s[i] == '[' {
		j := strings.IndexByte(s[i:], ']')
		if j < 0 {
			return nil, "", 0, errors.EncoderErr(errors.ErrCodeSMILESUnclosedBracket,
				"unclosed '[' in SMILES", s)
		}
		text := s[i : i+j+1]
		atom, err := parseBracketBody(s[i+1:i+j], s)
		if err != nil {
			return nil, "", 0, err
		}
		return atom, text, j + 1, nil
	}

	// Two-letter organic subset atoms.
	if i+1 < len(s) {
		two := s[i : i+2]
		if two == "Cl" || two == "Br" {
			return chem.NewAtom(two, false), two, 2, nil
		}
	}

	c := s[i]
	switch {
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		if !chem.OrganicSubset(sym) {
			return nil, "", 0, errors.EncoderErr(errors.ErrCodeSMILESUnknownElement,
				fmt.Sprintf("element %q must be bracketed or is unknown", sym), s)
		}
		return chem.NewAtom(sym, false), sym, 1, nil
	case c >= 'a' && c <= 'z':
		sym := string(c)
		element, ok := aromaticSymbols[sym]
		if !ok || !chem.OrganicSubset(element) {
			return nil, "", 0, errors.EncoderErr(errors.ErrCodeSMILESUnknownElement,
				fmt.Sprintf("unknown aromatic atom %q", sym), s)
		}
		return chem.NewAtom(element, true), sym, 1, nil
	default:
		return nil, "", 0, errors.EncoderErr(errors.ErrCodeSMILESParseFailed,
			fmt.Sprintf("unexpected character %q", string(c)), s)
	}
}

// parseBracketBody parses the inside of a bracket atom:
// isotope? element chirality? H-count? charge?
func parseBracketBody(body, full string) (*chem.Atom, error) {
	if body == "" {
		return nil, errors.EncoderErr(errors.ErrCodeSMILESParseFailed, "empty bracket atom", full)
	}
	i := 0

	isotope := 0
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		isotope = isotope*10 + int(body[i]-'0')
		i++
	}

	if i >= len(body) {
		return nil, errors.EncoderErr(errors.ErrCodeSMILESParseFailed,
			"bracket atom has no element", full)
	}

	var element string
	aromatic := false
	if body[i] >= 'a' && body[i] <= 'z' {
		// Aromatic atom: try the two-letter symbols first.
		if i+1 < len(body) {
			if el, ok := aromaticSymbols[body[i:i+2]]; ok {
				element, aromatic = el, true
				i += 2
			}
		}
		if element == "" {
			el, ok := aromaticSymbols[string(body[i])]
			if !ok {
				return nil, errors.EncoderErr(errors.ErrCodeSMILESUnknownElement,
					fmt.Sprintf("unknown aromatic element %q", string(body[i])), full)
			}
			element, aromatic = el, true
			i++
		}
	} else if body[i] >= 'A' && body[i] <= 'Z' {
		element = string(body[i])
		i++
		if i < len(body) && body[i] >= 'a' && body[i] <= 'z' &&
			constraints.IsElement(element+string(body[i])) {
			element += string(body[i])
			i++
		}
	} else {
		return nil, errors.EncoderErr(errors.ErrCodeSMILESParseFailed,
			fmt.Sprintf("unexpected character %q in bracket atom", string(body[i])), full)
	}

	if !constraints.IsElement(element) {
		return nil, errors.EncoderErr(errors.ErrCodeSMILESUnknownElement,
			fmt.Sprintf("unknown element %q", element), full)
	}

	atom := chem.NewAtom(element, aromatic)
	atom.Isotope = isotope

	// Chirality: only "@" and "@@" are supported; extensions like @TB1 are
	// explicitly rejected.
	if i < len(body) && body[i] == '@' {
		atom.Chirality = "@"
		i++
		if i < len(body) && body[i] == '@' {
			atom.Chirality = "@@"
			i++
		}
		if i < len(body) && body[i] >= 'A' && body[i] <= 'Z' && body[i] != 'H' {
			return nil, errors.EncoderErr(errors.ErrCodeSMILESUnsupported,
				"extended chirality annotations are not supported", full)
		}
	}

	if i < len(body) && body[i] == 'H' {
		i++
		h := 1
		if i < len(body) && body[i] >= '0' && body[i] <= '9' {
			h = 0
			for i < len(body) && body[i] >= '0' && body[i] <= '9' {
				h = h*10 + int(body[i]-'0')
				i++
			}
		}
		atom.SetHCount(h)
	} else {
		// A bracket atom with no H specification has exactly zero hydrogens.
		atom.SetHCount(0)
	}

	if i < len(body) && (body[i] == '+' || body[i] == '-') {
		sign := 1
		if body[i] == '-' {
			sign = -1
		}
		i++
		mag := 1
		switch {
		case i < len(body) && body[i] >= '0' && body[i] <= '9':
			mag = 0
			for i < len(body) && body[i] >= '0' && body[i] <= '9' {
				mag = mag*10 + int(body[i]-'0')
				i++
			}
		default:
			// "++" / "--" style repeated signs.
			for i < len(body) && ((sign > 0 && body[i] == '+') || (sign < 0 && body[i] == '-')) {
				mag++
				i++
			}
		}
		atom.SetCharge(sign * mag)
	}

	if i != len(body) {
		return nil, errors.EncoderErr(errors.ErrCodeSMILESParseFailed,
			fmt.Sprintf("trailing characters %q in bracket atom", body[i:]), full)
	}
	return atom, nil
}

//Personal.AI order the ending
