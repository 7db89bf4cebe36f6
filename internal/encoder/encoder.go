// Package encoder translates SMILES strings into SELFIES.  The input graph is
// kekulized first; emission then follows the depth-first order of the graph
// with the last outgoing bond continuing the main chain and every earlier
// bond becoming a branch.  Ring bonds emit a ring token at their
// higher-indexed endpoint with an index tail addressing the partner.
package encoder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/turtacn/go-selfies/internal/chem"
	"github.com/turtacn/go-selfies/internal/grammar"
	"github.com/turtacn/go-selfies/internal/smiles"
	"github.com/turtacn/go-selfies/pkg/errors"
	attr "github.com/turtacn/go-selfies/pkg/types/attribution"
)

// Encode translates a SMILES string into a SELFIES string.  It fails on
// malformed SMILES, on kekulization failure, and on any atom whose bond
// count exceeds its bonding capacity.
func Encode(s string, attribute bool) (string, attr.Map, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil, errors.EncoderErr(errors.ErrCodeSMILESParseFailed,
			"SMILES must not be empty", s)
	}

	g, err := smiles.Parse(s, attribute)
	if err != nil {
		return "", nil, err
	}

	if !g.Kekulize() {
		return "", nil, errors.EncoderErr(errors.ErrCodeKekulizationFailed,
			"aromatic system could not be kekulized", s)
	}

	for i := 0; i < g.Len(); i++ {
		if int(g.BondCount(i)) > g.Atom(i).BondingCapacity() {
			return "", nil, errors.EncoderErr(errors.ErrCodeBondCapacityExceeded,
				fmt.Sprintf("atom %d (%s) carries %d bonds but allows %d",
					i, g.Atom(i).Element, int(g.BondCount(i)), g.Atom(i).BondingCapacity()), s)
		}
	}

	e := &encoder{g: g, attribute: attribute}
	var sb strings.Builder
	var m attr.Map
	for i, root := range g.Roots() {
		tokens, err := e.chain(root, nil)
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			sb.WriteString(".")
		}
		for _, t := range tokens {
			sb.WriteString(t.text)
			if attribute {
				m = append(m, attr.TokenAttribution{Token: t.text, Attributes: t.attrs})
			}
		}
	}
	return sb.String(), m, nil
}

type token struct {
	text  string
	attrs []attr.Attribution
}

type encoder struct {
	g         *chem.Graph
	attribute bool
}

// chain emits the token sequence for the subtree rooted at idx, entered via
// `into` (nil for fragment roots).  The main chain is iterative; branches
// recurse.
func (e *encoder) chain(idx int, into *chem.DirectedBond) ([]token, error) {
	var out []token
	for {
		out = append(out, e.atomToken(idx, into))

		bonds := e.g.OutBonds(idx)
		lastPlain := -1
		for i, b := range bonds {
			if !b.Ring {
				lastPlain = i
			}
		}

		for i, b := range bonds {
			switch {
			case b.Ring:
				if b.Dst < b.Src {
					ring, err := e.ringTokens(b)
					if err != nil {
						return nil, err
					}
					out = append(out, ring...)
				}
				// Ring opens are emitted by the partner endpoint.
			case i != lastPlain:
				sub, err := e.chain(b.Dst, b)
				if err != nil {
					return nil, err
				}
				head, err := e.branchTokens(b, len(sub))
				if err != nil {
					return nil, err
				}
				out = append(out, head...)
				out = append(out, sub...)
			}
		}

		if lastPlain < 0 {
			return out, nil
		}
		idx, into = bonds[lastPlain].Dst, bonds[lastPlain]
	}
}

// atomToken renders one atom symbol: the incoming bond character followed by
// the atom body in SELFIES spelling (explicit hydrogen and charge digits).
func (e *encoder) atomToken(idx int, into *chem.DirectedBond) token {
	atom := e.g.Atom(idx)

	chirality := atom.Chirality
	if chirality != chem.ChiralityNone && e.g.HasOutRingBond(idx) && e.ringParityOdd(idx) {
		if chirality == chem.ChiralityCCW {
			chirality = chem.ChiralityCW
		} else {
			chirality = chem.ChiralityCCW
		}
	}

	var sb strings.Builder
	sb.WriteString("[")
	if into != nil {
		sb.WriteString(grammar.BondChar(into.Order, into.Stereo))
	}
	if atom.Isotope > 0 {
		sb.WriteString(strconv.Itoa(atom.Isotope))
	}
	sb.WriteString(atom.Element)
	sb.WriteString(chirality)
	if atom.HCount() != chem.HImplicit && atom.HCount() != 0 {
		sb.WriteString("H")
		sb.WriteString(strconv.Itoa(atom.HCount()))
	}
	if atom.Charge() != 0 {
		sb.WriteString(fmt.Sprintf("%+d", atom.Charge()))
	}
	sb.WriteString("]")

	return token{text: sb.String(), attrs: e.atomAttrs(idx)}
}

// branchTokens renders the branch head: the branch symbol for the bond order
// plus the index tail encoding the branch length minus one.
func (e *encoder) branchTokens(b *chem.DirectedBond, length int) ([]token, error) {
	digits := grammar.SymbolsFromIndex(length - 1)
	if len(digits) > 3 {
		return nil, errors.New(errors.ErrCodeSELFIESEmissionFailed,
			"branch too long for the Branch symbol family").
			WithDetail(fmt.Sprintf("length=%d", length))
	}

	attrs := e.bondAttrs(b)
	out := []token{{
		text:  fmt.Sprintf("[%sBranch%d]", orderPrefix(b.Order), len(digits)),
		attrs: attrs,
	}}
	for _, d := range digits {
		out = append(out, token{text: d, attrs: attrs})
	}
	return out, nil
}

// ringTokens renders a ring closure at its second endpoint: the ring symbol
// (stereo-pair form when a single-order ring bond carries stereo markers)
// plus the index tail encoding the offset back to the partner.
func (e *encoder) ringTokens(b *chem.DirectedBond) ([]token, error) {
	digits := grammar.SymbolsFromIndex(b.Src - b.Dst - 1)
	if len(digits) > 3 {
		return nil, errors.New(errors.ErrCodeSELFIESEmissionFailed,
			"ring bond spans too many atoms for the Ring symbol family").
			WithDetail(fmt.Sprintf("span=%d", b.Src-b.Dst))
	}

	rev, _ := e.g.GetDirBond(b.Dst, b.Src)
	var head string
	if b.Order == chem.OrderSingle && (b.Stereo != "" || rev.Stereo != "") {
		head = fmt.Sprintf("[%s%sRing%d]", stereoOrDash(rev.Stereo), stereoOrDash(b.Stereo), len(digits))
	} else {
		head = fmt.Sprintf("[%sRing%d]", orderPrefix(b.Order), len(digits))
	}

	attrs := e.bondAttrs(b)
	out := []token{{text: head, attrs: attrs}}
	for _, d := range digits {
		out = append(out, token{text: d, attrs: attrs})
	}
	return out, nil
}

// ringParityOdd computes the permutation parity between the SMILES adjacency
// order and the SELFIES traversal order of an atom's outgoing bonds.  Bonds
// fall into three groups: ring closes, ring opens (sorted by destination),
// then branches and the chain continuation.  An odd number of inversions
// means the chirality marker must flip.
func (e *encoder) ringParityOdd(idx int) bool {
	bonds := e.g.OutBonds(idx)
	type slot struct {
		pos   int
		group int
		dst   int
	}
	slots := make([]slot, len(bonds))
	for i, b := range bonds {
		g := 2
		if b.Ring {
			if b.Dst < b.Src {
				g = 0
			} else {
				g = 1
			}
		}
		slots[i] = slot{pos: i, group: g, dst: b.Dst}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].group != slots[j].group {
			return slots[i].group < slots[j].group
		}
		if slots[i].group == 1 {
			return slots[i].dst < slots[j].dst
		}
		return false
	})

	inversions := 0
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].pos > slots[j].pos {
				inversions++
			}
		}
	}
	return inversions%2 == 1
}

func (e *encoder) atomAttrs(idx int) []attr.Attribution {
	if !e.attribute || e.g.Attributions() == nil {
		return nil
	}
	src := e.g.Attributions().Atom(idx)
	out := make([]attr.Attribution, len(src))
	copy(out, src)
	return out
}

func (e *encoder) bondAttrs(b *chem.DirectedBond) []attr.Attribution {
	if !e.attribute || e.g.Attributions() == nil {
		return nil
	}
	src := e.g.Attributions().Bond(b.Src, b.Dst)
	if len(src) == 0 {
		src = e.g.Attributions().Atom(b.Dst)
	}
	out := make([]attr.Attribution, len(src))
	copy(out, src)
	return out
}

func orderPrefix(order float64) string {
	switch order {
	case chem.OrderDouble:
		return "="
	case chem.OrderTriple:
		return "#"
	}
	return ""
}

func stereoOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

//Personal.AI order the ending
