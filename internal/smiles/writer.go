package smiles

import (
	"fmt"
	"strings"

	"github.com/turtacn/go-selfies/internal/chem"
	attr "github.com/turtacn/go-selfies/pkg/types/attribution"
)

// Write serializes a molecular graph to SMILES, walking each fragment
// depth-first in adjacency order.  Ring-closure digits are allocated smallest
// first and recycled once closed.  When the graph carries an attribution
// store, the returned map links every atom and ring token to its recorded
// input symbols.
func Write(g *chem.Graph) (string, attr.Map) {
	w := &writer{g: g, ringNums: make(map[[2]int]int)}
	for i, root := range g.Roots() {
		if i > 0 {
			w.sb.WriteString(".")
		}
		w.writeChain(root, nil)
	}
	return w.sb.String(), w.attrs
}

type writer struct {
	g        *chem.Graph
	sb       strings.Builder
	ringNums map[[2]int]int // open ring pair → digit
	usedNums []bool
	attrs    attr.Map
}

// writeChain emits the atom chain starting at idx, entered through `into`
// (nil for fragment roots).  Iterative over the main chain; recursive only
// into branches.
func (w *writer) writeChain(idx int, into *chem.DirectedBond) {
	for {
		w.writeAtom(idx, into)

		bonds := w.g.OutBonds(idx)
		var plain []*chem.DirectedBond
		for _, b := range bonds {
			if b.Ring {
				w.writeRingDigit(b)
			} else {
				plain = append(plain, b)
			}
		}

		if len(plain) == 0 {
			return
		}
		for _, b := range plain[:len(plain)-1] {
			w.sb.WriteString("(")
			w.writeChain(b.Dst, b)
			w.sb.WriteString(")")
		}
		last := plain[len(plain)-1]
		idx, into = last.Dst, last
	}
}

// writeAtom emits the bond prefix of `into` followed by the atom token.
func (w *writer) writeAtom(idx int, into *chem.DirectedBond) {
	if into != nil {
		w.sb.WriteString(bondPrefix(into.Order, into.Stereo))
	}
	atom := w.g.Atom(idx)
	var token string
	if atom.NeedsBrackets() {
		token = "[" + atom.Body() + "]"
	} else {
		token = atom.Body()
	}
	w.sb.WriteString(token)
	w.attribute(token, w.g.Attributions() != nil, func(s *chem.AttributionStore) []attr.Attribution {
		return s.Atom(idx)
	})
}

// writeRingDigit emits one half of a ring bond: a fresh digit on first
// encounter, the matching digit (recycled afterwards) on the second.
func (w *writer) writeRingDigit(b *chem.DirectedBond) {
	key := [2]int{b.Src, b.Dst}
	if key[0] > key[1] {
		key[0], key[1] = key[1], key[0]
	}

	num, open := w.ringNums[key]
	if !open {
		num = w.allocRingNum()
		w.ringNums[key] = num
	} else {
		delete(w.ringNums, key)
		w.usedNums[num] = false
	}

	token := bondPrefix(b.Order, b.Stereo) + formatRingNum(num)
	w.sb.WriteString(token)
	w.attribute(token, w.g.Attributions() != nil, func(s *chem.AttributionStore) []attr.Attribution {
		return s.Bond(b.Src, b.Dst)
	})
}

func (w *writer) allocRingNum() int {
	for i := 1; i < len(w.usedNums); i++ {
		if !w.usedNums[i] {
			w.usedNums[i] = true
			return i
		}
	}
	if len(w.usedNums) == 0 {
		w.usedNums = append(w.usedNums, true) // digit 0 stays reserved
	}
	w.usedNums = append(w.usedNums, true)
	return len(w.usedNums) - 1
}

func formatRingNum(n int) string {
	if n < 10 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%%%02d", n)
}

func (w *writer) attribute(token string, enabled bool, get func(*chem.AttributionStore) []attr.Attribution) {
	if !enabled {
		return
	}
	src := get(w.g.Attributions())
	cp := make([]attr.Attribution, len(src))
	copy(cp, src)
	w.attrs = append(w.attrs, attr.TokenAttribution{Token: token, Attributes: cp})
}

// bondPrefix renders the SMILES character(s) for a bond: stereo markers win
// over order characters, single bonds are implied.
func bondPrefix(order float64, stereo string) string {
	if stereo != "" {
		return stereo
	}
	switch order {
	case chem.OrderDouble:
		return "="
	case chem.OrderTriple:
		return "#"
	}
	return ""
}

//Personal.AI order the ending
