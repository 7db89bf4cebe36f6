// Package chem provides the molecular graph shared by both translation
// directions: atoms, directed bonds with ordered adjacency, ring bonds,
// the aromatic subgraph, per-atom bond accounting, and the attribution
// side-map.  Graphs are built, read, and discarded per molecule; they are
// never shared across goroutines.
package chem

import (
	"strconv"
	"strings"

	"github.com/turtacn/go-selfies/internal/constraints"
)

// Chirality markers.
const (
	ChiralityNone = ""
	ChiralityCW   = "@@"
	ChiralityCCW  = "@"
)

// HImplicit marks an absent explicit hydrogen count: the count is implied by
// valence rather than written in the source notation.
const HImplicit = -1

// Atom is a single vertex of the molecular graph.  Index is assigned once on
// insertion and never changes; the bonding-capacity memo is invalidated when
// the hydrogen count or charge changes, or when the process constraint table
// is swapped.
type Atom struct {
	Element   string
	Aromatic  bool
	Isotope   int    // 0 = absent
	Chirality string // "", "@", "@@"
	hCount    int    // HImplicit = absent
	charge    int

	index int // -1 until added to a graph

	capMemo    int
	capMemoGen uint64 // 0 = memo empty
}

// NewAtom constructs an unattached atom with no explicit hydrogens and no
// charge.
func NewAtom(element string, aromatic bool) *Atom {
	return &Atom{
		Element:  element,
		Aromatic: aromatic,
		hCount:   HImplicit,
		index:    -1,
	}
}

// Index returns the graph index of the atom, or -1 if it has not been added
// to a graph yet.
func (a *Atom) Index() int { return a.index }

// HCount returns the explicit hydrogen count, or HImplicit when the count is
// implied by valence.
func (a *Atom) HCount() int { return a.hCount }

// Charge returns the formal charge.
func (a *Atom) Charge() int { return a.charge }

// SetHCount sets the explicit hydrogen count and invalidates the capacity memo.
func (a *Atom) SetHCount(h int) {
	a.hCount = h
	a.capMemoGen = 0
}

// SetCharge sets the formal charge and invalidates the capacity memo.
func (a *Atom) SetCharge(c int) {
	a.charge = c
	a.capMemoGen = 0
}

// InvertChirality swaps "@" and "@@"; atoms without a chirality marker are
// unchanged.  Chirality does not participate in capacity, so the memo stays.
func (a *Atom) InvertChirality() {
	switch a.Chirality {
	case ChiralityCCW:
		a.Chirality = ChiralityCW
	case ChiralityCW:
		a.Chirality = ChiralityCCW
	}
}

// BondingCapacity returns the maximum sum of incident bond orders: the
// constraint-table value for (element, charge) minus the explicit hydrogen
// count if one is present.  The value is memoized until the hydrogen count,
// the charge, or the process constraint table changes.  The result is never
// negative.
func (a *Atom) BondingCapacity() int {
	tableCap, gen := constraints.CapacityFor(a.Element, a.charge)
	if a.capMemoGen == gen {
		return a.capMemo
	}
	if a.hCount != HImplicit {
		tableCap -= a.hCount
	}
	if tableCap < 0 {
		tableCap = 0
	}
	a.capMemo = tableCap
	a.capMemoGen = gen
	return tableCap
}

// Body renders the atom the way a SMILES bracket body reads, without the
// brackets: isotope, element, chirality, hydrogen count, charge.  The SELFIES
// atom-symbol family and the SMILES writer both build on this.
func (a *Atom) Body() string {
	var sb strings.Builder
	if a.Isotope > 0 {
		sb.WriteString(strconv.Itoa(a.Isotope))
	}
	if a.Aromatic {
		sb.WriteString(strings.ToLower(a.Element))
	} else {
		sb.WriteString(a.Element)
	}
	sb.WriteString(a.Chirality)
	// A zero count is what brackets already imply, so it is never written.
	if a.hCount != HImplicit && a.hCount != 0 {
		sb.WriteString("H")
		if a.hCount != 1 {
			sb.WriteString(strconv.Itoa(a.hCount))
		}
	}
	switch {
	case a.charge > 0:
		sb.WriteString("+")
		if a.charge != 1 {
			sb.WriteString(strconv.Itoa(a.charge))
		}
	case a.charge < 0:
		sb.WriteString("-")
		if a.charge != -1 {
			sb.WriteString(strconv.Itoa(-a.charge))
		}
	}
	return sb.String()
}

// NeedsBrackets reports whether the atom must be written in bracket form in
// SMILES: any modifier, or an element outside the organic subset.
func (a *Atom) NeedsBrackets() bool {
	if a.Isotope > 0 || a.Chirality != ChiralityNone || a.hCount != HImplicit || a.charge != 0 {
		return true
	}
	return !organicSubset[a.Element]
}

// organicSubset is the set of elements SMILES may write without brackets.
var organicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true,
	"S": true, "F": true, "Cl": true, "Br": true, "I": true,
}

// OrganicSubset reports whether the element belongs to the SMILES organic
// subset.
func OrganicSubset(element string) bool { return organicSubset[element] }

//Personal.AI order the ending
