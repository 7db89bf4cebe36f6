package chem

import (
	attr "github.com/turtacn/go-selfies/pkg/types/attribution"
)

// AttributionStore is the side-map from graph objects to the input symbols
// that produced them.  Atoms are keyed by their stable index; bonds by the
// unordered endpoint pair.  The store never points back into the graph.
type AttributionStore struct {
	atoms map[int][]attr.Attribution
	bonds map[[2]int][]attr.Attribution
}

// NewAttributionStore constructs an empty store.
func NewAttributionStore() *AttributionStore {
	return &AttributionStore{
		atoms: make(map[int][]attr.Attribution),
		bonds: make(map[[2]int][]attr.Attribution),
	}
}

func bondKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// PutAtom stores a copy of the attribution stack for an atom.
func (s *AttributionStore) PutAtom(idx int, attrs []attr.Attribution) {
	s.atoms[idx] = append([]attr.Attribution(nil), attrs...)
}

// PutBond stores a copy of the attribution stack for a bond.
func (s *AttributionStore) PutBond(a, b int, attrs []attr.Attribution) {
	s.bonds[bondKey(a, b)] = append([]attr.Attribution(nil), attrs...)
}

// Atom returns the attribution stack recorded for an atom.
func (s *AttributionStore) Atom(idx int) []attr.Attribution { return s.atoms[idx] }

// Bond returns the attribution stack recorded for a bond.
func (s *AttributionStore) Bond(a, b int) []attr.Attribution { return s.bonds[bondKey(a, b)] }

//Personal.AI order the ending
