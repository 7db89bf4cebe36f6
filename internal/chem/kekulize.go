package chem

import (
	"math"

	"github.com/turtacn/go-selfies/internal/matching"
)

// aromaticValences lists the total valences an element may assume while part
// of an aromatic system.
var aromaticValences = map[string][]int{
	"B": {3}, "Al": {3},
	"C": {4}, "Si": {4},
	"N": {3, 5}, "P": {3, 5}, "As": {3, 5},
	"O": {2}, "S": {2, 4, 6}, "Se": {2, 4, 6}, "Te": {2, 4, 6},
}

// valenceElectrons is the outer-shell electron count per element, used to
// check that an atom can actually supply the π electron a double bond needs.
var valenceElectrons = map[string]int{
	"H": 1, "He": 2, "Li": 1, "Be": 2, "B": 3, "C": 4, "N": 5, "O": 6,
	"F": 7, "Ne": 8, "Na": 1, "Mg": 2, "Al": 3, "Si": 4, "P": 5, "S": 6,
	"Cl": 7, "Ar": 8, "As": 5, "Se": 6, "Br": 7, "Te": 6, "I": 7,
}

// smallestValence is the lowest standard valence per element, used to derive
// the implied hydrogen count of aromatic organic-subset atoms.
var smallestValence = map[string]int{
	"B": 3, "C": 4, "N": 3, "O": 2, "P": 3, "S": 2,
	"F": 1, "Cl": 1, "Br": 1, "I": 1,
	"Si": 4, "Se": 2, "Te": 2, "As": 3, "Al": 3,
}

// Kekulize eliminates every order-1.5 bond by assigning alternating
// single/double bonds across the aromatic subgraph.  Vertices that provably
// cannot carry a double bond are pruned before matching; if the surviving
// subgraph has no perfect matching the aromatic system cannot be kekulized
// and false is returned with the graph unchanged.
func (g *Graph) Kekulize() bool {
	if g.IsKekulized() {
		return true
	}

	verts := g.AromaticVertices()

	// Prune to the π subgraph and relabel the survivors 0..k-1.
	pos := make(map[int]int)
	kept := make([]int, 0, len(verts))
	for _, v := range verts {
		if g.inPiSubgraph(v) {
			pos[v] = len(kept)
			kept = append(kept, v)
		}
	}

	adj := make([][]int, len(kept))
	for i, v := range kept {
		for _, w := range g.AromaticNeighbors(v) {
			if j, ok := pos[w]; ok {
				adj[i] = append(adj[i], j)
			}
		}
	}

	match, ok := matching.FindPerfectMatching(adj)
	if !ok {
		return false
	}

	// Demote every aromatic bond to a single bond and clear aromatic flags.
	for _, v := range verts {
		for _, w := range g.AromaticNeighbors(v) {
			if v < w {
				g.UpdateBondOrder(v, w, OrderSingle)
			}
		}
		g.atoms[v].Aromatic = false
	}

	// Raise the matched pairs to double bonds.
	for i, j := range match {
		if i < j {
			g.UpdateBondOrder(kept[i], kept[j], OrderDouble)
		}
	}

	g.aromAdj = make(map[int][]int)
	return true
}

// inPiSubgraph is the pruning test: it keeps an aromatic vertex only when
// some allowed aromatic valence leaves room for exactly one double bond on
// top of its σ framework, and the atom has a π electron to contribute.
// The test is conservative; a kept vertex that cannot actually match is
// caught by matching failure, never by wrong output.
func (g *Graph) inPiSubgraph(v int) bool {
	atom := g.atoms[v]
	valences, ok := aromaticValences[atom.Element]
	if !ok {
		return false
	}

	aromDeg := len(g.AromaticNeighbors(v))
	nonArom := 0
	for key, bond := range g.dirIndex {
		if bond.Order == OrderAromatic {
			continue
		}
		if key[0] == v || (key[1] == v && !bond.Ring) {
			nonArom += int(bond.Order)
		}
	}

	hCount := atom.HCount()
	if hCount == HImplicit {
		if atom.Charge() != 0 {
			return false
		}
		sv, known := smallestValence[atom.Element]
		if !known {
			return false
		}
		hCount = sv - int(math.Ceil(g.bondCount[v]))
		if hCount < 0 {
			hCount = 0
		}
	}

	used := aromDeg + nonArom + hCount
	electrons, known := valenceElectrons[atom.Element]
	if !known || electrons-atom.Charge() < used+1 {
		return false
	}
	for _, val := range valences {
		if val == used+1 {
			return true
		}
	}
	return false
}

//Personal.AI order the ending
