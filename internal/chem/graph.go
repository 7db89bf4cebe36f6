package chem

import (
	"fmt"
	"sort"

	attr "github.com/turtacn/go-selfies/pkg/types/attribution"
)

// Bond orders.  Aromatic bonds carry OrderAromatic until kekulization
// rewrites them to alternating single/double.
const (
	OrderSingle   = 1.0
	OrderDouble   = 2.0
	OrderTriple   = 3.0
	OrderAromatic = 1.5
)

// DirectedBond is an edge of the molecular graph.  Source/destination follow
// the order dictated by the originating string; ring bonds are stored once
// per direction with matching order.
type DirectedBond struct {
	Src    int
	Dst    int
	Order  float64
	Stereo string // "", "/", "\\"
	Ring   bool
}

// flipStereo mirrors a stereo marker for the reversed bond direction.
func flipStereo(s string) string {
	switch s {
	case "/":
		return "\\"
	case "\\":
		return "/"
	}
	return s
}

// Graph is the molecular graph.  Atom indices are dense, assigned in
// insertion order, and never recycled.
type Graph struct {
	atoms     []*Atom
	roots     []int
	adj       [][]*DirectedBond
	dirIndex  map[[2]int]*DirectedBond // non-ring: (src,dst) once; ring: both directions
	bondCount []float64
	hasRing   []bool

	// aromatic subgraph: undirected adjacency, present only while
	// order-1.5 bonds exist.  Neighbor slices keep insertion order so that
	// kekulization is deterministic.
	aromAdj map[int][]int

	attrs *AttributionStore
}

// NewGraph constructs an empty graph.  When attribute is true, an attribution
// side-map is kept and populated by the codecs.
func NewGraph(attribute bool) *Graph {
	g := &Graph{
		dirIndex: make(map[[2]int]*DirectedBond),
		aromAdj:  make(map[int][]int),
	}
	if attribute {
		g.attrs = NewAttributionStore()
	}
	return g
}

// Len returns the number of atoms.
func (g *Graph) Len() int { return len(g.atoms) }

// Atom returns the atom at the given index.
func (g *Graph) Atom(idx int) *Atom { return g.atoms[idx] }

// Roots returns the fragment-root indices in insertion order.
func (g *Graph) Roots() []int { return g.roots }

// OutBonds returns the ordered outgoing adjacency list of an atom.  The
// returned slice is owned by the graph and must not be mutated.
func (g *Graph) OutBonds(idx int) []*DirectedBond { return g.adj[idx] }

// BondCount returns the sum of incident bond orders for an atom.
func (g *Graph) BondCount(idx int) float64 { return g.bondCount[idx] }

// HasOutRingBond reports whether the atom carries at least one outgoing ring
// bond.
func (g *Graph) HasOutRingBond(idx int) bool { return g.hasRing[idx] }

// Attributions returns the attribution side-map, or nil when attribution is
// disabled.
func (g *Graph) Attributions() *AttributionStore { return g.attrs }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation API
// ─────────────────────────────────────────────────────────────────────────────

// AddAtom appends the atom, assigns its index, and returns it.  When markRoot
// is set the atom starts a new fragment.  Aromatic atoms join the aromatic
// subgraph vertex set.
func (g *Graph) AddAtom(a *Atom, markRoot bool) int {
	idx := len(g.atoms)
	a.index = idx
	g.atoms = append(g.atoms, a)
	g.adj = append(g.adj, nil)
	g.bondCount = append(g.bondCount, 0)
	g.hasRing = append(g.hasRing, false)
	if markRoot {
		g.roots = append(g.roots, idx)
	}
	if a.Aromatic {
		if _, ok := g.aromAdj[idx]; !ok {
			g.aromAdj[idx] = nil
		}
	}
	return idx
}

// AddBond inserts a non-ring directed bond src→dst.  src must be smaller than
// dst and the pair must not be bonded yet.
func (g *Graph) AddBond(src, dst int, order float64, stereo string) *DirectedBond {
	if src >= dst {
		panic(fmt.Sprintf("chem: AddBond requires src < dst, got %d >= %d", src, dst))
	}
	if g.HasBond(src, dst) {
		panic(fmt.Sprintf("chem: bond %d-%d already exists", src, dst))
	}
	b := &DirectedBond{Src: src, Dst: dst, Order: order, Stereo: stereo}
	g.adj[src] = append(g.adj[src], b)
	g.dirIndex[[2]int{src, dst}] = b
	g.bondCount[src] += order
	g.bondCount[dst] += order
	if order == OrderAromatic {
		g.addAromaticEdge(src, dst)
	}
	return b
}

// AddRingBond inserts the two directed halves of a ring bond with matching
// order.  aPos/bPos select the insertion position within the respective
// adjacency list; -1 appends.  Position-based insertion lets callers reserve
// a slot for a ring bond whose partner is discovered later, keeping adjacency
// order equal to notation order.
func (g *Graph) AddRingBond(a, b int, order float64, aStereo, bStereo string, aPos, bPos int) {
	ab := &DirectedBond{Src: a, Dst: b, Order: order, Stereo: aStereo, Ring: true}
	ba := &DirectedBond{Src: b, Dst: a, Order: order, Stereo: bStereo, Ring: true}
	g.insertBond(a, ab, aPos)
	g.insertBond(b, ba, bPos)
	g.dirIndex[[2]int{a, b}] = ab
	g.dirIndex[[2]int{b, a}] = ba
	g.bondCount[a] += order
	g.bondCount[b] += order
	g.hasRing[a] = true
	g.hasRing[b] = true
	if order == OrderAromatic {
		g.addAromaticEdge(a, b)
	}
}

func (g *Graph) insertBond(at int, bond *DirectedBond, pos int) {
	if pos < 0 || pos >= len(g.adj[at]) {
		g.adj[at] = append(g.adj[at], bond)
		return
	}
	g.adj[at] = append(g.adj[at], nil)
	copy(g.adj[at][pos+1:], g.adj[at][pos:])
	g.adj[at][pos] = bond
}

// HasBond reports whether any bond exists between the two atoms.
func (g *Graph) HasBond(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	_, ok := g.dirIndex[[2]int{a, b}]
	return ok
}

// GetDirBond returns the directed bond src→dst.  When only the opposite
// orientation is stored (non-ring bonds), a reversed view is synthesized with
// the stereo marker mirrored.  The second result is false when the atoms are
// not bonded.
func (g *Graph) GetDirBond(src, dst int) (DirectedBond, bool) {
	if b, ok := g.dirIndex[[2]int{src, dst}]; ok {
		return *b, true
	}
	if b, ok := g.dirIndex[[2]int{dst, src}]; ok {
		return DirectedBond{
			Src:    src,
			Dst:    dst,
			Order:  b.Order,
			Stereo: flipStereo(b.Stereo),
			Ring:   b.Ring,
		}, true
	}
	return DirectedBond{}, false
}

// UpdateBondOrder rewrites the order of an existing bond.  newOrder must lie
// in [1, 3].  Ring bonds have both stored orientations updated atomically;
// bond-count sums on both endpoints absorb the delta.
func (g *Graph) UpdateBondOrder(a, b int, newOrder float64) {
	if newOrder < OrderSingle || newOrder > OrderTriple {
		panic(fmt.Sprintf("chem: bond order %v out of range [1,3]", newOrder))
	}
	ab, ok := g.dirIndex[[2]int{a, b}]
	if !ok {
		ab, ok = g.dirIndex[[2]int{b, a}]
		if !ok {
			panic(fmt.Sprintf("chem: no bond between %d and %d", a, b))
		}
	}
	delta := newOrder - ab.Order
	ab.Order = newOrder
	if ab.Ring {
		rev := g.dirIndex[[2]int{ab.Dst, ab.Src}]
		rev.Order = newOrder
	}
	g.bondCount[a] += delta
	g.bondCount[b] += delta
}

// ─────────────────────────────────────────────────────────────────────────────
// Aromatic subgraph
// ─────────────────────────────────────────────────────────────────────────────

func (g *Graph) addAromaticEdge(a, b int) {
	g.aromAdj[a] = append(g.aromAdj[a], b)
	g.aromAdj[b] = append(g.aromAdj[b], a)
}

// IsKekulized reports whether the aromatic subgraph is empty: no aromatic
// atom and no order-1.5 bond remains.
func (g *Graph) IsKekulized() bool { return len(g.aromAdj) == 0 }

// AromaticVertices returns the sorted vertex set of the aromatic subgraph.
func (g *Graph) AromaticVertices() []int {
	out := make([]int, 0, len(g.aromAdj))
	for v := range g.aromAdj {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// AromaticNeighbors returns the neighbor list of a vertex in the aromatic
// subgraph, in insertion order.
func (g *Graph) AromaticNeighbors(v int) []int { return g.aromAdj[v] }

// ─────────────────────────────────────────────────────────────────────────────
// Attribution forwarding
// ─────────────────────────────────────────────────────────────────────────────

// AttributeAtom records the attribution stack for an atom, when attribution
// is enabled.
func (g *Graph) AttributeAtom(idx int, attrs []attr.Attribution) {
	if g.attrs != nil {
		g.attrs.PutAtom(idx, attrs)
	}
}

// AttributeBond records the attribution stack for the bond between two atoms,
// when attribution is enabled.
func (g *Graph) AttributeBond(a, b int, attrs []attr.Attribution) {
	if g.attrs != nil {
		g.attrs.PutBond(a, b, attrs)
	}
}

//Personal.AI order the ending
