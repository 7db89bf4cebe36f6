// Package matching finds perfect matchings on small undirected graphs.  It is
// the core of kekulization: the aromatic π-subgraph has a perfect matching
// exactly when its double bonds can be placed so that every atom receives one.
//
// The algorithm is a greedy seed followed by augmenting-path search.  General
// graphs would need blossom contraction for odd cycles; aromatic subgraphs in
// chemistry are bipartite in practice, so the simpler search suffices and an
// unmatchable odd system is reported as failure.
package matching

import "sort"

// FindPerfectMatching returns match with match[v] = partner of v for every
// vertex of the graph, or ok=false when no perfect matching exists.  adj is
// the adjacency list over vertices 0..len(adj)-1; neighbor order influences
// only which of several valid matchings is produced, never whether one is
// found.  Complexity is O(V·E).
func FindPerfectMatching(adj [][]int) (match []int, ok bool) {
	n := len(adj)
	match = make([]int, n)
	for i := range match {
		match[i] = -1
	}

	greedySeed(adj, match)

	for root := 0; root < n; root++ {
		if match[root] != -1 {
			continue
		}
		if !augment(adj, match, root) {
			return nil, false
		}
	}
	return match, true
}

// greedySeed pairs vertices in ascending free-degree order, each with its
// unmatched neighbor of smallest free degree.  Degrees are decremented as
// matches are made so that sparsely connected vertices are served first.
func greedySeed(adj [][]int, match []int) {
	n := len(adj)
	freeDegree := make([]int, n)
	for v := range adj {
		freeDegree[v] = len(adj[v])
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return freeDegree[order[i]] < freeDegree[order[j]]
	})

	for _, v := range order {
		if match[v] != -1 {
			continue
		}
		mate := -1
		for _, w := range adj[v] {
			if match[w] != -1 {
				continue
			}
			if mate == -1 || freeDegree[w] < freeDegree[mate] {
				mate = w
			}
		}
		if mate == -1 {
			continue
		}
		match[v] = mate
		match[mate] = v
		for _, w := range adj[v] {
			freeDegree[w]--
		}
		for _, w := range adj[mate] {
			freeDegree[w]--
		}
	}
}

// augment runs a BFS from the unmatched root over alternating paths and, on
// reaching another unmatched vertex, flips edge membership along the path.
// Returns false when no augmenting path exists.
func augment(adj [][]int, match []int, root int) bool {
	n := len(adj)
	// fromOuter/viaInner record how each outer vertex was reached: an
	// unmatched edge fromOuter→viaInner followed by the matched edge
	// viaInner→vertex.
	fromOuter := make([]int, n)
	viaInner := make([]int, n)
	outer := make([]bool, n)
	for i := range fromOuter {
		fromOuter[i] = -1
		viaInner[i] = -1
	}
	outer[root] = true

	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if match[u] == v {
				continue
			}
			if match[v] == -1 {
				if v == root {
					continue
				}
				flip(match, fromOuter, viaInner, root, u, v)
				return true
			}
			w := match[v]
			if !outer[w] {
				outer[w] = true
				fromOuter[w] = u
				viaInner[w] = v
				queue = append(queue, w)
			}
		}
	}
	return false
}

// flip rewrites the matching along the alternating path root … u – v, where v
// is the free vertex discovered by augment.
func flip(match, fromOuter, viaInner []int, root, u, v int) {
	a, b := u, v
	for {
		pu, pv := fromOuter[a], viaInner[a]
		match[a] = b
		match[b] = a
		if a == root {
			return
		}
		a, b = pu, pv
	}
}

//Personal.AI order the ending
