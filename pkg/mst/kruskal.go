// Package mst computes minimum spanning forests over airport graphs with
// Kruskal's algorithm.
//
// A connected graph yields a single tree. A disconnected graph yields one
// tree per connected component, each built by an independent Kruskal pass
// over the component's induced subgraph, so trees never merge and every
// component reports its own weight.
//
// Edges are ordered by (weight, A, B) with A < B, which makes the output
// identical across runs even when weights tie.
package mst

import (
	"cmp"
	"slices"

	"airgraph/pkg/graph"
)

// Tree is the minimum spanning tree of one connected component.
type Tree struct {
	ComponentID int
	Members     []string // sorted
	Edges       []graph.Edge
	TotalWeight float64
}

// Forest is a minimum spanning forest.
type Forest struct {
	Trees       []Tree
	TotalWeight float64
}

// EdgeCount returns the number of edges across all trees.
func (f Forest) EdgeCount() int {
	n := 0
	for _, t := range f.Trees {
		n += len(t.Edges)
	}
	return n
}

// Build computes the minimum spanning forest of g. An empty graph yields an
// empty forest.
func Build(g *graph.Graph) Forest {
	if g.VertexCount() == 0 {
		return Forest{}
	}

	if graph.IsConnected(g) {
		members := slices.Sorted(slices.Values(g.Codes()))
		t := kruskal(g, members)
		t.ComponentID = 1
		return Forest{Trees: []Tree{t}, TotalWeight: t.TotalWeight}
	}

	var f Forest
	for _, c := range graph.Components(g) {
		sub := graph.Subgraph(g, c.Codes)
		t := kruskal(sub, c.Codes)
		t.ComponentID = c.ID
		f.Trees = append(f.Trees, t)
		f.TotalWeight += t.TotalWeight
	}
	return f
}

// kruskal runs one pass over every edge of g with a fresh DisjointSet sized
// to members.
func kruskal(g *graph.Graph, members []string) Tree {
	edges := sortedEdges(g)
	ds := graph.NewDisjointSet(members)
	t := Tree{Members: members}

	for _, e := range edges {
		if len(t.Edges) == len(members)-1 {
			break
		}
		if ds.Connected(e.A, e.B) {
			continue // would close a cycle
		}
		if ds.Union(e.A, e.B) {
			t.Edges = append(t.Edges, e)
			t.TotalWeight += e.Weight
		}
	}
	return t
}

// sortedEdges copies the edges of g (already A < B) and sorts them by
// (weight, A, B).
func sortedEdges(g *graph.Graph) []graph.Edge {
	edges := slices.Clone(g.Edges())
	slices.SortFunc(edges, func(x, y graph.Edge) int {
		return cmp.Or(
			cmp.Compare(x.Weight, y.Weight),
			cmp.Compare(x.A, y.A),
			cmp.Compare(x.B, y.B),
		)
	})
	return edges
}
