package graph

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
)

// ErrNotFound is returned when a vertex code is not present in the graph.
var ErrNotFound = errors.New("vertex not found")

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	Code   string
	Weight float64 // great-circle distance in km
}

// Edge is an undirected edge.
type Edge struct {
	A, B   string
	Weight float64
}

// Graph is an undirected weighted graph of airports.
//
// Vertices and adjacency lists keep insertion order so that traversals and
// tie-breaks are reproducible. A Graph is filled during a load phase and must
// not be mutated once queries run against it; concurrent readers are safe.
type Graph struct {
	nodes map[string]Node
	order []string // vertex insertion order
	adj   map[string][]Neighbor
	pairs map[[2]string]struct{}
	edges []Edge // edge insertion order, A < B
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		adj:   make(map[string][]Neighbor),
		pairs: make(map[[2]string]struct{}),
	}
}

// AddVertex inserts n under n.Code. Adding a code twice is a no-op.
func (g *Graph) AddVertex(n Node) {
	if n.Code == "" {
		return
	}
	if _, ok := g.nodes[n.Code]; ok {
		return
	}
	g.nodes[n.Code] = n
	g.order = append(g.order, n.Code)
}

// AddEdge inserts the undirected edge a-b. Unknown endpoints, duplicate
// pairs, self-loops and negative or NaN weights are silently ignored; the
// first weight inserted for a pair wins.
func (g *Graph) AddEdge(a, b string, weight float64) {
	a, b = NormalizeCode(a), NormalizeCode(b)
	if a == b || math.IsNaN(weight) || weight < 0 {
		return
	}
	if _, ok := g.nodes[a]; !ok {
		return
	}
	if _, ok := g.nodes[b]; !ok {
		return
	}
	key := pairKey(a, b)
	if _, dup := g.pairs[key]; dup {
		return
	}
	g.pairs[key] = struct{}{}
	g.adj[a] = append(g.adj[a], Neighbor{Code: b, Weight: weight})
	g.adj[b] = append(g.adj[b], Neighbor{Code: a, Weight: weight})
	g.edges = append(g.edges, Edge{A: key[0], B: key[1], Weight: weight})
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertex looks up a node by code.
func (g *Graph) Vertex(code string) (Node, bool) {
	n, ok := g.nodes[NormalizeCode(code)]
	return n, ok
}

// HasVertex reports whether code is a vertex.
func (g *Graph) HasVertex(code string) bool {
	_, ok := g.nodes[NormalizeCode(code)]
	return ok
}

// HasEdge reports whether the undirected edge a-b exists.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.pairs[pairKey(NormalizeCode(a), NormalizeCode(b))]
	return ok
}

// Codes returns vertex codes in insertion order. The slice must not be modified.
func (g *Graph) Codes() []string { return g.order }

// Neighbors returns the adjacency list of an already normalized code in
// insertion order.
// The slice must not be modified.
func (g *Graph) Neighbors(code string) []Neighbor { return g.adj[code] }

// Edges returns every undirected edge once, in insertion order, with A < B.
// The slice must not be modified.
func (g *Graph) Edges() []Edge { return g.edges }

// Bound returns the bounding box of all vertices.
func (g *Graph) Bound() orb.Bound {
	if len(g.order) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, 0, len(g.order))
	for _, c := range g.order {
		n := g.nodes[c]
		mp = append(mp, orb.Point{n.Lon, n.Lat})
	}
	return mp.Bound()
}

func (g *Graph) String() string {
	return fmt.Sprintf("Graph(vertices=%d, edges=%d)", g.VertexCount(), g.EdgeCount())
}
