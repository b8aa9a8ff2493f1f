package graph

import (
	"slices"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
)

// Component is one connected component of a graph.
type Component struct {
	ID    int      // 1-based, in discovery order
	Size  int      // len(Codes)
	Codes []string // sorted
}

// ConnectedComponent returns the codes reachable from start, in
// breadth-first discovery order. Neighbors are visited in adjacency
// insertion order.
func ConnectedComponent(g *Graph, start string) ([]string, error) {
	start = NormalizeCode(start)
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(ErrNotFound, "airport %q", start)
	}
	return bfs(g, start, mapset.NewThreadUnsafeSet[string]()), nil
}

// bfs walks from start, marking every discovered code in visited.
func bfs(g *Graph, start string, visited mapset.Set[string]) []string {
	visited.Add(start)
	queue := []string{start}
	var component []string

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		component = append(component, cur)

		for _, nb := range g.Neighbors(cur) {
			if visited.Add(nb.Code) {
				queue = append(queue, nb.Code)
			}
		}
	}
	return component
}

// Components partitions all vertices into connected components. Start
// vertices are taken in vertex insertion order. An empty graph has no
// components.
func Components(g *Graph) []Component {
	visited := mapset.NewThreadUnsafeSetWithSize[string](g.VertexCount())
	var comps []Component

	for _, code := range g.Codes() {
		if visited.Contains(code) {
			continue
		}
		codes := bfs(g, code, visited)
		slices.Sort(codes)
		comps = append(comps, Component{
			ID:    len(comps) + 1,
			Size:  len(codes),
			Codes: codes,
		})
	}
	return comps
}

// IsConnected reports whether the graph has exactly one component.
// An empty graph is not connected.
func IsConnected(g *Graph) bool {
	if g.VertexCount() == 0 {
		return false
	}
	// A single traversal is enough to decide.
	reached := bfs(g, g.Codes()[0], mapset.NewThreadUnsafeSetWithSize[string](g.VertexCount()))
	return len(reached) == g.VertexCount()
}

// LargestComponent returns the component with the most vertices. Ties go
// to the component discovered first. The zero Component is returned for an
// empty graph.
func LargestComponent(g *Graph) Component {
	var best Component
	for _, c := range Components(g) {
		if c.Size > best.Size {
			best = c
		}
	}
	return best
}

// Subgraph returns the subgraph induced by codes. Vertex and edge insertion
// order follow g, so traversals over the result match traversals over g.
// Unknown codes are ignored.
func Subgraph(g *Graph, codes []string) *Graph {
	members := mapset.NewThreadUnsafeSet[string](codes...)
	sub := New()
	if members.Cardinality() == 0 {
		return sub
	}

	for _, c := range g.Codes() {
		if members.Contains(c) {
			sub.AddVertex(g.nodes[c])
		}
	}
	// Collect edges that are fully within the member set.
	for _, e := range g.Edges() {
		if members.Contains(e.A, e.B) {
			sub.AddEdge(e.A, e.B, e.Weight)
		}
	}
	return sub
}
