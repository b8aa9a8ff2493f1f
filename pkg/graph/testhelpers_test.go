package graph

import "airgraph/pkg/geo"

// exampleGraph builds the four-airport fixture:
//
//	A(0,0) --- B(0,1) --- C(0,2)        D(10,10)
//
// D has no routes.
func exampleGraph() *Graph {
	g := New()
	g.AddVertex(NewNode("A", "Alpha", "Acity", "X", 0, 0))
	g.AddVertex(NewNode("B", "Bravo", "Bcity", "X", 0, 1))
	g.AddVertex(NewNode("C", "Charlie", "Ccity", "X", 0, 2))
	g.AddVertex(NewNode("D", "Delta", "Dcity", "Y", 10, 10))
	g.AddEdge("A", "B", geo.Haversine(0, 0, 0, 1))
	g.AddEdge("B", "C", geo.Haversine(0, 1, 0, 2))
	return g
}

// weighted builds a graph from code lists and explicit weights.
func weighted(codes []string, edges []Edge) *Graph {
	g := New()
	for i, c := range codes {
		g.AddVertex(NewNode(c, c, c, "X", float64(i), float64(i)))
	}
	for _, e := range edges {
		g.AddEdge(e.A, e.B, e.Weight)
	}
	return g
}
