package graph

import (
	"airgraph/pkg/geo"
	"airgraph/pkg/routes"
)

// Build creates a Graph from parsed route records. For every record both
// airports are registered, then the edge between them is weighted with the
// haversine distance. Records are applied in file order.
func Build(result *routes.ParseResult) *Graph {
	g := New()
	if result == nil {
		return g
	}

	for _, r := range result.Routes {
		src := nodeFromAirport(r.Source)
		dst := nodeFromAirport(r.Dest)
		g.AddVertex(src)
		g.AddVertex(dst)
		g.AddEdge(src.Code, dst.Code, geo.Haversine(src.Lat, src.Lon, dst.Lat, dst.Lon))
	}

	return g
}

func nodeFromAirport(a routes.Airport) Node {
	return NewNode(a.Code, a.Name, a.City, a.Country, a.Lat, a.Lon)
}
