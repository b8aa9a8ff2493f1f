package routing

import (
	"cmp"
	"math"
	"slices"

	"github.com/cockroachdb/errors"

	"airgraph/pkg/graph"
)

// ErrNotFound is returned when an airport code is not in the graph.
var ErrNotFound = graph.ErrNotFound

// DefaultFarthestK is the number of airports Farthest returns when k < 0.
const DefaultFarthestK = 10

// Ranked is an airport with its shortest distance from a source.
type Ranked struct {
	Node     graph.Node
	Distance float64
}

// Router is the interface for graph queries.
type Router interface {
	SingleSource(start string) (*Tree, error)
	ShortestPath(start, end string) ([]graph.Node, float64)
	Farthest(start string, k int) ([]Ranked, error)
	Nearest(lat, lng float64) (SnapResult, error)
}

// Engine implements Router over a loaded graph. It holds no mutable state,
// so one Engine can serve concurrent queries.
type Engine struct {
	g       *graph.Graph
	snapper *Snapper
}

// NewEngine creates a query engine for g. The graph must not be modified
// afterwards.
func NewEngine(g *graph.Graph) *Engine {
	return &Engine{
		g:       g,
		snapper: NewSnapper(g),
	}
}

// Graph returns the graph the engine queries.
func (e *Engine) Graph() *graph.Graph { return e.g }

// SingleSource computes shortest distances and predecessors from start to
// every vertex.
func (e *Engine) SingleSource(start string) (*Tree, error) {
	start = graph.NormalizeCode(start)
	if !e.g.HasVertex(start) {
		return nil, errors.Wrapf(ErrNotFound, "airport %q", start)
	}
	return dijkstra(e.g, start, ""), nil
}

// ShortestPath returns the airports along a shortest path from start to end
// and its length in km. Unknown codes and unreachable pairs both yield
// (nil, +Inf).
func (e *Engine) ShortestPath(start, end string) ([]graph.Node, float64) {
	start, end = graph.NormalizeCode(start), graph.NormalizeCode(end)
	if !e.g.HasVertex(start) || !e.g.HasVertex(end) {
		return nil, math.Inf(1)
	}

	t := dijkstra(e.g, start, end)
	codes := t.PathTo(end)
	if codes == nil {
		return nil, math.Inf(1)
	}

	path := make([]graph.Node, len(codes))
	for i, c := range codes {
		path[i], _ = e.g.Vertex(c)
	}
	return path, t.Dist[end]
}

// Farthest returns up to k reachable airports sorted by distance from start,
// farthest first. Equal distances are ordered by code. start itself is never
// included. A negative k selects DefaultFarthestK.
func (e *Engine) Farthest(start string, k int) ([]Ranked, error) {
	if k < 0 {
		k = DefaultFarthestK
	}
	t, err := e.SingleSource(start)
	if err != nil {
		return nil, err
	}

	ranked := make([]Ranked, 0, len(t.Dist))
	for code, d := range t.Dist {
		if code == t.Source || math.IsInf(d, 1) {
			continue
		}
		n, _ := e.g.Vertex(code)
		ranked = append(ranked, Ranked{Node: n, Distance: d})
	}
	slices.SortFunc(ranked, func(a, b Ranked) int {
		return cmp.Or(
			cmp.Compare(b.Distance, a.Distance),
			cmp.Compare(a.Node.Code, b.Node.Code),
		)
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked, nil
}

// Nearest returns the airport closest to lat/lng.
func (e *Engine) Nearest(lat, lng float64) (SnapResult, error) {
	return e.snapper.Snap(lat, lng)
}
