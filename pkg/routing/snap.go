package routing

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/rtree"

	"airgraph/pkg/geo"
	"airgraph/pkg/graph"
)

// ErrInvalidCoord is returned for coordinates outside the WGS84 ranges.
var ErrInvalidCoord = errors.New("invalid coordinates")

// snapCandidates is how many R-tree neighbors are re-ranked by great-circle
// distance. Planar box distance in degrees disagrees with haversine order
// at high latitudes, so the first hit is not always the closest airport.
const snapCandidates = 16

// SnapResult is the airport closest to a query point.
type SnapResult struct {
	Node       graph.Node
	DistanceKm float64
}

// Snapper answers nearest-airport queries with an R-tree over airport points.
type Snapper struct {
	tr rtree.RTreeG[string]
	g  *graph.Graph
}

// NewSnapper indexes every vertex of g. Points are stored as [lon, lat].
func NewSnapper(g *graph.Graph) *Snapper {
	s := &Snapper{g: g}
	for _, code := range g.Codes() {
		n, _ := g.Vertex(code)
		pt := [2]float64{n.Lon, n.Lat}
		s.tr.Insert(pt, pt, code)
	}
	return s
}

// Len returns the number of indexed airports.
func (s *Snapper) Len() int { return s.tr.Len() }

// Snap finds the airport closest to lat/lng.
func (s *Snapper) Snap(lat, lng float64) (SnapResult, error) {
	if !geo.ValidCoord(lat, lng) {
		return SnapResult{}, errors.Wrapf(ErrInvalidCoord, "lat=%v lng=%v", lat, lng)
	}
	if s.tr.Len() == 0 {
		return SnapResult{}, errors.Wrap(ErrNotFound, "no airports indexed")
	}

	target := [2]float64{lng, lat}
	bestDist := math.Inf(1)
	var best graph.Node
	seen := 0

	s.tr.Nearby(
		rtree.BoxDist[float64, string](target, target, nil),
		func(min, max [2]float64, code string, dist float64) bool {
			n, _ := s.g.Vertex(code)
			d := geo.Haversine(lat, lng, n.Lat, n.Lon)
			if d < bestDist || (d == bestDist && code < best.Code) {
				bestDist = d
				best = n
			}
			seen++
			return seen < snapCandidates
		},
	)

	return SnapResult{Node: best, DistanceKm: bestDist}, nil
}
