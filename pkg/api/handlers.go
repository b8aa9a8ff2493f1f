package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"airgraph/pkg/graph"
	"airgraph/pkg/mst"
	"airgraph/pkg/routing"
)

// maxFarthestK caps the k query parameter of the farthest endpoint.
const maxFarthestK = 1000

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	g      *graph.Graph
	router routing.Router
	stats  StatsResponse
}

// NewHandlers creates handlers over g. Path, farthest and nearest queries go
// through router.
func NewHandlers(g *graph.Graph, router routing.Router) *Handlers {
	return &Handlers{
		g:      g,
		router: router,
		stats:  NewStats(g),
	}
}

// NewStats summarizes g for the stats endpoint.
func NewStats(g *graph.Graph) StatsResponse {
	b := g.Bound()
	return StatsResponse{
		NumAirports:      g.VertexCount(),
		NumRoutes:        g.EdgeCount(),
		NumComponents:    len(graph.Components(g)),
		LargestComponent: graph.LargestComponent(g).Size,
		Bounds:           [4]float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()},
	}
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stats)
}

// HandleAirport handles GET /api/v1/airports/{code}.
func (h *Handlers) HandleAirport(w http.ResponseWriter, r *http.Request) {
	n, ok := h.g.Vertex(r.PathValue("code"))
	if !ok {
		writeError(w, http.StatusNotFound, "airport_not_found", "code")
		return
	}
	writeJSON(w, http.StatusOK, toAirportJSON(n))
}

// HandleConnectivity handles GET /api/v1/connectivity.
func (h *Handlers) HandleConnectivity(w http.ResponseWriter, r *http.Request) {
	comps := graph.Components(h.g)
	if contextDone(w, r) {
		return
	}

	resp := ConnectivityResponse{
		Connected:  len(comps) == 1,
		Components: make([]ComponentJSON, len(comps)),
	}
	for i, c := range comps {
		resp.Components[i] = ComponentJSON{ID: c.ID, Size: c.Size, Codes: c.Codes}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleMST handles GET /api/v1/mst.
func (h *Handlers) HandleMST(w http.ResponseWriter, r *http.Request) {
	f := mst.Build(h.g)
	if contextDone(w, r) {
		return
	}

	resp := MSTResponse{
		Trees:         make([]TreeJSON, len(f.Trees)),
		TotalWeightKm: f.TotalWeight,
	}
	for i, t := range f.Trees {
		edges := make([]EdgeJSON, len(t.Edges))
		for j, e := range t.Edges {
			edges[j] = EdgeJSON{From: e.A, To: e.B, DistanceKm: e.Weight}
		}
		resp.Trees[i] = TreeJSON{
			ComponentID:   t.ComponentID,
			Members:       t.Members,
			Edges:         edges,
			TotalWeightKm: t.TotalWeight,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePath handles GET /api/v1/path?from=&to=[&format=geojson].
func (h *Handlers) HandlePath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "from")
		return
	}
	if to == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "to")
		return
	}
	format := q.Get("format")
	if format != "" && format != "json" && format != "geojson" {
		writeError(w, http.StatusBadRequest, "invalid_request", "format")
		return
	}

	path, dist := h.router.ShortestPath(from, to)
	if contextDone(w, r) {
		return
	}
	if path == nil {
		writeError(w, http.StatusNotFound, "no_route_found", "")
		return
	}

	if format == "geojson" {
		w.Header().Set("Content-Type", "application/geo+json")
		json.NewEncoder(w).Encode(pathFeatureCollection(path, dist))
		return
	}

	resp := PathResponse{
		TotalDistanceKm: dist,
		Airports:        make([]AirportJSON, len(path)),
	}
	for i, n := range path {
		resp.Airports[i] = toAirportJSON(n)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleFarthest handles GET /api/v1/farthest/{code}?k=.
func (h *Handlers) HandleFarthest(w http.ResponseWriter, r *http.Request) {
	k := routing.DefaultFarthestK
	if s := r.URL.Query().Get("k"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > maxFarthestK {
			writeError(w, http.StatusBadRequest, "invalid_request", "k")
			return
		}
		k = v
	}

	code := graph.NormalizeCode(r.PathValue("code"))
	ranked, err := h.router.Farthest(code, k)
	if err != nil {
		h.writeQueryError(w, err)
		return
	}
	if contextDone(w, r) {
		return
	}

	resp := FarthestResponse{Source: code, Airports: make([]RankedJSON, len(ranked))}
	for i, rk := range ranked {
		resp.Airports[i] = RankedJSON{Airport: toAirportJSON(rk.Node), DistanceKm: rk.Distance}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleNearest handles GET /api/v1/nearest?lat=&lng=.
func (h *Handlers) HandleNearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "lat")
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "lng")
		return
	}

	res, err := h.router.Nearest(lat, lng)
	if err != nil {
		h.writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NearestResponse{Airport: toAirportJSON(res.Node), DistanceKm: res.DistanceKm})
}

func (h *Handlers) writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, routing.ErrNotFound):
		writeError(w, http.StatusNotFound, "airport_not_found", "")
	case errors.Is(err, routing.ErrInvalidCoord):
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "")
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

// contextDone writes a timeout response when the request deadline passed
// while the engine was computing.
func contextDone(w http.ResponseWriter, r *http.Request) bool {
	if r.Context().Err() == nil {
		return false
	}
	writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
	return true
}

func pathFeatureCollection(path []graph.Node, dist float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, len(path))
	for i, n := range path {
		line[i] = orb.Point{n.Lon, n.Lat}
	}
	route := geojson.NewFeature(line)
	route.Properties["total_distance_km"] = dist
	fc.Append(route)

	for _, n := range path {
		f := geojson.NewFeature(orb.Point{n.Lon, n.Lat})
		f.Properties["code"] = n.Code
		f.Properties["name"] = n.Name
		f.Properties["city"] = n.City
		f.Properties["country"] = n.Country
		fc.Append(f)
	}
	return fc
}

func toAirportJSON(n graph.Node) AirportJSON {
	return AirportJSON{
		Code:    n.Code,
		Name:    n.Name,
		City:    n.City,
		Country: n.Country,
		Lat:     n.Lat,
		Lng:     n.Lon,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	writeJSON(w, status, ErrorResponse{Error: code, Field: field})
}
