package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"airgraph/pkg/geo"
	"airgraph/pkg/graph"
	"airgraph/pkg/routing"
)

// mockRouter implements routing.Router for testing.
type mockRouter struct {
	path    []graph.Node
	dist    float64
	ranked  []routing.Ranked
	nearest routing.SnapResult
	err     error
}

func (m *mockRouter) SingleSource(start string) (*routing.Tree, error) { return nil, m.err }

func (m *mockRouter) ShortestPath(start, end string) ([]graph.Node, float64) {
	return m.path, m.dist
}

func (m *mockRouter) Farthest(start string, k int) ([]routing.Ranked, error) {
	return m.ranked, m.err
}

func (m *mockRouter) Nearest(lat, lng float64) (routing.SnapResult, error) {
	return m.nearest, m.err
}

// testGraph is two components: BOG-MDE-CTG and the isolated SIN.
func testGraph() *graph.Graph {
	g := graph.New()
	nodes := []graph.Node{
		graph.NewNode("BOG", "El Dorado", "Bogota", "Colombia", 4.7016, -74.1469),
		graph.NewNode("MDE", "Jose Maria Cordova", "Rionegro", "Colombia", 6.1645, -75.4231),
		graph.NewNode("CTG", "Rafael Nunez", "Cartagena", "Colombia", 10.4424, -75.5130),
		graph.NewNode("SIN", "Changi", "Singapore", "Singapore", 1.3644, 103.9915),
	}
	for _, n := range nodes {
		g.AddVertex(n)
	}
	g.AddEdge("BOG", "MDE", geo.Haversine(4.7016, -74.1469, 6.1645, -75.4231))
	g.AddEdge("MDE", "CTG", geo.Haversine(6.1645, -75.4231, 10.4424, -75.5130))
	return g
}

func newTestHandlers() *Handlers {
	g := testGraph()
	return NewHandlers(g, routing.NewEngine(g))
}

func serve(h *Handlers, target string) *httptest.ResponseRecorder {
	mux := NewMux(DefaultConfig(":0"), h)
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
	return v
}

func TestHandleHealth(t *testing.T) {
	w := serve(newTestHandlers(), "/api/v1/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp := decode[HealthResponse](t, w); resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
}

func TestHandleStats(t *testing.T) {
	w := serve(newTestHandlers(), "/api/v1/stats")
	resp := decode[StatsResponse](t, w)
	if resp.NumAirports != 4 || resp.NumRoutes != 2 {
		t.Errorf("airports/routes = %d/%d, want 4/2", resp.NumAirports, resp.NumRoutes)
	}
	if resp.NumComponents != 2 || resp.LargestComponent != 3 {
		t.Errorf("components/largest = %d/%d, want 2/3", resp.NumComponents, resp.LargestComponent)
	}
	if resp.Bounds[0] != -75.5130 || resp.Bounds[2] != 103.9915 {
		t.Errorf("bounds = %v", resp.Bounds)
	}
}

func TestHandleAirport(t *testing.T) {
	h := newTestHandlers()

	w := serve(h, "/api/v1/airports/ctg")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp := decode[AirportJSON](t, w); resp.Code != "CTG" || resp.City != "Cartagena" {
		t.Errorf("airport = %+v", resp)
	}

	w = serve(h, "/api/v1/airports/XXX")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown code status = %d, want 404", w.Code)
	}
}

func TestHandleConnectivity(t *testing.T) {
	w := serve(newTestHandlers(), "/api/v1/connectivity")
	resp := decode[ConnectivityResponse](t, w)
	if resp.Connected {
		t.Error("connected = true, want false")
	}
	if len(resp.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(resp.Components))
	}
	if got := strings.Join(resp.Components[0].Codes, ","); got != "BOG,CTG,MDE" {
		t.Errorf("largest component = %s", got)
	}
}

func TestHandleMST(t *testing.T) {
	w := serve(newTestHandlers(), "/api/v1/mst")
	resp := decode[MSTResponse](t, w)
	if len(resp.Trees) != 2 {
		t.Fatalf("trees = %d, want 2", len(resp.Trees))
	}
	edges := 0
	for _, tr := range resp.Trees {
		edges += len(tr.Edges)
	}
	if edges != 2 {
		t.Errorf("edges = %d, want 2", edges)
	}
	if resp.TotalWeightKm <= 0 {
		t.Errorf("total weight = %f, want > 0", resp.TotalWeightKm)
	}
}

func TestHandlePath(t *testing.T) {
	h := newTestHandlers()

	w := serve(h, "/api/v1/path?from=bog&to=CTG")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. body: %s", w.Code, w.Body.String())
	}
	resp := decode[PathResponse](t, w)
	var codes []string
	for _, a := range resp.Airports {
		codes = append(codes, a.Code)
	}
	if got := strings.Join(codes, ","); got != "BOG,MDE,CTG" {
		t.Errorf("path = %s, want BOG,MDE,CTG", got)
	}
	want := geo.Haversine(4.7016, -74.1469, 6.1645, -75.4231) + geo.Haversine(6.1645, -75.4231, 10.4424, -75.5130)
	if math.Abs(resp.TotalDistanceKm-want) > 1e-9 {
		t.Errorf("distance = %f, want %f", resp.TotalDistanceKm, want)
	}
}

func TestHandlePath_Errors(t *testing.T) {
	h := newTestHandlers()
	tests := []struct {
		target string
		status int
		field  string
	}{
		{"/api/v1/path?to=CTG", http.StatusBadRequest, "from"},
		{"/api/v1/path?from=BOG", http.StatusBadRequest, "to"},
		{"/api/v1/path?from=BOG&to=CTG&format=kml", http.StatusBadRequest, "format"},
		{"/api/v1/path?from=BOG&to=SIN", http.StatusNotFound, ""},
		{"/api/v1/path?from=BOG&to=XXX", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		w := serve(h, tt.target)
		if w.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.target, w.Code, tt.status)
			continue
		}
		if resp := decode[ErrorResponse](t, w); resp.Field != tt.field {
			t.Errorf("%s: field = %q, want %q", tt.target, resp.Field, tt.field)
		}
	}
}

func TestHandlePath_GeoJSON(t *testing.T) {
	w := serve(newTestHandlers(), "/api/v1/path?from=BOG&to=CTG&format=geojson")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Errorf("content type = %q", ct)
	}

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 4 {
		t.Fatalf("got %s with %d features, want FeatureCollection with 4", fc.Type, len(fc.Features))
	}
	if fc.Features[0].Geometry.Type != "LineString" {
		t.Errorf("first feature = %s, want LineString", fc.Features[0].Geometry.Type)
	}
}

func TestHandleFarthest(t *testing.T) {
	h := newTestHandlers()

	w := serve(h, "/api/v1/farthest/bog?k=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decode[FarthestResponse](t, w)
	if resp.Source != "BOG" || len(resp.Airports) != 1 || resp.Airports[0].Airport.Code != "CTG" {
		t.Errorf("farthest = %+v", resp)
	}

	for _, target := range []string{"/api/v1/farthest/BOG?k=0", "/api/v1/farthest/BOG?k=abc"} {
		if w := serve(h, target); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, w.Code)
		}
	}
	if w := serve(h, "/api/v1/farthest/XXX"); w.Code != http.StatusNotFound {
		t.Errorf("unknown source status = %d, want 404", w.Code)
	}
}

func TestHandleNearest(t *testing.T) {
	h := newTestHandlers()

	w := serve(h, "/api/v1/nearest?lat=10.4&lng=-75.5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp := decode[NearestResponse](t, w); resp.Airport.Code != "CTG" {
		t.Errorf("nearest = %s, want CTG", resp.Airport.Code)
	}

	tests := []string{
		"/api/v1/nearest?lng=-75.5",
		"/api/v1/nearest?lat=10.4&lng=abc",
		"/api/v1/nearest?lat=91&lng=0",
	}
	for _, target := range tests {
		if w := serve(h, target); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, w.Code)
		}
	}
}

func TestHandlers_RouterErrors(t *testing.T) {
	g := testGraph()
	tests := []struct {
		err    error
		status int
	}{
		{errors.Wrap(routing.ErrNotFound, "lookup"), http.StatusNotFound},
		{routing.ErrInvalidCoord, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		h := NewHandlers(g, &mockRouter{err: tt.err})
		if w := serve(h, "/api/v1/nearest?lat=0&lng=0"); w.Code != tt.status {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.status)
		}
	}
}

func TestMiddleware_Headers(t *testing.T) {
	cfg := DefaultConfig(":0")
	cfg.CORSOrigin = "https://example.org"
	mux := NewMux(cfg, newTestHandlers())

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != cfg.CORSOrigin {
		t.Errorf("CORS origin = %q", got)
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}

	w = serve(newTestHandlers(), "/api/v1/health")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing generated X-Request-ID")
	}
}

func TestMiddleware_Recovery(t *testing.T) {
	sem := make(chan struct{}, 1)
	h := withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}, sem, DefaultConfig(":0"))

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if len(sem) != 0 {
		t.Error("semaphore slot not released")
	}
}

func TestMiddleware_ConcurrencyLimit(t *testing.T) {
	sem := make(chan struct{}, 1)
	sem <- struct{}{}
	h := withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	}, sem, DefaultConfig(":0"))

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Error("missing Retry-After")
	}
}
