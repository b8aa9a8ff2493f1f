package api

// AirportJSON is an airport in responses.
type AirportJSON struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// ComponentJSON is one connected component.
type ComponentJSON struct {
	ID    int      `json:"id"`
	Size  int      `json:"size"`
	Codes []string `json:"codes"`
}

// ConnectivityResponse is the JSON response for GET /api/v1/connectivity.
type ConnectivityResponse struct {
	Connected  bool            `json:"is_connected"`
	Components []ComponentJSON `json:"components"`
}

// EdgeJSON is an undirected weighted edge.
type EdgeJSON struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

// TreeJSON is the spanning tree of one component.
type TreeJSON struct {
	ComponentID   int        `json:"component_id"`
	Members       []string   `json:"members"`
	Edges         []EdgeJSON `json:"edges"`
	TotalWeightKm float64    `json:"total_weight_km"`
}

// MSTResponse is the JSON response for GET /api/v1/mst.
type MSTResponse struct {
	Trees         []TreeJSON `json:"trees"`
	TotalWeightKm float64    `json:"total_weight_km"`
}

// PathResponse is the JSON response for a successful path query.
type PathResponse struct {
	TotalDistanceKm float64       `json:"total_distance_km"`
	Airports        []AirportJSON `json:"airports"`
}

// RankedJSON is an airport with its distance from the query source.
type RankedJSON struct {
	Airport    AirportJSON `json:"airport"`
	DistanceKm float64     `json:"distance_km"`
}

// FarthestResponse is the JSON response for GET /api/v1/farthest/{code}.
type FarthestResponse struct {
	Source   string       `json:"source"`
	Airports []RankedJSON `json:"airports"`
}

// NearestResponse is the JSON response for GET /api/v1/nearest.
type NearestResponse struct {
	Airport    AirportJSON `json:"airport"`
	DistanceKm float64     `json:"distance_km"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	NumAirports      int        `json:"num_airports"`
	NumRoutes        int        `json:"num_routes"`
	NumComponents    int        `json:"num_components"`
	LargestComponent int        `json:"largest_component"`
	Bounds           [4]float64 `json:"bounds"` // minLng, minLat, maxLng, maxLat
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
