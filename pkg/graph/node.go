package graph

import (
	"fmt"
	"strings"
)

// Node is an airport vertex. Identity is the Code alone.
type Node struct {
	Code    string
	Name    string
	City    string
	Country string
	Lat     float64
	Lon     float64
}

// NewNode builds a Node with trimmed text fields and an upper-cased code.
func NewNode(code, name, city, country string, lat, lon float64) Node {
	return Node{
		Code:    NormalizeCode(code),
		Name:    strings.TrimSpace(name),
		City:    strings.TrimSpace(city),
		Country: strings.TrimSpace(country),
		Lat:     lat,
		Lon:     lon,
	}
}

// NormalizeCode trims and upper-cases an airport code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Equal reports whether two nodes are the same airport.
func (n Node) Equal(o Node) bool {
	return n.Code == o.Code
}

// Info returns the node as a plain field mapping.
func (n Node) Info() map[string]any {
	return map[string]any{
		"Code":      n.Code,
		"Name":      n.Name,
		"City":      n.City,
		"Country":   n.Country,
		"Latitude":  n.Lat,
		"Longitude": n.Lon,
	}
}

func (n Node) String() string {
	return fmt.Sprintf("<Airport %s - %s, %s>", n.Code, n.City, n.Country)
}
