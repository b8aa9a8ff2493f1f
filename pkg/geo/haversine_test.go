package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name             string
		lat1, lon1       float64
		lat2, lon2       float64
		wantKm           float64
		tolerancePercent float64
	}{
		{
			name: "One degree of latitude",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			wantKm:           111.19492664455873, // pi * 6371 / 180
			tolerancePercent: 0.0001,
		},
		{
			name: "Same point",
			lat1: 4.7016, lon1: -74.1469,
			lat2: 4.7016, lon2: -74.1469,
			wantKm:           0,
			tolerancePercent: 0,
		},
		{
			name: "London to Paris",
			lat1: 51.5074, lon1: -0.1278,
			lat2: 48.8566, lon2: 2.3522,
			wantKm:           343.5,
			tolerancePercent: 1,
		},
		{
			name: "BOG to MDE",
			lat1: 4.70159, lon1: -74.1469,
			lat2: 6.16454, lon2: -75.4231,
			wantKm:           215,
			tolerancePercent: 2,
		},
		{
			name: "Antipodal points",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 180,
			wantKm:           math.Pi * EarthRadiusKm,
			tolerancePercent: 0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if tt.wantKm == 0 {
				assert.Zero(t, got)
				return
			}
			diff := math.Abs(got-tt.wantKm) / tt.wantKm * 100
			assert.LessOrEqualf(t, diff, tt.tolerancePercent, "Haversine = %f km, want ~%f km", got, tt.wantKm)
		})
	}
}

func TestHaversineSymmetricAndNonNegative(t *testing.T) {
	pts := [][2]float64{
		{0, 0}, {0, 1}, {-33.9461, 151.1772}, {40.6398, -73.7789}, {89.9, 10},
		{10, 20}, {-10, -160}, // antipodes
		{33.9461, -28.8228},   // antipode of SYD
	}
	for _, a := range pts {
		for _, b := range pts {
			ab := Haversine(a[0], a[1], b[0], b[1])
			ba := Haversine(b[0], b[1], a[0], a[1])
			assert.Falsef(t, math.IsNaN(ab), "Haversine(%v, %v) is NaN", a, b)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.InDelta(t, ab, ba, 1e-9)
		}
	}
}

func TestHaversineAntipodesNeverNaN(t *testing.T) {
	for lat := -89.5; lat <= 89.5; lat += 0.5 {
		for lon := -179.5; lon <= 0; lon += 0.5 {
			d := Haversine(lat, lon, -lat, lon+180)
			if math.IsNaN(d) {
				t.Fatalf("Haversine(%v, %v) to its antipode is NaN", lat, lon)
			}
			assert.InDelta(t, math.Pi*EarthRadiusKm, d, 0.01)
		}
	}
}

func TestHaversineNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Haversine(math.NaN(), 0, 1, 1)))
}

func TestValidCoord(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"origin", 0, 0, true},
		{"corners", -90, 180, true},
		{"lat too high", 90.01, 0, false},
		{"lon too low", 0, -180.5, false},
		{"NaN", math.NaN(), 0, false},
		{"Inf", 0, math.Inf(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoord(tt.lat, tt.lon))
		})
	}
}

func BenchmarkHaversine(b *testing.B) {
	for b.Loop() {
		Haversine(4.70159, -74.1469, 40.6398, -73.7789)
	}
}
