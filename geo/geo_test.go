package geo

import (
	"math"
	"testing"

	"wayfare/models"
)

func TestDistanceKm(t *testing.T) {
	rome := models.Coordinates{Latitude: 41.9028, Longitude: 12.4964}
	paris := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	london := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}

	cases := []struct {
		name     string
		a, b     models.Coordinates
		wantKm   float64
		tolerance float64
	}{
		{"rome-paris", rome, paris, 1105, 15},
		{"paris-london", paris, london, 344, 10},
		{"same point", rome, rome, 0, 0.001},
	}

	for _, c := range cases {
		got := DistanceKm(c.a, c.b)
		if math.Abs(got-c.wantKm) > c.tolerance {
			t.Errorf("%s: got %.1f km, want %.1f±%.1f", c.name, got, c.wantKm, c.tolerance)
		}
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := models.Coordinates{Latitude: 41.9, Longitude: 12.5}
	b := models.Coordinates{Latitude: 45.4, Longitude: 9.2}
	if d1, d2 := DistanceKm(a, b), DistanceKm(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}
