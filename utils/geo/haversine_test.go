package geo

import (
	"math"
	"testing"

	"github.com/genfuture/careers-api/model"
)

func TestHaversineIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{42.3744, -71.1169},
		{-33.8886, 151.1873},
		{90, 0},
	}

	for _, p := range points {
		d := Haversine(p[0], p[1], p[0], p[1])
		if d > 1e-9 {
			t.Errorf("Haversine(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{42.3744, -71.1169, 51.7548, -1.2544}, // Harvard <-> Oxford
		{0, 0, 0, 1},
		{-35.2777, 149.1185, 48.8566, 2.3522},
	}

	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Haversine not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of longitude on the equator is about 111.19 km
	d := Haversine(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.5 {
		t.Errorf("Haversine(0,0,0,1) = %v, want ~111.19", d)
	}
}

func TestHaversineAntipodal(t *testing.T) {
	// Antipodal points must clamp, not NaN; half the circumference
	d := Haversine(0, 0, 0, 180)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Fatalf("antipodal distance = %v, want finite", d)
	}
	want := math.Pi * EarthRadiusKM
	if math.Abs(d-want) > 1.0 {
		t.Errorf("antipodal distance = %v, want ~%v", d, want)
	}
}

func TestHaversineNaNInput(t *testing.T) {
	d := Haversine(math.NaN(), 0, 0, 0)
	if !math.IsInf(d, 1) {
		t.Errorf("Haversine with NaN input = %v, want +Inf", d)
	}
}

func TestDistanceMissingCoordinates(t *testing.T) {
	lat := 10.0
	cases := []model.University{
		{Name: "no coords"},
		{Name: "lat only", Latitude: &lat},
		{Name: "lon only", Longitude: &lat},
	}

	for _, u := range cases {
		if d := Distance(0, 0, &u); !math.IsInf(d, 1) {
			t.Errorf("Distance(%q) = %v, want +Inf", u.Name, d)
		}
	}

	if d := Distance(0, 0, nil); !math.IsInf(d, 1) {
		t.Errorf("Distance(nil) = %v, want +Inf", d)
	}
}
