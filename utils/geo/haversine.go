package geo

import (
	"math"

	"github.com/genfuture/careers-api/model"
)

// EarthRadiusKM is the spherical Earth radius used for all distances
const EarthRadiusKM = 6371.0

// Infinite is the sentinel distance for records that cannot be ranked
// (missing coordinates, numeric faults). Such records sort last.
var Infinite = math.Inf(1)

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees. The intermediate value is clamped to 1.0
// before the inverse sine so antipodal or identical points cannot
// overshoot into NaN territory; any NaN result maps to Infinite.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180.0
	rlon1 := lon1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	rlon2 := lon2 * math.Pi / 180.0

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Min(1.0, math.Sqrt(a)))

	d := EarthRadiusKM * c
	if math.IsNaN(d) {
		return Infinite
	}
	return d
}

// Distance returns the distance in kilometers from the query point to a
// university, or Infinite when the record has no usable coordinates.
func Distance(lat, lon float64, u *model.University) float64 {
	if u == nil || u.Latitude == nil || u.Longitude == nil {
		return Infinite
	}
	return Haversine(lat, lon, *u.Latitude, *u.Longitude)
}
