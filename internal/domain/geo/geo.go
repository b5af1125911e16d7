// Package geo provides great-circle distance helpers over entity coordinates.
package geo

import (
	"slotwise/internal/domain/entity"
	"slotwise/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Point converts a coordinate to an orb point (lng, lat order).
func Point(c entity.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// DistanceKm returns the Haversine distance between a and b in kilometres.
func DistanceKm(a, b entity.Coordinate) float64 {
	return geo.DistanceHaversine(Point(a), Point(b)) / 1000
}

// RoundedDistanceKm is DistanceKm rounded to one decimal place, the
// precision used for scoring and display.
func RoundedDistanceKm(a, b entity.Coordinate) float64 {
	return util.Round1(DistanceKm(a, b))
}

// Within reports whether p lies within radiusKm of center.
func Within(center, p entity.Coordinate, radiusKm float64) bool {
	return DistanceKm(center, p) <= radiusKm
}

// Offset returns the coordinate reached by travelling distanceKm from c on
// the given bearing (degrees clockwise from north).
func Offset(c entity.Coordinate, bearing, distanceKm float64) entity.Coordinate {
	p := geo.PointAtBearingAndDistance(Point(c), bearing, distanceKm*1000)

	return entity.Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}
