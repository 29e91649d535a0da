package geodesy

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// LatLng returns the horizontal position of p as an s2.LatLng.
func (p GeographicPoint) LatLng() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(p.Lat), Lng: s1.Angle(p.Lon)}
}

// GeographicPointFromLatLng returns the point at ll with height h (meters).
func GeographicPointFromLatLng(ll s2.LatLng, h float64) GeographicPoint {
	return GeographicPoint{Lat: ll.Lat.Radians(), Lon: ll.Lng.Radians(), Height: h}
}

// FromDegrees builds a GeographicPoint from decimal degrees.
func FromDegrees(lat, lon, h float64) GeographicPoint {
	return GeographicPointFromLatLng(s2.LatLngFromDegrees(lat, lon), h)
}
