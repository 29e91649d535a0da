// Package geodesy computes geodetic quantities on reference ellipsoids:
// conversions between geographic and Earth-centered rectangular
// coordinates, and short-line solutions of the direct and inverse geodesic
// problems by the spherical, Puissant and Gauss mid-latitude methods.
//
// All angles are radians. Azimuths are clockwise from north and returned in
// [0, 2π); longitudes are returned in (-π, π].
package geodesy

import (
	"fmt"
	"strings"
)

// Method selects a geodesic solving algorithm.
type Method int

const (
	// MethodSpherical solves on the sphere of the ellipsoid's mean radius.
	// Valid up to SphericalLimit.
	MethodSpherical Method = iota
	// MethodPuissant solves on the ellipsoid with Puissant's series.
	// Valid up to PuissantLimit.
	MethodPuissant
	// MethodGauss solves the inverse problem with the Gauss mid-latitude
	// formulas.
	MethodGauss
)

var methodNames = [...]string{
	MethodSpherical: "spherical",
	MethodPuissant:  "puissant",
	MethodGauss:     "gauss",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod returns the Method named s, ignoring case.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("geodesy: unknown method %q", s)
}

// DirectSolution is the answer to the direct problem.
type DirectSolution struct {
	Lat2  float64 // latitude of point 2
	Lon2  float64 // longitude of point 2
	Azi21 float64 // azimuth at point 2 towards point 1
}

// InverseSolution is the answer to the inverse problem.
type InverseSolution struct {
	S     float64 // distance from point 1 to point 2 (meters)
	Azi12 float64 // azimuth at point 1 towards point 2
	Azi21 float64 // azimuth at point 2 towards point 1
}

// DirectSolver solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (radians).
// Param lon1 is the longitude of point 1 (radians).
// Param azi12 is the azimuth at point 1 (radians).
// Param s12 is the distance from point 1 to point 2 (meters).
type DirectSolver interface {
	Direct(lat1, lon1, azi12, s12 float64) (DirectSolution, error)
}

// InverseSolver solves the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (radians).
// Param lon1 is longitude of point 1 (radians).
// Param lat2 is latitude of point 2 (radians).
// Param lon2 is longitude of point 2 (radians).
type InverseSolver interface {
	Inverse(lat1, lon1, lat2, lon2 float64) (InverseSolution, error)
}

// NewDirectSolver returns the direct solver of method m bound to e. The
// Gauss method has no direct variant and fails with ErrDirectUnsupported.
func NewDirectSolver(m Method, e Ellipsoid) (DirectSolver, error) {
	switch m {
	case MethodSpherical:
		return NewSpherical(e), nil
	case MethodPuissant:
		return NewPuissant(e), nil
	case MethodGauss:
		return nil, fmt.Errorf("%w: %s", ErrDirectUnsupported, m)
	}
	return nil, fmt.Errorf("geodesy: unknown method %s", m)
}

// NewInverseSolver returns the inverse solver of method m bound to e.
func NewInverseSolver(m Method, e Ellipsoid) (InverseSolver, error) {
	switch m {
	case MethodSpherical:
		return NewSpherical(e), nil
	case MethodPuissant:
		return NewPuissant(e), nil
	case MethodGauss:
		return NewGauss(e), nil
	}
	return nil, fmt.Errorf("geodesy: unknown method %s", m)
}

// checkDistance rejects distances the method cannot handle. Distances are
// never clamped to the limit.
func checkDistance(m Method, s, limit float64) error {
	if !(s >= 0 && s <= limit) {
		return &DistanceOutOfRangeError{Method: m, Distance: s, Limit: limit}
	}
	return nil
}

func checkPoints(lat1, lon1, lat2, lon2 float64) error {
	if err := checkLatitude("latitude", lat1); err != nil {
		return err
	}
	if err := checkLatitude("latitude", lat2); err != nil {
		return err
	}
	if err := checkFinite("longitude", lon1); err != nil {
		return err
	}
	return checkFinite("longitude", lon2)
}
