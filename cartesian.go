package geodesy

import "math"

// DefaultTolerance is the latitude step (radians) at which the
// rectangular to geographic iteration stops.
const DefaultTolerance = 1e-10

// MaxIterations caps the rectangular to geographic iteration.
const MaxIterations = 100

// GeographicPoint is a position given by geodetic latitude and longitude
// (radians) and ellipsoidal height (meters).
type GeographicPoint struct {
	Lat    float64
	Lon    float64
	Height float64
}

// RectangularPoint is an Earth-centered, Earth-fixed position (meters).
type RectangularPoint struct {
	X, Y, Z float64
}

// Transform converts between geographic and rectangular coordinates on one
// ellipsoid. The zero Tolerance and MaxIterations select DefaultTolerance
// and MaxIterations.
type Transform struct {
	Ellipsoid     Ellipsoid
	Tolerance     float64
	MaxIterations int
}

// NewTransform returns a Transform with the default tolerance and
// iteration cap.
func NewTransform(e Ellipsoid) Transform {
	return Transform{Ellipsoid: e, Tolerance: DefaultTolerance, MaxIterations: MaxIterations}
}

// ToRectangular converts a geographic point on e to rectangular coordinates.
func ToRectangular(p GeographicPoint, e Ellipsoid) RectangularPoint {
	return NewTransform(e).ToRectangular(p)
}

// ToGeographic converts rectangular coordinates to a geographic point on e
// using DefaultTolerance.
func ToGeographic(r RectangularPoint, e Ellipsoid) (GeographicPoint, error) {
	return NewTransform(e).ToGeographic(r)
}

// ToGeographicTolerance is like ToGeographic with an explicit latitude
// tolerance in radians.
func ToGeographicTolerance(r RectangularPoint, e Ellipsoid, tol float64) (GeographicPoint, error) {
	t := NewTransform(e)
	t.Tolerance = tol
	return t.ToGeographic(r)
}

// ToRectangular converts a geographic point to rectangular coordinates.
//
//	X = (N+h)⋅cosφ⋅cosλ
//	Y = (N+h)⋅cosφ⋅sinλ
//	Z = (N⋅(1−e²)+h)⋅sinφ
func (t Transform) ToRectangular(p GeographicPoint) RectangularPoint {
	e := t.Ellipsoid
	sinφ, cosφ := math.Sincos(p.Lat)
	sinλ, cosλ := math.Sincos(p.Lon)
	n := e.PrimeVertical(p.Lat)
	return RectangularPoint{
		X: (n + p.Height) * cosφ * cosλ,
		Y: (n + p.Height) * cosφ * sinλ,
		Z: (n*(1-e.e2) + p.Height) * sinφ,
	}
}

// ToGeographic converts rectangular coordinates to a geographic point.
//
// The longitude is exact. The latitude comes from the fixed-point iteration
//
//	φ0   = atan(Z / ((1−e²)⋅p))
//	φi+1 = atan((Z + Ni⋅e²⋅sinφi) / p)
//
// with p = √(X²+Y²), run until two successive latitudes differ by no more
// than the tolerance. A ConvergenceError is returned when the iteration
// cap is reached first or when the input is not finite.
//
// The origin has no defined latitude; it comes out as φ = 0, h = -a.
func (t Transform) ToGeographic(r RectangularPoint) (GeographicPoint, error) {
	e := t.Ellipsoid
	tol := t.Tolerance
	if !(tol > 0) {
		tol = DefaultTolerance
	}
	maxIter := t.MaxIterations
	if maxIter <= 0 {
		maxIter = MaxIterations
	}
	if !finite(r.X) || !finite(r.Y) || !finite(r.Z) {
		return GeographicPoint{}, &ConvergenceError{Tolerance: tol, Delta: math.NaN()}
	}

	λ := math.Atan2(r.Y, r.X)
	p := math.Hypot(r.X, r.Y)

	// atan2 keeps p = 0 (a point on the polar axis) out of the divisions
	φ := math.Atan2(r.Z, (1-e.e2)*p)
	var n, Δ float64
	converged := false
	i := 0
	for i < maxIter {
		i++
		n = e.PrimeVertical(φ)
		next := math.Atan2(r.Z+n*e.e2*math.Sin(φ), p)
		Δ = math.Abs(next - φ)
		φ = next
		if Δ <= tol {
			converged = true
			break
		}
	}
	if !converged {
		return GeographicPoint{}, &ConvergenceError{Iterations: i, Tolerance: tol, Delta: Δ}
	}
	n = e.PrimeVertical(φ)

	// p/cosφ loses precision near the poles, Z/sinφ near the equator
	sinφ, cosφ := math.Sincos(φ)
	var h float64
	if math.Abs(φ) <= math.Pi/4 {
		h = p/cosφ - n
	} else {
		h = r.Z/sinφ - n*(1-e.e2)
	}
	return GeographicPoint{Lat: φ, Lon: λ, Height: h}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
