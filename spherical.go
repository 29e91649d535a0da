/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package geodesy

import "math"

// SphericalLimit is the longest line (meters) the spherical method accepts.
const SphericalLimit = 200000.0

// Spherical solves geodesic problems on the sphere whose radius is the mean
// radius (2a+b)/3 of an ellipsoid.
type Spherical struct {
	e      Ellipsoid
	radius float64
}

// NewSpherical returns a spherical solver for e.
func NewSpherical(e Ellipsoid) *Spherical {
	return &Spherical{e: e, radius: e.MeanRadius()}
}

// Ellipsoid the solver was built from.
func (s *Spherical) Ellipsoid() Ellipsoid { return s.e }

// Radius of the sphere (meters).
func (s *Spherical) Radius() float64 { return s.radius }

// Direct solves the direct problem on the sphere.
//
//	sinφ2 = sinφ1⋅cosσ + cosφ1⋅sinσ⋅cosα12
//	tanΔλ = sinσ⋅sinα12 / (cosφ1⋅cosσ − sinφ1⋅sinσ⋅cosα12)
//
// where σ = s12/R. Distances over SphericalLimit fail with a
// DistanceOutOfRangeError.
func (s *Spherical) Direct(lat1, lon1, azi12, s12 float64) (DirectSolution, error) {
	if err := checkDistance(MethodSpherical, s12, SphericalLimit); err != nil {
		return DirectSolution{}, err
	}
	if err := checkLatitude("latitude", lat1); err != nil {
		return DirectSolution{}, err
	}
	if err := checkFinite("azimuth", azi12); err != nil {
		return DirectSolution{}, err
	}
	σ := s12 / s.radius
	sinφ1, cosφ1 := math.Sincos(lat1)
	sinσ, cosσ := math.Sincos(σ)
	sinα, cosα := math.Sincos(azi12)

	φ2 := math.Asin(sinφ1*cosσ + cosφ1*sinσ*cosα)
	Δλ := math.Atan2(sinσ*sinα, cosφ1*cosσ-sinφ1*sinσ*cosα)
	λ2, err := NormalizeLongitude(lon1 + Δλ)
	if err != nil {
		return DirectSolution{}, err
	}
	// forward azimuth at point 2, reversed
	α21 := math.Atan2(sinα*cosφ1, cosφ1*cosσ*cosα-sinφ1*sinσ) + math.Pi
	α21, err = NormalizeAzimuth(α21)
	if err != nil {
		return DirectSolution{}, err
	}
	return DirectSolution{Lat2: φ2, Lon2: λ2, Azi21: α21}, nil
}

// Inverse solves the inverse problem on the sphere.
//
// The azimuths follow the cotangent formulas
//
//	cotα12 = (tanφ2⋅cosφ1 − sinφ1⋅cosΔλ) / sinΔλ
//	cotα21 = (sinφ2⋅cosΔλ − tanφ1⋅cosφ2) / sinΔλ
//
// resolved with atan2 so that the quadrant survives. Lines longer than
// SphericalLimit fail with a DistanceOutOfRangeError.
func (s *Spherical) Inverse(lat1, lon1, lat2, lon2 float64) (InverseSolution, error) {
	if err := checkPoints(lat1, lon1, lat2, lon2); err != nil {
		return InverseSolution{}, err
	}
	Δλ, err := NormalizeLongitude(lon2 - lon1)
	if err != nil {
		return InverseSolution{}, err
	}
	s12 := s.radius * centralAngle(lat1, lat2, Δλ)
	if err := checkDistance(MethodSpherical, s12, SphericalLimit); err != nil {
		return InverseSolution{}, err
	}

	sinφ1, cosφ1 := math.Sincos(lat1)
	sinφ2, cosφ2 := math.Sincos(lat2)
	sinΔλ, cosΔλ := math.Sincos(Δλ)
	α12 := math.Atan2(sinΔλ, math.Tan(lat2)*cosφ1-sinφ1*cosΔλ)
	α21 := math.Atan2(-sinΔλ, math.Tan(lat1)*cosφ2-sinφ2*cosΔλ)
	if α12, err = NormalizeAzimuth(α12); err != nil {
		return InverseSolution{}, err
	}
	if α21, err = NormalizeAzimuth(α21); err != nil {
		return InverseSolution{}, err
	}
	return InverseSolution{S: s12, Azi12: α12, Azi21: α21}, nil
}

// centralAngle returns the angle σ subtended at the center of the sphere,
// cosσ = sinφ1⋅sinφ2 + cosφ1⋅cosφ2⋅cosΔλ, in its haversine form which
// keeps its precision for short lines.
func centralAngle(φ1, φ2, Δλ float64) float64 {
	sΔφ2 := math.Sin((φ2 - φ1) / 2)
	sΔλ2 := math.Sin(Δλ / 2)
	haver := sΔφ2*sΔφ2 + math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2
	return 2 * math.Asin(math.Sqrt(math.Min(haver, 1)))
}
