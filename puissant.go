package geodesy

import "math"

// PuissantLimit is the longest line (meters) the Puissant method accepts.
const PuissantLimit = 100000.0

// Puissant solves geodesic problems on the ellipsoid with Puissant's
// series. The series are truncated for short lines only.
type Puissant struct {
	e Ellipsoid
}

// NewPuissant returns a Puissant solver for e.
func NewPuissant(e Ellipsoid) *Puissant {
	return &Puissant{e: e}
}

// Ellipsoid the solver was built from.
func (p *Puissant) Ellipsoid() Ellipsoid { return p.e }

// Direct solves the direct problem.
//
// With M1, N1 the radii of curvature at point 1:
//
//	B = 1/M1
//	C = 3/2⋅e²⋅sinφ1⋅cosφ1 / (1−e²sin²φ1)
//	D = tanφ1 / (2⋅M1⋅N1)
//	E = (1+3tan²φ1) / (6⋅N1²)
//	h = s⋅cosα12 / M1
//	δφ = s⋅cosα12⋅B − s²⋅sin²α12⋅D − h⋅s²⋅sin²α12⋅E
//	Δφ = δφ − C⋅δφ²
//	Δλ = s⋅sinα12 / (N2⋅cosφ2) ⋅ (1 − s²/(6N2²)⋅(1 − sin²α12/cos²φ2))
//
// The back azimuth adds the meridian convergence Δα,
// tan(Δα/2) = tan(Δλ/2)⋅sinφm / cos(Δφ/2), to α12 + π.
func (p *Puissant) Direct(lat1, lon1, azi12, s12 float64) (DirectSolution, error) {
	if err := checkDistance(MethodPuissant, s12, PuissantLimit); err != nil {
		return DirectSolution{}, err
	}
	if err := checkLatitude("latitude", lat1); err != nil {
		return DirectSolution{}, err
	}
	if err := checkFinite("azimuth", azi12); err != nil {
		return DirectSolution{}, err
	}
	e2 := p.e.e2
	m1 := p.e.Meridian(lat1)
	n1 := p.e.PrimeVertical(lat1)
	sinφ1, cosφ1 := math.Sincos(lat1)
	tanφ1 := math.Tan(lat1)
	sinα, cosα := math.Sincos(azi12)

	b := 1 / m1
	c := 1.5 * e2 * sinφ1 * cosφ1 / (1 - e2*sinφ1*sinφ1)
	d := tanφ1 / (2 * m1 * n1)
	e := (1 + 3*tanφ1*tanφ1) / (6 * n1 * n1)
	h := s12 / m1 * cosα

	ss := s12 * s12 * sinα * sinα
	δφ := s12*cosα*b - ss*d - h*ss*e
	Δφ := δφ - c*δφ*δφ
	φ2 := lat1 + Δφ
	if err := checkLatitude("latitude", φ2); err != nil {
		// the line crosses a pole
		return DirectSolution{}, err
	}

	n2 := p.e.PrimeVertical(φ2)
	cosφ2 := math.Cos(φ2)
	Δλ := s12 * sinα / (n2 * cosφ2) *
		(1 - s12*s12/(6*n2*n2)*(1-sinα*sinα/(cosφ2*cosφ2)))
	λ2, err := NormalizeLongitude(lon1 + Δλ)
	if err != nil {
		return DirectSolution{}, err
	}

	halfΔα := halfConvergence(Δφ, (lat1+φ2)/2, Δλ)
	α21, err := NormalizeAzimuth(azi12 + math.Pi + 2*halfΔα)
	if err != nil {
		return DirectSolution{}, err
	}
	return DirectSolution{Lat2: φ2, Lon2: λ2, Azi21: α21}, nil
}

// Inverse solves the inverse problem by linearizing at the mean latitude:
//
//	Δx = M⋅Δφ
//	Δy = N⋅cosφm⋅Δλ
//	s  = √(Δx²+Δy²)
//	α12 = atan2(Δy, Δx), α21 = α12 + π
//
// The azimuths are those of the chord at the mean latitude; they differ
// from the true end azimuths by half the meridian convergence. Lines
// longer than PuissantLimit fail with a DistanceOutOfRangeError.
func (p *Puissant) Inverse(lat1, lon1, lat2, lon2 float64) (InverseSolution, error) {
	if err := checkPoints(lat1, lon1, lat2, lon2); err != nil {
		return InverseSolution{}, err
	}
	Δλ, err := NormalizeLongitude(lon2 - lon1)
	if err != nil {
		return InverseSolution{}, err
	}
	φm := (lat1 + lat2) / 2
	m := p.e.Meridian(φm)
	n := p.e.PrimeVertical(φm)

	Δx := m * (lat2 - lat1)
	Δy := n * math.Cos(φm) * Δλ
	s12 := math.Hypot(Δx, Δy)
	if err := checkDistance(MethodPuissant, s12, PuissantLimit); err != nil {
		return InverseSolution{}, err
	}

	α := math.Atan2(Δy, Δx)
	α12, err := NormalizeAzimuth(α)
	if err != nil {
		return InverseSolution{}, err
	}
	α21, err := NormalizeAzimuth(α + math.Pi)
	if err != nil {
		return InverseSolution{}, err
	}
	return InverseSolution{S: s12, Azi12: α12, Azi21: α21}, nil
}

// halfConvergence returns half the change of azimuth Δα along a short line,
// cot(Δα/2) = cos(Δφ/2) / (sinφm⋅tan(Δλ/2)).
func halfConvergence(Δφ, φm, Δλ float64) float64 {
	return math.Atan2(math.Tan(Δλ/2)*math.Sin(φm), math.Cos(Δφ/2))
}
