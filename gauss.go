package geodesy

import "math"

// Below this |sin| or |cos| of the mid-line azimuth the matching distance
// form divides by almost zero and is left out of the average.
const gaussDegenerate = 1e-9

// Gauss solves the inverse problem on the ellipsoid with the Gauss
// mid-latitude formulas.
type Gauss struct {
	e Ellipsoid
}

// NewGauss returns a Gauss mid-latitude solver for e.
func NewGauss(e Ellipsoid) *Gauss {
	return &Gauss{e: e}
}

// Ellipsoid the solver was built from.
func (g *Gauss) Ellipsoid() Ellipsoid { return g.e }

// Inverse solves the inverse problem.
//
// With Nm, Mm the radii of curvature at the mean latitude φm:
//
//	tan(Δα/2)       = tan(Δλ/2)⋅sinφm / cos(Δφ/2)
//	tan(α12 + Δα/2) = cosφm⋅sin(Δλ/2) / sin(Mm⋅Δφ / (2Nm))
//	s = Nm⋅cosφm⋅Δλ / sin(α12 + Δα/2)
//	s = Mm⋅cos(Δλ/2)⋅Δφ / cos(α12 + Δα/2)
//	α21 = α12 + π + Δα
//
// The two distances are averaged; on a meridian or a parallel the form
// that divides by zero is dropped.
//
// The result is checked before it is returned: an eastward line must leave
// point 1 with an azimuth below π and a westward one above π, and the
// distance must lie in (0, πa). A failed check returns an AssertionError.
func (g *Gauss) Inverse(lat1, lon1, lat2, lon2 float64) (InverseSolution, error) {
	if err := checkPoints(lat1, lon1, lat2, lon2); err != nil {
		return InverseSolution{}, err
	}
	Δλ, err := NormalizeLongitude(lon2 - lon1)
	if err != nil {
		return InverseSolution{}, err
	}
	Δφ := lat2 - lat1
	φm := (lat1 + lat2) / 2
	nm := g.e.PrimeVertical(φm)
	mm := g.e.Meridian(φm)
	cosφm := math.Cos(φm)

	halfΔα := halfConvergence(Δφ, φm, Δλ)
	αm := math.Atan2(cosφm*math.Sin(Δλ/2), math.Sin(mm*Δφ/(2*nm)))
	α := αm - halfΔα

	sinαm, cosαm := math.Sincos(αm)
	var s12 float64
	switch {
	case math.Abs(sinαm) < gaussDegenerate:
		s12 = mm * math.Cos(Δλ/2) * Δφ / cosαm
	case math.Abs(cosαm) < gaussDegenerate:
		s12 = nm * cosφm * Δλ / sinαm
	default:
		sSin := nm * cosφm * Δλ / sinαm
		sCos := mm * math.Cos(Δλ/2) * Δφ / cosαm
		s12 = (sSin + sCos) / 2
	}

	α12, err := NormalizeAzimuth(α)
	if err != nil {
		return InverseSolution{}, err
	}
	α21, err := NormalizeAzimuth(α + math.Pi + 2*halfΔα)
	if err != nil {
		return InverseSolution{}, err
	}
	sol := InverseSolution{S: s12, Azi12: α12, Azi21: α21}
	if err := g.check(sol, lat1, lat2, Δλ); err != nil {
		return InverseSolution{}, err
	}
	return sol, nil
}

func (g *Gauss) check(sol InverseSolution, φ1, φ2, Δλ float64) error {
	fail := func(check string) error {
		return &AssertionError{
			Check:    check,
			S:        sol.S,
			Azi12:    sol.Azi12,
			Lat1:     φ1,
			Lat2:     φ2,
			DeltaLon: Δλ,
		}
	}
	if Δλ > 0 && !(sol.Azi12 < math.Pi) {
		return fail("eastward line must have azimuth below π")
	}
	if Δλ < 0 && !(sol.Azi12 > math.Pi) {
		return fail("westward line must have azimuth above π")
	}
	if !(sol.S > 0 && sol.S < math.Pi*g.e.a) {
		return fail("distance must lie in (0, πa)")
	}
	return nil
}

// MeridianConvergence returns the convergence of meridians for a line
// leaving latitude φ at azimuth α,
// atan(tanφ⋅sinα / √(1−e²sin²φ)).
func (g *Gauss) MeridianConvergence(φ, α float64) float64 {
	sinφ := math.Sin(φ)
	return math.Atan(math.Tan(φ) * math.Sin(α) / math.Sqrt(1-g.e.e2*sinφ*sinφ))
}

// ScaleFactor returns √((N²cos²α + M²sin²α) / (M⋅N)) at latitude φ for
// azimuth α.
func (g *Gauss) ScaleFactor(φ, α float64) float64 {
	n := g.e.PrimeVertical(φ)
	m := g.e.Meridian(φ)
	sinα, cosα := math.Sincos(α)
	return math.Sqrt((n*n*cosα*cosα + m*m*sinα*sinα) / (m * n))
}
