package geodesy

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Angles further than this many turns from the interval are reduced with
// math.Mod before the add/subtract loops run.
const maxLoopTurns = 16

// Normalize wraps angle (radians) into [lo, hi) by adding or subtracting
// whole turns. The interval must span at least one full turn.
//
// A NaN or infinite angle fails with an InvalidAngleError.
func Normalize(angle, lo, hi float64) (float64, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0, &InvalidAngleError{Angle: angle}
	}
	if !(hi-lo >= twoPi) || math.IsInf(hi-lo, 0) {
		return 0, fmt.Errorf("geodesy: normalize interval [%g, %g) is not a full turn", lo, hi)
	}
	if math.Abs(angle-lo) > maxLoopTurns*twoPi {
		angle = lo + math.Mod(angle-lo, twoPi)
	}
	for angle >= hi {
		angle -= twoPi
	}
	for angle < lo {
		angle += twoPi
	}
	// -tiny + 2π rounds up to hi
	if angle >= hi {
		angle = lo
	}
	return angle, nil
}

// NormalizeAzimuth wraps an azimuth into [0, 2π).
func NormalizeAzimuth(azi float64) (float64, error) {
	return Normalize(azi, 0, twoPi)
}

// NormalizeLongitude wraps a longitude into (-π, π].
func NormalizeLongitude(lon float64) (float64, error) {
	lon, err := Normalize(lon, -math.Pi, math.Pi)
	if err != nil {
		return 0, err
	}
	if lon == -math.Pi {
		lon = math.Pi
	}
	return lon, nil
}

func checkLatitude(name string, φ float64) error {
	if !(math.Abs(φ) <= math.Pi/2) {
		return &InvalidAngleError{Name: name, Angle: φ}
	}
	return nil
}

func checkFinite(name string, angle float64) error {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return &InvalidAngleError{Name: name, Angle: angle}
	}
	return nil
}
