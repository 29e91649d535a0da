package geodesy

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error returned by this package matches
// exactly one of them through errors.Is.
var (
	ErrUnknownEllipsoid   = errors.New("geodesy: unknown ellipsoid")
	ErrDistanceOutOfRange = errors.New("geodesy: distance out of range")
	ErrConvergence        = errors.New("geodesy: convergence failure")
	ErrInvalidAngle       = errors.New("geodesy: invalid angle")
	ErrAssertion          = errors.New("geodesy: assertion failure")
	ErrDirectUnsupported  = errors.New("geodesy: direct problem not supported")
)

// UnknownEllipsoidError is returned when a name is not in the catalog.
type UnknownEllipsoidError struct {
	Name string
}

func (e *UnknownEllipsoidError) Error() string {
	return fmt.Sprintf("geodesy: unknown ellipsoid %q", e.Name)
}

func (e *UnknownEllipsoidError) Is(target error) bool {
	return target == ErrUnknownEllipsoid
}

// DistanceOutOfRangeError is returned when a distance falls outside the
// validity range of a solving method. The distance is never clamped.
type DistanceOutOfRangeError struct {
	Method   Method
	Distance float64 // meters
	Limit    float64 // meters
}

func (e *DistanceOutOfRangeError) Error() string {
	return fmt.Sprintf("geodesy: %s method is limited to %.0f m, got %g m",
		e.Method, e.Limit, e.Distance)
}

func (e *DistanceOutOfRangeError) Is(target error) bool {
	return target == ErrDistanceOutOfRange
}

// ConvergenceError is returned when the rectangular to geographic
// iteration does not reach its tolerance within the iteration cap.
type ConvergenceError struct {
	Iterations int
	Tolerance  float64
	Delta      float64 // last latitude step, radians
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("geodesy: latitude did not converge to %g rad after %d iterations (last step %g rad)",
		e.Tolerance, e.Iterations, e.Delta)
}

func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergence
}

// InvalidAngleError is returned for a non-finite or out of range angle.
type InvalidAngleError struct {
	Name  string // "latitude", "azimuth", ...
	Angle float64
}

func (e *InvalidAngleError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("geodesy: invalid angle %g", e.Angle)
	}
	return fmt.Sprintf("geodesy: invalid %s %g", e.Name, e.Angle)
}

func (e *InvalidAngleError) Is(target error) bool {
	return target == ErrInvalidAngle
}

// AssertionError reports a failed self-consistency check of the Gauss
// mid-latitude solution. It points at degenerate geometry (coincident or
// antipodal points, a line over a pole) or a numerical defect.
type AssertionError struct {
	Check    string
	S        float64
	Azi12    float64
	Lat1     float64
	Lat2     float64
	DeltaLon float64
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("geodesy: gauss check failed: %s (s=%g m, azi12=%g rad, lat1=%g, lat2=%g, dlon=%g)",
		e.Check, e.S, e.Azi12, e.Lat1, e.Lat2, e.DeltaLon)
}

func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}
