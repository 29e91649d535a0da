package geodesy

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRectangularParis(t *testing.T) {
	r := ToRectangular(FromDegrees(48.8566, 2.3522, 100), WGS84)
	assert.InDelta(t, 4200980.534798, r.X, 1e-3)
	assert.InDelta(t, 172562.476659, r.Y, 1e-3)
	assert.InDelta(t, 4780156.648491, r.Z, 1e-3)
}

func TestToRectangularAxes(t *testing.T) {
	for _, e := range []Ellipsoid{Clarke1880, WGS84, GRS80} {
		r := ToRectangular(GeographicPoint{Lat: 0, Lon: 0, Height: 0}, e)
		assert.InDelta(t, e.SemiMajor(), r.X, 1e-9)
		assert.InDelta(t, 0, r.Y, 1e-9)
		assert.InDelta(t, 0, r.Z, 1e-9)

		r = ToRectangular(GeographicPoint{Lat: 0, Lon: math.Pi / 2, Height: 10}, e)
		assert.InDelta(t, e.SemiMajor()+10, r.Y, 1e-6)

		r = ToRectangular(GeographicPoint{Lat: math.Pi / 2, Height: 0}, e)
		assert.InDelta(t, e.SemiMinor(), r.Z, 1e-6)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, e := range []Ellipsoid{Clarke1880, WGS84, GRS80} {
		for lat := -88.5; lat <= 88.5; lat += 7.375 {
			for lon := -179.0; lon <= 180; lon += 37 {
				for _, h := range []float64{-420, 0, 100, 8848, 35786000} {
					p := FromDegrees(lat, lon, h)
					got, err := ToGeographic(ToRectangular(p, e), e)
					require.NoError(t, err)
					if !eqish(got.Lat, p.Lat, 8) || !eqish(got.Lon, p.Lon, 8) || !eqish(got.Height, p.Height, 3) {
						t.Fatalf("%s: expected '%v', got '%v'", e, p, got)
					}
				}
			}
		}
	}
}

func TestToGeographicPoles(t *testing.T) {
	e := WGS84
	for _, sign := range []float64{1, -1} {
		got, err := ToGeographic(RectangularPoint{Z: sign * (e.SemiMinor() + 10)}, e)
		require.NoError(t, err)
		assert.InDelta(t, sign*math.Pi/2, got.Lat, 1e-12)
		assert.InDelta(t, 10, got.Height, 1e-6)

		p := GeographicPoint{Lat: sign * math.Pi / 2, Lon: 0.3, Height: 250}
		got, err = ToGeographic(ToRectangular(p, e), e)
		require.NoError(t, err)
		assert.InDelta(t, p.Lat, got.Lat, 1e-9)
		assert.InDelta(t, p.Height, got.Height, 1e-3)
	}

	got, err := ToGeographic(RectangularPoint{}, e)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Lat)
	assert.InDelta(t, -e.SemiMajor(), got.Height, 1e-6)
}

func TestToGeographicConvergence(t *testing.T) {
	r := ToRectangular(FromDegrees(48.8566, 2.3522, 100), WGS84)

	tr := Transform{Ellipsoid: WGS84, Tolerance: 1e-15, MaxIterations: 1}
	_, err := tr.ToGeographic(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConvergence))
	var convErr *ConvergenceError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, 1, convErr.Iterations)
	assert.Equal(t, 1e-15, convErr.Tolerance)
	assert.Greater(t, convErr.Delta, 1e-15)

	_, err = ToGeographic(RectangularPoint{X: math.NaN(), Y: 1, Z: 1}, WGS84)
	assert.True(t, errors.Is(err, ErrConvergence))
	_, err = ToGeographic(RectangularPoint{X: 1, Y: math.Inf(1), Z: 1}, WGS84)
	assert.True(t, errors.Is(err, ErrConvergence))
}

func TestToGeographicTolerance(t *testing.T) {
	p := FromDegrees(-33.8688, 151.2093, 58)
	r := ToRectangular(p, GRS80)

	loose, err := ToGeographicTolerance(r, GRS80, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, p.Lat, loose.Lat, 1e-6)

	// non-positive tolerances fall back to the default
	tight, err := ToGeographicTolerance(r, GRS80, 0)
	require.NoError(t, err)
	assert.InDelta(t, p.Lat, tight.Lat, 1e-10)
	assert.InDelta(t, p.Height, tight.Height, 1e-3)
}

func TestLatLng(t *testing.T) {
	p := FromDegrees(48.8566, 2.3522, 35)
	ll := p.LatLng()
	assert.InDelta(t, 48.8566, ll.Lat.Degrees(), 1e-12)
	assert.InDelta(t, 2.3522, ll.Lng.Degrees(), 1e-12)
	assert.Equal(t, p, GeographicPointFromLatLng(ll, 35))
}

func ExampleToRectangular() {
	r := ToRectangular(FromDegrees(48.8566, 2.3522, 100), WGS84)
	fmt.Printf("X=%.3f Y=%.3f Z=%.3f\n", r.X, r.Y, r.Z)
	// Output:
	// X=4200980.535 Y=172562.477 Z=4780156.648
}
