package geodesy

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuissantLimit(t *testing.T) {
	p := NewPuissant(WGS84)
	_, err := p.Direct(45*deg, 7*deg, 45*deg, 100000)
	require.NoError(t, err)

	_, err = p.Direct(45*deg, 7*deg, 45*deg, 100000.0001)
	require.Error(t, err)
	var rangeErr *DistanceOutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, MethodPuissant, rangeErr.Method)
	assert.Equal(t, PuissantLimit, rangeErr.Limit)

	_, err = p.Inverse(45*deg, 7*deg, 46*deg, 7*deg)
	assert.True(t, errors.Is(err, ErrDistanceOutOfRange))
}

func TestPuissantDirect(t *testing.T) {
	p := NewPuissant(Clarke1880)
	assert.Equal(t, Clarke1880, p.Ellipsoid())

	d, err := p.Direct(34*deg, -6*deg, 60*deg, 80000)
	require.NoError(t, err)
	assert.InDelta(t, 34.358314153280, d.Lat2/deg, 1e-9)
	assert.InDelta(t, -5.246918504637, d.Lon2/deg, 1e-9)
	assert.InDelta(t, 240.423074217283, d.Azi21/deg, 1e-9)

	// an exact ellipsoidal solution of the same line, to about 1 cm
	assert.InDelta(t, 34.358314055218, d.Lat2/deg, 1e-6)
	assert.InDelta(t, -5.246918528571, d.Lon2/deg, 1e-6)
	assert.InDelta(t, 240.423074229282, d.Azi21/deg, 1e-6)
}

func TestPuissantDirectPole(t *testing.T) {
	p := NewPuissant(WGS84)
	_, err := p.Direct(89.9*deg, 0, 0, 50000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAngle))

	_, err = p.Direct(0, 0, math.NaN(), 10)
	assert.True(t, errors.Is(err, ErrInvalidAngle))
}

func TestPuissantInverse(t *testing.T) {
	p := NewPuissant(Clarke1880)
	d, err := p.Direct(34*deg, -6*deg, 60*deg, 80000)
	require.NoError(t, err)
	inv, err := p.Inverse(34*deg, -6*deg, d.Lat2, d.Lon2)
	require.NoError(t, err)
	assert.InDelta(t, 80000.378119, inv.S, 1e-4)
	assert.InDelta(t, 60.211135353613, inv.Azi12/deg, 1e-8)
	assert.InDelta(t, 240.211135353613, inv.Azi21/deg, 1e-8)

	// along a meridian the chord azimuth is exact
	inv, err = p.Inverse(10*deg, 3*deg, 10.5*deg, 3*deg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, inv.Azi12)
	assert.InDelta(t, math.Pi, inv.Azi21, 1e-15)
}

func TestPuissantDirectInverse(t *testing.T) {
	for _, e := range []Ellipsoid{Clarke1880, WGS84, GRS80} {
		p := NewPuissant(e)
		for _, s12 := range []float64{500, 10000, 60000, 100000} {
			for _, lat1 := range []float64{-60, -30, -5, 0, 5, 30, 45, 60} {
				for azi := 0.0; azi < 360; azi += 15 {
					λ1 := 179.95 * deg
					d, err := p.Direct(lat1*deg, λ1, azi*deg, s12)
					require.NoError(t, err)
					inv, err := p.Inverse(lat1*deg, λ1, d.Lat2, d.Lon2)
					require.NoError(t, err)

					// the chord azimuth lies half the meridian convergence
					// away from the azimuth at point 1
					Δλ := math.Remainder(d.Lon2-λ1, 2*math.Pi)
					bound := math.Abs(Δλ*math.Sin((lat1*deg+d.Lat2)/2))/2 + 1e-4
					if math.Abs(inv.S-s12)/s12 > 1e-4 || angleDiff(inv.Azi12, azi*deg) > bound {
						t.Fatalf("%s (%f %f %f): got %+v after %+v", e, lat1, azi, s12, inv, d)
					}
				}
			}
		}
	}
}

func ExamplePuissant_Direct() {
	p := NewPuissant(Clarke1880)
	d, err := p.Direct(34*deg, -6*deg, 60*deg, 80000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("lat2=%.6f lon2=%.6f azi21=%.6f\n", d.Lat2/deg, d.Lon2/deg, d.Azi21/deg)
	// Output:
	// lat2=34.358314 lon2=-5.246919 azi21=240.423074
}
