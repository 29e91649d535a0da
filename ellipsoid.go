package geodesy

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/mohae/deepcopy"
	"gopkg.in/yaml.v3"
)

// The catalog.yaml file is the only place ellipsoid constants are defined.

//go:embed catalog.yaml
var catalogYAML []byte

// Package-level ellipsoids from the catalog.
var (
	Clarke1880 = MustLookup("Clarke 1880")
	WGS84      = MustLookup("WGS84")
	GRS80      = MustLookup("GRS80")
)

// Ellipsoid is an immutable reference ellipsoid with its derived
// parameters.
type Ellipsoid struct {
	name  string
	a     float64
	b     float64
	f     float64
	e2    float64
	rmean float64
}

// NewEllipsoid initializes a new reference ellipsoid.
//
// Param a is the equatorial radius (meters).
// Param f is the flattening of the ellipsoid, (a-b)/a.
//
// Use Lookup for the named ellipsoids of the catalog.
func NewEllipsoid(name string, a, f float64) (Ellipsoid, error) {
	if !(a > 0) || math.IsInf(a, 0) {
		return Ellipsoid{}, fmt.Errorf("geodesy: ellipsoid %q: semi-major axis %g is not a finite positive number", name, a)
	}
	if !(f >= 0 && f < 1) {
		return Ellipsoid{}, fmt.Errorf("geodesy: ellipsoid %q: flattening %g is outside [0, 1)", name, f)
	}
	b := a * (1 - f)
	return Ellipsoid{
		name:  name,
		a:     a,
		b:     b,
		f:     f,
		e2:    2*f - f*f,
		rmean: (2*a + b) / 3,
	}, nil
}

// Name of the Ellipsoid
func (e Ellipsoid) Name() string { return e.name }

// SemiMajor returns the equatorial radius a (meters).
func (e Ellipsoid) SemiMajor() float64 { return e.a }

// SemiMinor returns the polar radius b (meters).
func (e Ellipsoid) SemiMinor() float64 { return e.b }

// Flattening of the Ellipsoid
func (e Ellipsoid) Flattening() float64 { return e.f }

// EccentricitySquared returns the first eccentricity squared, 2f - f².
func (e Ellipsoid) EccentricitySquared() float64 { return e.e2 }

// MeanRadius returns (2a + b) / 3, the radius of the sphere used by the
// spherical solver.
func (e Ellipsoid) MeanRadius() float64 { return e.rmean }

func (e Ellipsoid) String() string { return e.name }

// PrimeVertical returns the radius of curvature in the prime vertical N at
// latitude φ (radians).
func (e Ellipsoid) PrimeVertical(φ float64) float64 {
	sinφ := math.Sin(φ)
	return e.a / math.Sqrt(1-e.e2*sinφ*sinφ)
}

// Meridian returns the meridian radius of curvature M at latitude φ
// (radians).
func (e Ellipsoid) Meridian(φ float64) float64 {
	sinφ := math.Sin(φ)
	w := 1 - e.e2*sinφ*sinφ
	return e.a * (1 - e.e2) / (w * math.Sqrt(w))
}

// Definition is a catalog entry as written in catalog.yaml.
type Definition struct {
	Name              string   `yaml:"name"`
	Aliases           []string `yaml:"aliases"`
	A                 float64  `yaml:"a"`
	InverseFlattening float64  `yaml:"rf"`
}

type registry struct {
	defs   []Definition
	byName map[string]Ellipsoid // canonical name
	keys   map[string]string    // folded name or alias -> canonical name
}

var catalog = mustLoadCatalog(catalogYAML)

func mustLoadCatalog(data []byte) *registry {
	reg, err := loadCatalog(data)
	if err != nil {
		panic(err)
	}
	return reg
}

func loadCatalog(data []byte) (*registry, error) {
	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("geodesy: decode ellipsoid catalog: %w", err)
	}
	reg := &registry{
		defs:   defs,
		byName: make(map[string]Ellipsoid, len(defs)),
		keys:   make(map[string]string),
	}
	for _, d := range defs {
		if !(d.InverseFlattening > 0) {
			return nil, fmt.Errorf("geodesy: ellipsoid %q: inverse flattening %g is not positive", d.Name, d.InverseFlattening)
		}
		e, err := NewEllipsoid(d.Name, d.A, 1/d.InverseFlattening)
		if err != nil {
			return nil, err
		}
		if _, ok := reg.byName[d.Name]; ok {
			return nil, fmt.Errorf("geodesy: ellipsoid %q defined twice", d.Name)
		}
		reg.byName[d.Name] = e
		for _, key := range append([]string{d.Name}, d.Aliases...) {
			folded := foldName(key)
			if prev, ok := reg.keys[folded]; ok && prev != d.Name {
				return nil, fmt.Errorf("geodesy: name %q is used by both %q and %q", key, prev, d.Name)
			}
			reg.keys[folded] = d.Name
		}
	}
	return reg, nil
}

func foldName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Lookup returns the catalog ellipsoid with the given name or alias. Names
// are matched without regard to case or repeated spaces.
func Lookup(name string) (Ellipsoid, error) {
	canonical, ok := catalog.keys[foldName(name)]
	if !ok {
		return Ellipsoid{}, &UnknownEllipsoidError{Name: name}
	}
	return catalog.byName[canonical], nil
}

// MustLookup is like Lookup but panics when the name is unknown.
func MustLookup(name string) Ellipsoid {
	e, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Names returns the canonical catalog names in catalog order.
func Names() []string {
	names := make([]string, len(catalog.defs))
	for i, d := range catalog.defs {
		names[i] = d.Name
	}
	return names
}

// Definitions returns a copy of the raw catalog entries. Changing the
// result does not affect the catalog.
func Definitions() []Definition {
	return deepcopy.Copy(catalog.defs).([]Definition)
}
