// Command geodesy converts coordinates and solves short geodesic lines from
// the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/geodesy-kit/geodesy"
	"github.com/golang/geo/s1"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	log := logrus.New()
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found (using environment variables)")
	}
	if err := run(os.Args[1:], os.Stdout, os.Stderr, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.WithError(err).Error("geodesy failed")
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, log *logrus.Logger) error {
	cfg, rest, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)
	if len(rest) == 0 {
		return errors.New("missing command")
	}
	cmd, rest := rest[0], rest[1:]
	p := message.NewPrinter(language.English)
	entry := log.WithFields(logrus.Fields{
		"command":   cmd,
		"ellipsoid": cfg.Ellipsoid.Name(),
	})

	switch cmd {
	case "ellipsoids":
		for _, d := range geodesy.Definitions() {
			e := geodesy.MustLookup(d.Name)
			p.Fprintf(stdout, "%-12s a=%.3f 1/f=%.9f e2=%.14f Rmean=%.3f\n",
				d.Name, e.SemiMajor(), d.InverseFlattening, e.EccentricitySquared(), e.MeanRadius())
		}
		return nil

	case "to-rect":
		v, err := parseArgs(cmd, rest, 3)
		if err != nil {
			return err
		}
		pt := geodesy.GeographicPoint{Lat: radians(v[0]), Lon: radians(v[1]), Height: v[2]}
		entry.WithFields(logrus.Fields{"lat": v[0], "lon": v[1], "h": v[2]}).Debug("geographic to rectangular")
		r := geodesy.ToRectangular(pt, cfg.Ellipsoid)
		p.Fprintf(stdout, "X=%.4f m\nY=%.4f m\nZ=%.4f m\n", r.X, r.Y, r.Z)
		return nil

	case "to-geo":
		v, err := parseArgs(cmd, rest, 3)
		if err != nil {
			return err
		}
		entry.WithFields(logrus.Fields{"x": v[0], "y": v[1], "z": v[2], "tol": cfg.Tolerance}).Debug("rectangular to geographic")
		g, err := geodesy.ToGeographicTolerance(geodesy.RectangularPoint{X: v[0], Y: v[1], Z: v[2]}, cfg.Ellipsoid, cfg.Tolerance)
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "lat=%.9f°\nlon=%.9f°\nh=%.4f m\n", degrees(g.Lat), degrees(g.Lon), g.Height)
		return nil

	case "direct":
		v, err := parseArgs(cmd, rest, 4)
		if err != nil {
			return err
		}
		solver, err := geodesy.NewDirectSolver(cfg.Method, cfg.Ellipsoid)
		if err != nil {
			return err
		}
		entry.WithFields(logrus.Fields{"method": cfg.Method, "lat1": v[0], "lon1": v[1], "azi12": v[2], "s": v[3]}).Debug("direct problem")
		d, err := solver.Direct(radians(v[0]), radians(v[1]), radians(v[2]), v[3])
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "lat2=%.9f°\nlon2=%.9f°\nazi21=%.9f°\n", degrees(d.Lat2), degrees(d.Lon2), degrees(d.Azi21))
		return nil

	case "inverse":
		v, err := parseArgs(cmd, rest, 4)
		if err != nil {
			return err
		}
		solver, err := geodesy.NewInverseSolver(cfg.Method, cfg.Ellipsoid)
		if err != nil {
			return err
		}
		entry.WithFields(logrus.Fields{"method": cfg.Method, "lat1": v[0], "lon1": v[1], "lat2": v[2], "lon2": v[3]}).Debug("inverse problem")
		inv, err := solver.Inverse(radians(v[0]), radians(v[1]), radians(v[2]), radians(v[3]))
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "s=%.4f m\nazi12=%.9f°\nazi21=%.9f°\n", inv.S, degrees(inv.Azi12), degrees(inv.Azi21))
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func parseArgs(cmd string, args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d", cmd, n, len(args))
	}
	v := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", cmd, i+1, err)
		}
		v[i] = f
	}
	return v, nil
}

func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}
