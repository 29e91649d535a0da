package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/geodesy-kit/geodesy"
	"github.com/sirupsen/logrus"
)

// config is read from the environment (and a .env file, loaded by main)
// and overridden by flags.
type config struct {
	Ellipsoid geodesy.Ellipsoid
	Method    geodesy.Method
	Tolerance float64
	LogLevel  logrus.Level
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseConfig(args []string, stderr io.Writer) (config, []string, error) {
	fs := flag.NewFlagSet("geodesy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ellipsoidName := fs.String("ellipsoid", getEnv("GEODESY_ELLIPSOID", "Clarke 1880"), "reference ellipsoid")
	methodName := fs.String("method", getEnv("GEODESY_METHOD", "gauss"), "solving method: spherical, puissant or gauss")
	tolerance := fs.String("tol", getEnv("GEODESY_TOLERANCE", strconv.FormatFloat(geodesy.DefaultTolerance, 'g', -1, 64)), "latitude tolerance for to-geo (radians)")
	logLevel := fs.String("log-level", getEnv("GEODESY_LOG_LEVEL", "info"), "log level")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: geodesy [flags] command args...\n\n")
		fmt.Fprintf(stderr, "commands:\n")
		fmt.Fprintf(stderr, "  ellipsoids\n")
		fmt.Fprintf(stderr, "  to-rect LAT LON H\n")
		fmt.Fprintf(stderr, "  to-geo X Y Z\n")
		fmt.Fprintf(stderr, "  direct LAT1 LON1 AZI12 S\n")
		fmt.Fprintf(stderr, "  inverse LAT1 LON1 LAT2 LON2\n\n")
		fmt.Fprintf(stderr, "angles are decimal degrees, lengths meters\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, nil, err
	}

	var cfg config
	var err error
	if cfg.Ellipsoid, err = geodesy.Lookup(*ellipsoidName); err != nil {
		return config{}, nil, err
	}
	if cfg.Method, err = geodesy.ParseMethod(*methodName); err != nil {
		return config{}, nil, err
	}
	if cfg.Tolerance, err = strconv.ParseFloat(*tolerance, 64); err != nil || !(cfg.Tolerance > 0) {
		return config{}, nil, fmt.Errorf("invalid tolerance %q", *tolerance)
	}
	if cfg.LogLevel, err = logrus.ParseLevel(*logLevel); err != nil {
		return config{}, nil, err
	}
	return cfg, fs.Args(), nil
}
