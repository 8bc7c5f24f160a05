// Package config provides the measurement CLI configuration from
// command-line flags and the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mttstwrt/measurementtools/pkg/guard"
)

// Environment variables overriding their flag defaults. A flag given on
// the command line wins over the environment.
const (
	EnvMaxSurface   = "MEASURE_MAX_SURFACE"
	EnvMaxVolume    = "MEASURE_MAX_VOLUME"
	EnvLoggingLevel = "MEASURE_LOGGING_LEVEL"
)

// Config represents the CLI configuration.
type Config struct {
	Script string
	Grid   string

	// Layer restricts extraction to absolute height Layer, overriding the
	// script's own layer, when HasLayer is set.
	Layer    int
	HasLayer bool

	Mesh      bool
	MeshCells int

	MaxSurface    int
	MaxVolume     int
	CacheCapacity int

	LoggingLevel string
}

// Read parses args (without the program name). Environment overrides are
// looked up with getenv; pass os.Getenv outside tests.
func Read(args []string, getenv func(string) string) (Config, error) {
	config := Config{}

	fs := newFlagSet(&config)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var errs []error
	envInt := func(flagName, env string, dst *int) {
		v := getenv(env)
		if v == "" || set[flagName] {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a number", env, v))
			return
		}
		*dst = n
	}
	envInt("max-surface", EnvMaxSurface, &config.MaxSurface)
	envInt("max-volume", EnvMaxVolume, &config.MaxVolume)
	if v := getenv(EnvLoggingLevel); v != "" && !set["logging-level"] {
		config.LoggingLevel = v
	}

	config.LoggingLevel = strings.ToLower(config.LoggingLevel)
	errs = append(errs, config.check()...)
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return config, nil
}

// Usage writes the flag defaults to w.
func Usage(w io.Writer) {
	fs := newFlagSet(&Config{})
	fs.SetOutput(w)
	fmt.Fprintf(w, "usage: measurementtools -script sel.lisp [-grid world.db] [-layer Y] [-mesh]\n")
	fmt.Fprintf(w, "environment: %s, %s, %s\n", EnvMaxSurface, EnvMaxVolume, EnvLoggingLevel)
	fs.PrintDefaults()
}

func newFlagSet(config *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("measurementtools", flag.ContinueOnError)
	fs.StringVar(&config.Script, "script", "", "selection script to evaluate")
	fs.StringVar(&config.Grid, "grid", "", "sqlite voxel grid to count content from")
	fs.Func("layer", "only extract the surface on this absolute Y", func(v string) error {
		y, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("layer %q is not a number", v)
		}
		config.Layer, config.HasLayer = y, true
		return nil
	})
	fs.BoolVar(&config.Mesh, "mesh", false, "tessellate a preview mesh of the shape")
	fs.IntVar(&config.MeshCells, "mesh-cells", 64, "marching cubes cells along the longest mesh axis")
	fs.IntVar(&config.MaxSurface, "max-surface", guard.DefaultMaxSurface, "surface voxel ceiling")
	fs.IntVar(&config.MaxVolume, "max-volume", guard.DefaultMaxVolume, "filled volume ceiling")
	fs.IntVar(&config.CacheCapacity, "cache-capacity", 1, "surface results kept by the cache")
	fs.StringVar(&config.LoggingLevel, "logging-level", "info", "logging level, one of: "+availableLoggingLevelsString)
	return fs
}

func (c Config) check() []error {
	var errs []error
	if c.Script == "" {
		errs = append(errs, errors.New("missing -script"))
	}
	if !validateLoggingLevel(c.LoggingLevel) {
		errs = append(errs, fmt.Errorf("invalid logging level %q", c.LoggingLevel))
	}
	if c.MaxSurface <= 0 {
		errs = append(errs, fmt.Errorf("invalid max surface %d", c.MaxSurface))
	}
	if c.MaxVolume <= 0 {
		errs = append(errs, fmt.Errorf("invalid max volume %d", c.MaxVolume))
	}
	if c.CacheCapacity <= 0 {
		errs = append(errs, fmt.Errorf("invalid cache capacity %d", c.CacheCapacity))
	}
	if c.Mesh && c.MeshCells <= 0 {
		errs = append(errs, fmt.Errorf("invalid mesh cells %d", c.MeshCells))
	}
	return errs
}

// Limits returns the guard ceilings.
func (c Config) Limits() guard.Limits {
	return guard.Limits{MaxSurface: c.MaxSurface, MaxVolume: c.MaxVolume}
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	return slices.Contains(availableLoggingLevels, loggingLevel)
}
