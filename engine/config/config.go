// Package config holds the tunables of the railroad scene. A scene file is
// either TOML or YAML, chosen by extension; omitted keys keep their default.
package config

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/anima/engine/core"
	"github.com/spaghettifunk/anima/engine/math"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Name     string `toml:"name" yaml:"name"`
	Width    uint32 `toml:"width" yaml:"width"`
	Height   uint32 `toml:"height" yaml:"height"`
	LogLevel string `toml:"log_level" yaml:"log_level"`

	SplineEps       float32 `toml:"spline_eps" yaml:"spline_eps"`
	ApproxEps       float32 `toml:"approx_eps" yaml:"approx_eps"`
	TiesCount       int     `toml:"ties_count" yaml:"ties_count"`
	TiesWidth       float32 `toml:"ties_width" yaml:"ties_width"`
	RailsWidth      float32 `toml:"rails_width" yaml:"rails_width"`
	RailsTrackWidth float32 `toml:"rails_track_width" yaml:"rails_track_width"`
	TrainSpeed      float32 `toml:"train_speed" yaml:"train_speed"`
	CarsCount       int     `toml:"cars_count" yaml:"cars_count"`
	IsLoop          bool    `toml:"is_loop" yaml:"is_loop"`
	Wireframe       bool    `toml:"wireframe" yaml:"wireframe"`
	ShowDebugInfo   bool    `toml:"show_debug_info" yaml:"show_debug_info"`

	// Waypoints are [x, y, z] triples.
	Waypoints [][]float32 `toml:"waypoints" yaml:"waypoints"`

	// Colours are either an SVG colour name or #rrggbb. Empty means the
	// built-in colour of the element.
	RailsColour  string `toml:"rails_colour" yaml:"rails_colour"`
	TiesColour   string `toml:"ties_colour" yaml:"ties_colour"`
	CarColour    string `toml:"car_colour" yaml:"car_colour"`
	GroundColour string `toml:"ground_colour" yaml:"ground_colour"`
}

const waypointHeight float32 = -0.375

// MinEps is the finest step accepted for spline_eps and approx_eps. Finer
// steps sit below the float32 resolution of the curve parameter.
const MinEps float32 = 1e-6

func defaultWaypoints() [][]float32 {
	xz := [][2]float32{{0, 7}, {-6, 5}, {-8, 1}, {-4, -6}, {0, -7}, {1, -4}, {4, -3}, {8, 7}}
	res := make([][]float32, len(xz))
	for i, p := range xz {
		res[i] = []float32{p[0], waypointHeight, p[1]}
	}
	return res
}

func Default() *Config {
	return &Config{
		Name:            "Railroad",
		Width:           1600,
		Height:          900,
		LogLevel:        "info",
		SplineEps:       0.01,
		ApproxEps:       0.001,
		TiesCount:       128,
		TiesWidth:       1.0,
		RailsWidth:      1.3,
		RailsTrackWidth: 0.2,
		TrainSpeed:      0.02,
		CarsCount:       4,
		IsLoop:          true,
		Wireframe:       true,
		ShowDebugInfo:   true,
		Waypoints:       defaultWaypoints(),
	}
}

// Validate reports every problem of the config at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Width > 0 && c.Height > 0, "window size %dx%d", c.Width, c.Height)
	check(c.SplineEps >= MinEps && c.SplineEps <= 1, "spline_eps %v must be in [%v, 1]", c.SplineEps, MinEps)
	check(c.ApproxEps >= MinEps && c.ApproxEps <= 1, "approx_eps %v must be in [%v, 1]", c.ApproxEps, MinEps)
	check(c.TiesCount > 0, "ties_count %d must be positive", c.TiesCount)
	check(c.TiesWidth > 0, "ties_width %v must be positive", c.TiesWidth)
	check(c.RailsWidth > 0, "rails_width %v must be positive", c.RailsWidth)
	check(c.RailsTrackWidth > 0, "rails_track_width %v must be positive", c.RailsTrackWidth)
	check(c.TrainSpeed > 0, "train_speed %v must be positive", c.TrainSpeed)
	check(c.CarsCount >= 0, "cars_count %d must not be negative", c.CarsCount)
	check(len(c.Waypoints) > 0, "no waypoints")
	for i, w := range c.Waypoints {
		check(len(w) == 3, "waypoint %d has %d coordinates", i, len(w))
	}
	for _, colour := range []string{c.RailsColour, c.TiesColour, c.CarColour, c.GroundColour} {
		if _, err := ParseColour(colour, math.NewVec3Zero()); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}

// Path returns the waypoints as vectors. Malformed entries are skipped.
func (c *Config) Path() []math.Vec3 {
	path := make([]math.Vec3, 0, len(c.Waypoints))
	for _, w := range c.Waypoints {
		if len(w) != 3 {
			continue
		}
		path = append(path, math.NewVec3(w[0], w[1], w[2]))
	}
	return path
}

// Colour resolves one of the configured colours, falling back when unset.
func (c *Config) Colour(value string, fallback math.Vec3) math.Vec3 {
	colour, err := ParseColour(value, fallback)
	if err != nil {
		core.LogWarn("%s, using the default colour", err.Error())
		return fallback
	}
	return colour
}
