package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/lathe"
	"github.com/gogpu/lathe/blueprint"
	"github.com/gogpu/lathe/mesh"
)

// Config describes a sketch: a profile outline, a perimeter shape and the
// mesh resolution.
//
//	[profile]
//	points = [{x = 40, y = 0}, {x = 60, y = 50}, {x = 30, y = 100}]
//	weld = false
//
//	[[profile.bezier]]
//	side = 0
//	controls = [{x = 70, y = 20}]
//
//	[perimeter]
//	kind = "oval"
//	radii = {x = 1, y = 1}
//
//	[mesh]
//	angular = 60
//	height = 40
type Config struct {
	Profile   ProfileConfig   `toml:"profile"`
	Perimeter PerimeterConfig `toml:"perimeter"`
	Mesh      MeshConfig      `toml:"mesh"`
}

// ProfileConfig lists the outline vertices in drawing order. Bezier entries
// replace the straight side at index Side with a curved one.
type ProfileConfig struct {
	Points  []lathe.Point  `toml:"points"`
	Beziers []BezierConfig `toml:"bezier"`
	Weld    bool           `toml:"weld"`
}

// BezierConfig turns one side into a quadratic (one control) or cubic (two
// controls) Bezier.
type BezierConfig struct {
	Side     int           `toml:"side"`
	Controls []lathe.Point `toml:"controls"`
}

// PerimeterConfig selects the cross-section. Kind is "oval" or
// "parallelogram"; only the fields of that kind are read.
type PerimeterConfig struct {
	Kind   string      `toml:"kind"`
	Center lathe.Point `toml:"center"`
	Radii  lathe.Point `toml:"radii"`
	Origin lathe.Point `toml:"origin"`
	U      lathe.Vec2  `toml:"u"`
	V      lathe.Vec2  `toml:"v"`
}

// MeshConfig sets the lattice resolution and scales. Zero values keep the
// library defaults.
type MeshConfig struct {
	Angular        int     `toml:"angular"`
	Height         int     `toml:"height"`
	Scale          float64 `toml:"scale"`
	PerimeterScale float64 `toml:"perimeter_scale"`
	Y              float64 `toml:"y"`
}

var (
	errTooFewPoints  = errors.New("profile needs at least two points")
	errBadBezierSide = errors.New("bezier side index out of range")
	errBadControls   = errors.New("bezier needs one or two controls")
	errUnknownPerim  = errors.New("unknown perimeter kind")
)

// defaultConfig is a small vase on a round base.
func defaultConfig() *Config {
	return &Config{
		Profile: ProfileConfig{
			Points: []lathe.Point{
				lathe.Pt(0, 0), lathe.Pt(60, 0), lathe.Pt(80, -60),
				lathe.Pt(40, -120), lathe.Pt(50, -160),
			},
			Beziers: []BezierConfig{
				{Side: 2, Controls: []lathe.Point{lathe.Pt(110, -100)}},
			},
		},
		Perimeter: PerimeterConfig{
			Kind:  "oval",
			Radii: lathe.Pt(1, 1),
		},
		Mesh: MeshConfig{
			Angular: blueprint.DefaultAngularSegments,
			Height:  blueprint.DefaultHeightSegments,
		},
	}
}

// loadConfig reads a TOML file. Unknown keys are rejected so that typos do
// not silently fall back to defaults.
func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := &Config{Perimeter: PerimeterConfig{Kind: "oval", Radii: lathe.Pt(1, 1)}}
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// BuildProfile creates the profile polyline.
func (c *Config) BuildProfile() (*lathe.Polyline, error) {
	if len(c.Profile.Points) < 2 {
		return nil, errTooFewPoints
	}
	pl := lathe.NewPolyline(c.Profile.Points...)
	if c.Profile.Weld {
		pl.Weld()
	}
	sides := pl.Sides()
	for _, b := range c.Profile.Beziers {
		if b.Side < 0 || b.Side >= len(sides) {
			return nil, fmt.Errorf("%w: %d", errBadBezierSide, b.Side)
		}
		if len(b.Controls) < 1 || len(b.Controls) > 2 {
			return nil, errBadControls
		}
		if err := pl.ReplaceSide(sides[b.Side], lathe.NewBezierSide(b.Controls...)); err != nil {
			return nil, err
		}
		sides = pl.Sides()
	}
	return pl, nil
}

// BuildPerimeter creates the perimeter shape.
func (c *Config) BuildPerimeter() (lathe.Shape, error) {
	p := c.Perimeter
	switch p.Kind {
	case "", "oval":
		return &lathe.Oval{Center: p.Center, Radii: p.Radii}, nil
	case "parallelogram":
		return lathe.Parallelogram{Origin: p.Origin, U: p.U, V: p.V}, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownPerim, p.Kind)
	}
}

// Options maps the mesh section to blueprint options.
func (c *Config) Options() []blueprint.Option {
	var mopts []mesh.Option
	if c.Mesh.Scale > 0 {
		mopts = append(mopts, mesh.WithScale(c.Mesh.Scale))
	}
	if c.Mesh.PerimeterScale > 0 {
		mopts = append(mopts, mesh.WithPerimeterScale(c.Mesh.PerimeterScale))
	}
	return []blueprint.Option{
		blueprint.WithSegments(c.Mesh.Angular, c.Mesh.Height),
		blueprint.WithMeshOptions(mopts...),
	}
}
