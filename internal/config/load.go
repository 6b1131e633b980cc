package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	// ErrInvalidJSON is returned when an override document does not parse.
	ErrInvalidJSON = errors.New("config: invalid JSON")
	// ErrNotObject is returned when an override document is not a JSON object.
	ErrNotObject = errors.New("config: override is not a JSON object")
)

type field struct {
	key  string
	num  func(*Config) *float64
	flag func(*Config) *bool
	str  func(*Config) *string
}

var fields = []field{
	{key: "minSpeedX", num: func(c *Config) *float64 { return &c.MinSpeedX }},
	{key: "maxSpeedX", num: func(c *Config) *float64 { return &c.MaxSpeedX }},
	{key: "minSpeedY", num: func(c *Config) *float64 { return &c.MinSpeedY }},
	{key: "maxSpeedY", num: func(c *Config) *float64 { return &c.MaxSpeedY }},
	{key: "directionX", str: func(c *Config) *string { return (*string)(&c.DirectionX) }},
	{key: "directionY", str: func(c *Config) *string { return (*string)(&c.DirectionY) }},
	{key: "density", num: func(c *Config) *float64 { return &c.Density }},
	{key: "dotColor", str: func(c *Config) *string { return &c.DotColor }},
	{key: "lineColor", str: func(c *Config) *string { return &c.LineColor }},
	{key: "particleRadius", num: func(c *Config) *float64 { return &c.ParticleRadius }},
	{key: "lineWidth", num: func(c *Config) *float64 { return &c.LineWidth }},
	{key: "curvedLines", flag: func(c *Config) *bool { return &c.CurvedLines }},
	{key: "proximity", num: func(c *Config) *float64 { return &c.Proximity }},
	{key: "parallax", flag: func(c *Config) *bool { return &c.Parallax }},
	{key: "parallaxMultiplier", num: func(c *Config) *float64 { return &c.ParallaxMultiplier }},
	{key: "width", num: func(c *Config) *float64 { return &c.Width }},
	{key: "height", num: func(c *Config) *float64 { return &c.Height }},
}

// Merge applies the keys present in raw on top of base. Keys with the wrong
// JSON type are skipped, unknown keys are ignored, and the result is
// normalized.
func Merge(base Config, raw []byte) (Config, error) {
	if !gjson.ValidBytes(raw) {
		return base, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return base, ErrNotObject
	}

	c := base
	for _, f := range fields {
		v := doc.Get(f.key)
		if !v.Exists() {
			continue
		}
		switch {
		case f.num != nil && v.Type == gjson.Number:
			*f.num(&c) = v.Float()
		case f.flag != nil && v.IsBool():
			*f.flag(&c) = v.Bool()
		case f.str != nil && v.Type == gjson.String:
			*f.str(&c) = v.String()
		}
	}
	return Normalize(c), nil
}

// Load reads a JSON override file and merges it over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Merge(Default(), data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes the options of c that differ from the defaults.
func Marshal(c Config) ([]byte, error) {
	d := Default()
	out := []byte("{}")
	var err error
	for _, f := range fields {
		var v, dv interface{}
		switch {
		case f.num != nil:
			v, dv = *f.num(&c), *f.num(&d)
		case f.flag != nil:
			v, dv = *f.flag(&c), *f.flag(&d)
		default:
			v, dv = *f.str(&c), *f.str(&d)
		}
		if v == dv {
			continue
		}
		out, err = sjson.SetBytes(out, f.key, v)
		if err != nil {
			return nil, fmt.Errorf("config: set %s: %w", f.key, err)
		}
	}
	return []byte(gjson.GetBytes(out, "@pretty").Raw), nil
}

// Save writes the non-default options of c to path.
func Save(path string, c Config) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
