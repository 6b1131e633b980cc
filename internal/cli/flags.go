// Package cli holds the flags shared by the demo binaries.
package cli

import (
	"flag"
	"fmt"
	"log"

	"github.com/olivierh59500/particleground/internal/config"
	"github.com/olivierh59500/particleground/internal/particleground"
	"github.com/olivierh59500/particleground/internal/tilt"
)

// MobileAgent is reported as the user agent when tilt is synthesized, so the
// group reads orientation instead of the pointer.
const MobileAgent = "particleground (synthetic tilt; mobi)"

// Flags are the options common to every host.
type Flags struct {
	ConfigPath  string
	SavePath    string
	Density     float64
	Curved      bool
	NoParallax  bool
	TrackResize bool
	Wobble      bool
	Seed        int64
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "JSON file with option overrides")
	fs.StringVar(&f.SavePath, "save-config", "", "write the effective non-default options to this file and exit")
	fs.Float64Var(&f.Density, "density", 0, "pixels per particle (0 keeps the configured value)")
	fs.BoolVar(&f.Curved, "curved", false, "join particles with curves")
	fs.BoolVar(&f.NoParallax, "no-parallax", false, "disable pointer parallax")
	fs.BoolVar(&f.TrackResize, "track-resize", false, "follow the host size instead of the configured surface size")
	fs.BoolVar(&f.Wobble, "wobble", false, "drive parallax with synthetic device tilt")
	fs.Int64Var(&f.Seed, "seed", 1, "seed for the synthetic tilt")
}

// Config loads the config file, if any, and applies flag overrides.
func (f *Flags) Config() (config.Config, error) {
	c := config.Default()
	if f.ConfigPath != "" {
		var err error
		c, err = config.Load(f.ConfigPath)
		if err != nil {
			return c, err
		}
		log.Printf("loaded options from %s", f.ConfigPath)
	}
	if f.Density > 0 {
		c.Density = f.Density
	}
	if f.Curved {
		c.CurvedLines = true
	}
	if f.NoParallax {
		c.Parallax = false
	}
	return config.Normalize(c), nil
}

// SaveIfRequested writes c when -save-config was given and reports whether
// it did.
func (f *Flags) SaveIfRequested(c config.Config) (bool, error) {
	if f.SavePath == "" {
		return false, nil
	}
	if err := config.Save(f.SavePath, c); err != nil {
		return true, fmt.Errorf("save options: %w", err)
	}
	log.Printf("saved options to %s", f.SavePath)
	return true, nil
}

// Environment describes the host for the given flags.
func (f *Flags) Environment() particleground.Environment {
	if f.Wobble {
		return particleground.Environment{UserAgent: MobileAgent, Orientation: true}
	}
	return particleground.Environment{}
}

// NewWobble returns the synthetic tilt source, or nil when disabled.
func (f *Flags) NewWobble() *tilt.Wobble {
	if !f.Wobble {
		return nil
	}
	return tilt.NewWobble(f.Seed)
}
