package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/salt-die/soap/internal/arena"
	"github.com/salt-die/soap/internal/palette"
	"github.com/salt-die/soap/internal/view"
)

var ErrOutOfRange = errors.New("config: value out of range")

type Config struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Centers      int     `yaml:"centers"`
	MaxVel       float64 `yaml:"max_vel"`
	Friction     float64 `yaml:"friction"`
	Jitter       float64 `yaml:"jitter"`
	Steer        float64 `yaml:"steer"`
	PokeStrength float64 `yaml:"poke_strength"`
	PokeCap      float64 `yaml:"poke_cap"`

	Seed int64 `yaml:"seed"`
	FPS  int   `yaml:"fps"`

	Palette     string `yaml:"palette"`
	Dual        bool   `yaml:"dual"`
	Bouncing    bool   `yaml:"bouncing"`
	Fill        bool   `yaml:"fill"`
	Outline     bool   `yaml:"outline"`
	ShowCenters bool   `yaml:"show_centers"`
	ShowHelp    bool   `yaml:"show_help"`

	// FocusCell adds the focus to the site set, giving it a Voronoi cell
	// of its own.
	FocusCell bool `yaml:"focus_cell"`
}

// DefaultConfig is the classic toy setup. A zero Seed means seed from the
// clock at startup.
func DefaultConfig() *Config {
	p := arena.DefaultParams()
	return &Config{
		Width:        p.Width,
		Height:       p.Height,
		Centers:      p.Centers,
		MaxVel:       p.MaxVel,
		Friction:     p.Friction,
		Jitter:       p.Jitter,
		Steer:        p.Steer,
		PokeStrength: p.PokeStrength,
		PokeCap:      p.PokeCap,
		FPS:          60,
		Palette:      "rainbow",
		Bouncing:     true,
		Fill:         true,
		Outline:      true,
		ShowHelp:     true,
		FocusCell:    true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the physics-critical ranges. Friction must sit strictly
// inside (0, 1) or centers never settle.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: arena %gx%g", ErrOutOfRange, c.Width, c.Height)
	case c.Centers < 1:
		return fmt.Errorf("%w: centers %d", ErrOutOfRange, c.Centers)
	case c.MaxVel <= 0:
		return fmt.Errorf("%w: max_vel %g", ErrOutOfRange, c.MaxVel)
	case c.Friction <= 0 || c.Friction >= 1:
		return fmt.Errorf("%w: friction %g", ErrOutOfRange, c.Friction)
	case c.Jitter < 0:
		return fmt.Errorf("%w: jitter %g", ErrOutOfRange, c.Jitter)
	case c.Steer < 0:
		return fmt.Errorf("%w: steer %g", ErrOutOfRange, c.Steer)
	case c.PokeStrength < 0 || c.PokeCap < 0:
		return fmt.Errorf("%w: poke %g/%g", ErrOutOfRange, c.PokeStrength, c.PokeCap)
	case c.FPS < 1:
		return fmt.Errorf("%w: fps %d", ErrOutOfRange, c.FPS)
	}
	return nil
}

func (c *Config) Params() arena.Params {
	return arena.Params{
		Width:        c.Width,
		Height:       c.Height,
		MaxVel:       c.MaxVel,
		Friction:     c.Friction,
		Jitter:       c.Jitter,
		Steer:        c.Steer,
		PokeStrength: c.PokeStrength,
		PokeCap:      c.PokeCap,
		Centers:      c.Centers,
	}
}

func (c *Config) Toggles() view.Toggles {
	return view.Toggles{
		Dual:    c.Dual,
		Fill:    c.Fill,
		Outline: c.Outline,
		Centers: c.ShowCenters,
		Help:    c.ShowHelp,
		Palette: palette.ByName(c.Palette),
	}
}
