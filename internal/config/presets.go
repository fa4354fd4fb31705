package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"calm": preset(func(c *Config) {
		c.Centers = 30
		c.Friction = 0.90
		c.PokeCap = 120
	}),
	"frantic": preset(func(c *Config) {
		c.Centers = 80
		c.Friction = 0.995
		c.MaxVel = 25
		c.PokeStrength = 2e5
	}),
	"sparse": preset(func(c *Config) {
		c.Centers = 12
		c.ShowCenters = true
	}),
	"wireframe": preset(func(c *Config) {
		c.Dual = true
		c.Fill = false
		c.ShowCenters = true
	}),
}

// GetPreset returns a copy, so flag overrides never leak back into the
// table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
