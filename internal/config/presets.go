package config

import "sort"

// Presets are named scenarios; each starts from DefaultConfig.
var Presets = map[string]func(*Config){
	"approach": func(c *Config) {
		c.Chase = BodyInit{X: 0, Y: -1}
	},
	"tumbling": func(c *Config) {
		c.Chase = BodyInit{X: -1.5, Y: -1.5}
		c.Target = BodyInit{Omega: 0.05}
		c.Duration = 90
	},
	"misaligned": func(c *Config) {
		c.Controller = "challenge"
		c.Chase = BodyInit{X: 0.35, Y: 0.2, Theta: 2.5}
	},
	"fast_pass": func(c *Config) {
		c.Chase = BodyInit{X: -1.2, Y: -0.1, VX: 0.6}
		c.Duration = 20
	},
	"drifting": func(c *Config) {
		c.Controller = "challenge"
		c.Chase = BodyInit{X: 1, Y: -2, Theta: 0.3}
		c.Target = BodyInit{VX: 0.01, VY: 0.005, Theta: 0.2}
		c.Duration = 120
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
