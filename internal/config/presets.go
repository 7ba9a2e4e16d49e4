package config

import "sort"

type Preset struct {
	Description string
	Config      *Config
}

func preset(desc string, fn func(c *Config)) Preset {
	c := DefaultConfig()
	fn(c)
	return Preset{Description: desc, Config: c}
}

var Presets = map[string]Preset{
	"classroom": preset("small array, slow pace, easy to follow", func(c *Config) {
		c.Size, c.Speed = 10, 2
	}),
	"quick-look": preset("default size at full speed", func(c *Config) {
		c.Speed = 10
	}),
	"stress": preset("largest array, fastest pace, big comparisons", func(c *Config) {
		c.Size, c.Speed = 100, 10
		c.Algorithm = "quick"
		c.Compare.Size = 1000
	}),
	"worst-case": preset("reversed input that punishes the quadratic sorts", func(c *Config) {
		c.Size, c.Speed = 30, 7
		c.Pattern = "reversed"
		c.Algorithm = "insertion"
	}),
	"nearly-sorted": preset("almost ordered input where insertion and bubble shine", func(c *Config) {
		c.Size, c.Speed = 40, 6
		c.Pattern = "nearly-sorted"
		c.Algorithm = "insertion"
	}),
}

// GetPreset returns a copy of the named preset's config, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Config.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
