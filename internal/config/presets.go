package config

import "sort"

// Presets are viewport sizes of common devices in points.
var Presets = map[string]ViewportConfig{
	"iphone6":          {Width: 667, Height: 375},
	"iphone6-portrait": {Width: 375, Height: 667},
	"iphone-se":        {Width: 568, Height: 320},
	"ipad":             {Width: 1024, Height: 768},
	"square":           {Width: 300, Height: 300},
}

func GetPreset(name string) (ViewportConfig, bool) {
	vp, ok := Presets[name]
	return vp, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the viewport with a named preset.
func (c *Config) ApplyPreset(name string) bool {
	vp, ok := GetPreset(name)
	if ok {
		c.Viewport = vp
	}
	return ok
}
