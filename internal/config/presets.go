package config

var Presets = map[string]*Config{
	"united": {
		Alpha: 1.24, R: 0.0, HalfWidth: 2.0, Resolution: 100, Normalized: true,
	},
	"compressed": {
		Alpha: 1.24, R: 0.5, HalfWidth: 2.0, Resolution: 100, Normalized: true,
	},
	"equilibrium": {
		Alpha: 1.24, R: 1.4, HalfWidth: 2.0, Resolution: 100, Normalized: true,
	},
	"stretched": {
		Alpha: 1.24, R: 2.2, HalfWidth: 3.0, Resolution: 120, Normalized: true,
	},
	"dissociating": {
		Alpha: 1.24, R: 3.0, HalfWidth: 3.0, Resolution: 150, Normalized: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
