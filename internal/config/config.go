package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avask/h2lab/internal/orbital"
)

type Config struct {
	Alpha      float64     `yaml:"alpha"`
	R          float64     `yaml:"r"`
	HalfWidth  float64     `yaml:"halfwidth"`
	Resolution int         `yaml:"resolution"`
	Normalized bool        `yaml:"normalized"`
	Sweep      SweepConfig `yaml:"sweep"`
}

type SweepConfig struct {
	RMin  float64 `yaml:"r_min"`
	RMax  float64 `yaml:"r_max"`
	Steps int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Alpha:      orbital.DefaultAlpha,
		R:          orbital.DefaultR,
		HalfWidth:  orbital.DefaultHalfWidth,
		Resolution: orbital.DefaultResolution,
		Normalized: true,
		Sweep: SweepConfig{
			RMin:  0,
			RMax:  3.0,
			Steps: 60,
		},
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Axis builds the sampling axis implied by the config.
func (c *Config) Axis() []float64 {
	return orbital.SymmetricRange(c.HalfWidth, c.Resolution)
}

// Params extracts the physical parameter pair.
func (c *Config) Params() orbital.Params {
	return orbital.Params{Alpha: c.Alpha, R: c.R}
}
