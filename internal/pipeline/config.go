package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"sprite-prep/internal/imaging"
)

// Asset names one image file together with what is known about its
// background.
//
// Hints are hex color strings ("#RRGGBB"). Tolerance is a pointer so a
// config file can distinguish "not set" (falls back to the package default)
// from an explicit zero (exact-match cleaning only).
type Asset struct {
	Name      string   `json:"name"`
	Hints     []string `json:"hints,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty"`
}

// HintColors parses the asset's hex hint strings into RGB triples.
func (a Asset) HintColors() ([]imaging.RGBColor, error) {
	if len(a.Hints) == 0 {
		return nil, nil
	}
	colors := make([]imaging.RGBColor, 0, len(a.Hints))
	for _, h := range a.Hints {
		c, err := imaging.ParseHexColor(h)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", a.Name, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// EffectiveTolerance returns the asset's tolerance, or
// imaging.DefaultTolerance when the config left it unset.
func (a Asset) EffectiveTolerance() float64 {
	if a.Tolerance == nil {
		return imaging.DefaultTolerance
	}
	return *a.Tolerance
}

// Config is a batch description: which files to process and the background
// knowledge for each.
type Config struct {
	Assets []Asset `json:"assets"`
}

// tolerance returns a pointer to v for literal Asset construction.
func tolerance(v float64) *float64 {
	return &v
}

// DefaultConfig returns the built-in asset set: the coin sprite on its
// light background and the portal sprite on its dark one. These are the
// values the pipeline was originally tuned against.
func DefaultConfig() *Config {
	return &Config{
		Assets: []Asset{
			{Name: "coin.png", Hints: []string{"#FFFFFF", "#C8C8C8"}, Tolerance: tolerance(50)},
			{Name: "portal.png", Hints: []string{"#373735"}, Tolerance: tolerance(50)},
		},
	}
}

// LoadConfig reads a JSON batch description from path. Every asset must be
// named; a config with no assets is rejected rather than silently doing
// nothing.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.Assets) == 0 {
		return nil, fmt.Errorf("config %s defines no assets", path)
	}
	for i, a := range cfg.Assets {
		if a.Name == "" {
			return nil, fmt.Errorf("config %s: asset %d has no name", path, i)
		}
	}
	return &cfg, nil
}
