package config

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"sprite-bgclear/internal/assets"
	"sprite-bgclear/internal/bgclear"
)

// Config holds input selection and background removal settings.
type Config struct {
	// Inputs
	AssetDir string   `json:"asset_dir"`
	Files    []string `json:"files"`

	// Removal settings
	Tolerance *float64 `json:"tolerance"`
	Seeds     [][2]int `json:"seeds"`

	// Output
	OutputDir string  `json:"output_dir"`
	Report    string  `json:"report"`
	Trim      bool    `json:"trim"`
	Despeckle float64 `json:"despeckle"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetDir  string
	Files     []string
	Tolerance float64 // negative = unset
	Seeds     string  // "x,y;x,y"
	OutputDir string
	Report    string
	Trim      bool
	Despeckle float64
}

// Resolve applies CLI overrides, then fills in defaults.
// CLI flags take priority when set.
func (c *Config) Resolve(flags Flags) error {
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if len(flags.Files) > 0 {
		c.Files = flags.Files
	}
	if flags.Tolerance >= 0 {
		t := flags.Tolerance
		c.Tolerance = &t
	}
	if flags.Seeds != "" {
		seeds, err := ParseSeeds(flags.Seeds)
		if err != nil {
			return err
		}
		c.Seeds = seeds
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Report != "" {
		c.Report = flags.Report
	}
	if flags.Trim {
		c.Trim = true
	}
	if flags.Despeckle > 0 {
		c.Despeckle = flags.Despeckle
	}

	// Defaults
	if c.AssetDir == "" {
		c.AssetDir = "assets"
	}
	if len(c.Files) == 0 {
		c.Files = assets.Defaults(c.AssetDir)
	}
	if c.Tolerance == nil {
		t := float64(bgclear.DefaultTolerance)
		c.Tolerance = &t
	}
	if *c.Tolerance < 0 {
		return fmt.Errorf("config: tolerance must be non-negative, got %g", *c.Tolerance)
	}
	if c.Despeckle < 0 || c.Despeckle >= 1 {
		return fmt.Errorf("config: despeckle must be in [0, 1), got %g", c.Despeckle)
	}
	return nil
}

// RemoveOptions converts the resolved settings for bgclear.
func (c *Config) RemoveOptions() bgclear.Options {
	opts := bgclear.DefaultOptions()
	if c.Tolerance != nil {
		opts.Tolerance = *c.Tolerance
	}
	for _, s := range c.Seeds {
		opts.Seeds = append(opts.Seeds, image.Pt(s[0], s[1]))
	}
	return opts
}

// ParseSeeds parses "x,y;x,y;..." into seed coordinates.
// Negative values count from the right or bottom edge.
func ParseSeeds(s string) ([][2]int, error) {
	var seeds [][2]int
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("config: seed %q: want x,y", part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("config: seed %q: %w", part, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("config: seed %q: %w", part, err)
		}
		seeds = append(seeds, [2]int{x, y})
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("config: no seeds in %q", s)
	}
	return seeds, nil
}
