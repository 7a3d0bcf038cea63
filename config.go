package genterrain

import (
	"fmt"
	"os"

	"github.com/Flokey82/genterrain/biome"
	"gopkg.in/yaml.v3"
)

// Config is a struct that holds all configuration options for terrain synthesis.
type Config struct {
	CellSize float64 `yaml:"cell_size"` // Nominal size of a location in projected units
	Parallel bool    `yaml:"parallel"`  // Run the terrain passes concurrently
	Verbose  bool    `yaml:"verbose"`   // Log the duration of each pass

	// Classifier maps a location to terrain tags, elevation and moisture.
	Classifier biome.Classifier `yaml:"-"`

	*LakeConfig     `yaml:"lakes"`
	*RiverConfig    `yaml:"rivers"`
	*ForestConfig   `yaml:"forests"`
	*MountainConfig `yaml:"mountains"`
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		CellSize:       1.0,
		Parallel:       true,
		Verbose:        false,
		Classifier:     biome.Classify,
		LakeConfig:     NewLakeConfig(),
		RiverConfig:    NewRiverConfig(),
		ForestConfig:   NewForestConfig(),
		MountainConfig: NewMountainConfig(),
	}
}

// LoadConfig reads a YAML file and applies it on top of the defaults of
// NewConfig. Keys missing from the file keep their default value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig is LoadConfig for YAML that is already in memory.
func ParseConfig(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("invalid cell_size %v: must be positive", cfg.CellSize)
	}
	return cfg, nil
}

// LakeConfig is a struct that holds all configuration options for lake boundaries.
type LakeConfig struct {
	SingleRadius float64 `yaml:"single_radius"` // Radius of single cell lakes (in cell sizes)
	CloudRadius  float64 `yaml:"cloud_radius"`  // Radius of the point cloud around each lake cell (in cell sizes)
}

// NewLakeConfig returns a new config for lake boundaries.
func NewLakeConfig() *LakeConfig {
	return &LakeConfig{
		SingleRadius: 0.4,
		CloudRadius:  0.5,
	}
}

// RiverConfig is a struct that holds all configuration options for river paths.
type RiverConfig struct {
	Width        float64 `yaml:"width"`          // Base width (in cell sizes)
	WidthPerCell float64 `yaml:"width_per_cell"` // Added width for every traced cell beyond the second
	MaxWidth     float64 `yaml:"max_width"`      // Upper bound of the width (in cell sizes)
}

// NewRiverConfig returns a new config for river paths.
func NewRiverConfig() *RiverConfig {
	return &RiverConfig{
		Width:        0.08,
		WidthPerCell: 0.01,
		MaxWidth:     0.2,
	}
}

// ForestConfig is a struct that holds all configuration options for the tree scatter.
type ForestConfig struct {
	TreeSize       float64 `yaml:"tree_size"`       // Base canopy size (in cell sizes)
	NoiseAmount    float64 `yaml:"noise_amount"`    // Amount of noise modulation of the canopy size (0..1)
	NoiseFrequency float64 `yaml:"noise_frequency"` // Noise frequency (per cell size)
	NoiseSeed      int64   `yaml:"noise_seed"`      // Seed of the canopy noise
}

// NewForestConfig returns a new config for the tree scatter.
func NewForestConfig() *ForestConfig {
	return &ForestConfig{
		TreeSize:       0.18,
		NoiseAmount:    0.2,
		NoiseFrequency: 0.35,
		NoiseSeed:      1234,
	}
}

// MountainConfig is a struct that holds all configuration options for mountain ridges.
type MountainConfig struct {
	Spread          float64 `yaml:"spread"`            // Maximum horizontal peak offset (in cell sizes)
	Lift            float64 `yaml:"lift"`              // Fixed upward peak offset (in cell sizes)
	LiftJitter      float64 `yaml:"lift_jitter"`       // Maximum additional upward offset (in cell sizes)
	PeakSize        float64 `yaml:"peak_size"`         // Base peak size (in cell sizes)
	ExtraPeakChance float64 `yaml:"extra_peak_chance"` // Chance of a second peak per member (0..1)
}

// NewMountainConfig returns a new config for mountain ridges.
func NewMountainConfig() *MountainConfig {
	return &MountainConfig{
		Spread:          0.25,
		Lift:            0.15,
		LiftJitter:      0.1,
		PeakSize:        0.45,
		ExtraPeakChance: 0.35,
	}
}
