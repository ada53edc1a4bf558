package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"kmeanselbow/internal/kmeans"
	"kmeanselbow/internal/pointgen"
)

const (
	// MinMaxK and MaxMaxK bound the sweep range offered to users.
	MinMaxK = 2
	MaxMaxK = 50

	maxFileSize = 1 * 1024 * 1024
)

// Config holds the settings of one elbow run. Zero fields in a file keep
// their defaults.
type Config struct {
	Points        int    `json:"points"`
	Distribution  string `json:"distribution"`
	MaxK          int    `json:"max_k"`
	MaxIterations int    `json:"max_iterations"`
	// Seed fixes the randomness of generation and clustering when set.
	Seed        *int64 `json:"seed,omitempty"`
	Workers     int    `json:"workers"`
	Standardize bool   `json:"standardize"`
	// Input is a CSV file to read points from instead of generating them.
	Input       string `json:"input,omitempty"`
	InputHeader bool   `json:"input_header"`
}

// Default returns the settings of the interactive demo: 300 points from a
// random shape, swept up to k=10.
func Default() *Config {
	return &Config{
		Points:        300,
		Distribution:  string(pointgen.Random),
		MaxK:          10,
		MaxIterations: kmeans.DefaultMaxIterations,
		Workers:       1,
	}
}

// Load reads a JSON config file over the defaults and validates it.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat config file")
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config JSON")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// Validate checks that every field is usable. MaxK is not range checked
// here; callers clamp it with ClampMaxK.
func (c *Config) Validate() error {
	if c.Input == "" && c.Points < 1 {
		return fmt.Errorf("points must be positive, got %d", c.Points)
	}
	if _, err := pointgen.ParseDistribution(c.Distribution); err != nil {
		return err
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// ClampMaxK limits a requested sweep size to [MinMaxK, MaxMaxK]. An unset
// (zero) request falls back to the default of 10.
func ClampMaxK(k int) int {
	if k == 0 {
		k = Default().MaxK
	}
	return max(MinMaxK, min(MaxMaxK, k))
}
