// Package config loads the JSON run file of the agglo command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TrevorS/agglo"
	"github.com/TrevorS/agglo/dataset"
)

// Defaults applied by the Get* methods when a field is omitted.
const (
	DefaultK         = 4
	DefaultSeed      = 1
	DefaultAlgorithm = agglo.AlgorithmAuto
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// RunConfig describes one run of the command: the blobs to sample, how to
// split them and how to cluster the training part. Pointer fields are nil
// when omitted from the JSON, so partial files keep the defaults.
type RunConfig struct {
	K            *int           `json:"k,omitempty"`
	Blobs        []dataset.Blob `json:"blobs,omitempty"`
	Size         *int           `json:"size,omitempty"`
	Seed         *uint64        `json:"seed,omitempty"`
	TestFraction *float64       `json:"test_fraction,omitempty"`
	Algorithm    *string        `json:"algorithm,omitempty"`
	Workers      *int           `json:"workers,omitempty"`
}

// Helper functions to create pointers
func ptrInt(v int) *int             { return &v }
func ptrUint64(v uint64) *uint64    { return &v }
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

// DefaultRunConfig returns a RunConfig with every field set to its default.
func DefaultRunConfig() *RunConfig {
	blobs, size := dataset.DefaultBlobs()
	return &RunConfig{
		K:            ptrInt(DefaultK),
		Blobs:        blobs,
		Size:         ptrInt(size),
		Seed:         ptrUint64(DefaultSeed),
		TestFraction: ptrFloat64(dataset.DefaultTestFraction),
		Algorithm:    ptrString(string(DefaultAlgorithm)),
		Workers:      ptrInt(0),
	}
}

// LoadRunConfig loads a RunConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadRunConfig(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set.
func (c *RunConfig) Validate() error {
	if c.K != nil && *c.K < 1 {
		return fmt.Errorf("k must be >= 1, got %d", *c.K)
	}
	if c.Size != nil && *c.Size < 1 {
		return fmt.Errorf("size must be >= 1, got %d", *c.Size)
	}
	if c.TestFraction != nil && !(*c.TestFraction > 0 && *c.TestFraction < 1) {
		return fmt.Errorf("test_fraction must be between 0 and 1 (exclusive), got %f", *c.TestFraction)
	}
	if c.Algorithm != nil {
		switch agglo.Algorithm(*c.Algorithm) {
		case agglo.AlgorithmAuto, agglo.AlgorithmNaive, agglo.AlgorithmCached:
		default:
			return fmt.Errorf("algorithm must be one of auto, naive, cached, got %q", *c.Algorithm)
		}
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", *c.Workers)
	}
	for i, b := range c.Blobs {
		if len(b.Mean) == 0 {
			return fmt.Errorf("blobs[%d]: mean is empty", i)
		}
		if b.Std <= 0 {
			return fmt.Errorf("blobs[%d]: std must be > 0, got %f", i, b.Std)
		}
	}
	return nil
}

// GetK returns the target cluster count or the default.
func (c *RunConfig) GetK() int {
	if c.K == nil {
		return DefaultK
	}
	return *c.K
}

// GetBlobs returns the configured blobs and sample size, falling back to
// dataset.DefaultBlobs for whichever is omitted.
func (c *RunConfig) GetBlobs() ([]dataset.Blob, int) {
	blobs, size := dataset.DefaultBlobs()
	if len(c.Blobs) > 0 {
		blobs = c.Blobs
	}
	if c.Size != nil {
		size = *c.Size
	}
	return blobs, size
}

// GetSeed returns the random seed or the default.
func (c *RunConfig) GetSeed() uint64 {
	if c.Seed == nil {
		return DefaultSeed
	}
	return *c.Seed
}

// GetTestFraction returns the held-out fraction or the default.
func (c *RunConfig) GetTestFraction() float64 {
	if c.TestFraction == nil {
		return dataset.DefaultTestFraction
	}
	return *c.TestFraction
}

// ClusterConfig converts the run settings into an agglo.Config.
func (c *RunConfig) ClusterConfig() agglo.Config {
	cfg := agglo.DefaultConfig()
	cfg.K = c.GetK()
	if c.Algorithm != nil {
		cfg.Algorithm = agglo.Algorithm(*c.Algorithm)
	}
	if c.Workers != nil {
		cfg.Workers = *c.Workers
	}
	return cfg
}
