package config

import (
	"errors"
	"fmt"

	"dupefinder/internal/textutil"
)

// Validate ensures the configuration is usable. The matching core itself
// never re-validates; this is the single place bad values are rejected.
func (c *Config) Validate() error {
	if err := c.validateDetection(); err != nil {
		return err
	}
	return c.validatePaths()
}

func (c *Config) validateDetection() error {
	if c.Detection.SimilarityThreshold < 0 || c.Detection.SimilarityThreshold > 1 {
		return errors.New("detection.similarity_threshold must be between 0 and 1")
	}
	if !textutil.Algorithm(c.Detection.Algorithm).Valid() {
		return fmt.Errorf("detection.algorithm: unsupported value %q", c.Detection.Algorithm)
	}
	if c.Detection.DurationToleranceMinutes <= 0 {
		return errors.New("detection.duration_tolerance_minutes must be positive")
	}
	if len(c.Detection.SupportedExtensions) == 0 {
		return errors.New("detection.supported_extensions must not be empty")
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Paths.ReportDir == "" {
		return errors.New("paths.report_dir must be set")
	}
	return nil
}
