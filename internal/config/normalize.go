package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDetection()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReportDir) == "" {
		c.Paths.ReportDir = defaultReportDir
	}
	if c.Paths.ReportDir, err = ExpandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ScanRoot) != "" {
		if c.Paths.ScanRoot, err = ExpandPath(c.Paths.ScanRoot); err != nil {
			return fmt.Errorf("paths.scan_root: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeDetection() {
	c.Detection.Algorithm = strings.ToLower(strings.TrimSpace(c.Detection.Algorithm))
	if c.Detection.Algorithm == "" {
		c.Detection.Algorithm = defaultAlgorithm
	}

	extensions := make([]string, 0, len(c.Detection.SupportedExtensions))
	for _, ext := range c.Detection.SupportedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions = append(extensions, ext)
	}
	c.Detection.SupportedExtensions = extensions

	excluded := make([]string, 0, len(c.Detection.ExcludedDirectories))
	for _, name := range c.Detection.ExcludedDirectories {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		excluded = append(excluded, name)
	}
	c.Detection.ExcludedDirectories = excluded

	c.Detection.FFprobeBinary = strings.TrimSpace(c.Detection.FFprobeBinary)
	if c.Detection.FFprobeBinary == "" {
		c.Detection.FFprobeBinary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
