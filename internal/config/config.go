package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"dupefinder/internal/dedupe"
	"dupefinder/internal/scanner"
	"dupefinder/internal/textutil"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// ScanRoot is the default folder to scan when none is given on the
	// command line.
	ScanRoot string `toml:"scan_root"`
	// DataDir holds the scan results database.
	DataDir string `toml:"data_dir"`
	// LogDir receives the log file alongside console output.
	LogDir string `toml:"log_dir"`
	// ReportDir is the default destination for text reports.
	ReportDir string `toml:"report_dir"`
}

// Detection contains duplicate matching parameters and scan filters.
type Detection struct {
	SimilarityThreshold      float64  `toml:"similarity_threshold"`
	Algorithm                string   `toml:"algorithm"`
	DurationFilterEnabled    bool     `toml:"duration_filter_enabled"`
	DurationToleranceMinutes int      `toml:"duration_tolerance_minutes"`
	SupportedExtensions      []string `toml:"supported_extensions"`
	ExcludedDirectories      []string `toml:"excluded_directories"`
	ProbeDurations           bool     `toml:"probe_durations"`
	FFprobeBinary            string   `toml:"ffprobe_binary"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for dupefinder.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Detection Detection `toml:"detection"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/dupefinder/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a config file existed at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("dupefinder.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the application writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir, c.Paths.ReportDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// MatchConfig builds the matching core parameters from the configuration.
func (c *Config) MatchConfig() dedupe.MatchConfig {
	return dedupe.MatchConfig{
		SimilarityThreshold:      c.Detection.SimilarityThreshold,
		YearTolerance:            dedupe.DefaultYearTolerance,
		DurationFilterEnabled:    c.Detection.DurationFilterEnabled,
		DurationToleranceMinutes: c.Detection.DurationToleranceMinutes,
		Algorithm:                textutil.Algorithm(c.Detection.Algorithm),
		ExcludedDirectories:      append([]string(nil), c.Detection.ExcludedDirectories...),
	}
}

// ScannerOptions builds file discovery options from the configuration.
func (c *Config) ScannerOptions() scanner.Options {
	return scanner.Options{
		Extensions:          append([]string(nil), c.Detection.SupportedExtensions...),
		ExcludedDirectories: append([]string(nil), c.Detection.ExcludedDirectories...),
		ProbeDurations:      c.Detection.ProbeDurations,
		FFprobeBinary:       c.Detection.FFprobeBinary,
	}
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath expands a leading ~ and resolves the path to absolute form.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
