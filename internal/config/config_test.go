package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dupefinder/internal/textutil"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists = true for missing file")
	}
	if cfg.Detection.SimilarityThreshold != 0.8 {
		t.Errorf("SimilarityThreshold = %v, want 0.8", cfg.Detection.SimilarityThreshold)
	}
	if cfg.Detection.Algorithm != "sequence" {
		t.Errorf("Algorithm = %q, want sequence", cfg.Detection.Algorithm)
	}
	if cfg.Detection.DurationToleranceMinutes != 5 {
		t.Errorf("DurationToleranceMinutes = %d, want 5", cfg.Detection.DurationToleranceMinutes)
	}
	if len(cfg.Detection.SupportedExtensions) == 0 {
		t.Error("SupportedExtensions is empty")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[detection]
similarity_threshold = 0.65
algorithm = "Jaro-Winkler"
excluded_directories = ["  staging  ", ""]
supported_extensions = ["MKV", ".Mp4"]

[logging]
format = "JSON"
level = "DEBUG"
`)

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for present file")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Detection.SimilarityThreshold != 0.65 {
		t.Errorf("SimilarityThreshold = %v, want 0.65", cfg.Detection.SimilarityThreshold)
	}
	if cfg.Detection.Algorithm != "jaro-winkler" {
		t.Errorf("Algorithm = %q, want jaro-winkler (lowercased)", cfg.Detection.Algorithm)
	}
	if got := cfg.Detection.ExcludedDirectories; len(got) != 1 || got[0] != "staging" {
		t.Errorf("ExcludedDirectories = %v, want [staging]", got)
	}
	if got := cfg.Detection.SupportedExtensions; len(got) != 2 || got[0] != ".mkv" || got[1] != ".mp4" {
		t.Errorf("SupportedExtensions = %v, want [.mkv .mp4]", got)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v, want json/debug", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			"threshold above one",
			"[detection]\nsimilarity_threshold = 1.5\n",
			"similarity_threshold",
		},
		{
			"negative threshold",
			"[detection]\nsimilarity_threshold = -0.1\n",
			"similarity_threshold",
		},
		{
			"unknown algorithm",
			"[detection]\nalgorithm = \"soundex\"\n",
			"algorithm",
		},
		{
			"zero tolerance",
			"[detection]\nduration_tolerance_minutes = 0\n",
			"duration_tolerance_minutes",
		},
		{
			"empty extensions",
			"[detection]\nsupported_extensions = [\"\"]\n",
			"supported_extensions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadExpandsPaths(t *testing.T) {
	path := writeConfig(t, `
[paths]
data_dir = "~/dupefinder-data"
`)

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	want := filepath.Join(home, "dupefinder-data")
	if cfg.Paths.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.Paths.DataDir, want)
	}
}

func TestMatchConfigBridging(t *testing.T) {
	cfg := Default()
	cfg.Detection.SimilarityThreshold = 0.7
	cfg.Detection.DurationFilterEnabled = false
	cfg.Detection.Algorithm = "levenshtein"

	mc := cfg.MatchConfig()
	if mc.SimilarityThreshold != 0.7 {
		t.Errorf("SimilarityThreshold = %v, want 0.7", mc.SimilarityThreshold)
	}
	if mc.DurationFilterEnabled {
		t.Error("DurationFilterEnabled = true, want false")
	}
	if mc.Algorithm != textutil.AlgorithmLevenshtein {
		t.Errorf("Algorithm = %q, want levenshtein", mc.Algorithm)
	}
	if mc.YearTolerance != 1 {
		t.Errorf("YearTolerance = %d, want 1", mc.YearTolerance)
	}
}

func TestScannerOptionsBridging(t *testing.T) {
	cfg := Default()
	opts := cfg.ScannerOptions()
	if len(opts.Extensions) != len(cfg.Detection.SupportedExtensions) {
		t.Errorf("Extensions = %v, want %v", opts.Extensions, cfg.Detection.SupportedExtensions)
	}
	if opts.ProbeDurations {
		t.Error("ProbeDurations defaults to true, want false")
	}
	if opts.FFprobeBinary != "ffprobe" {
		t.Errorf("FFprobeBinary = %q, want ffprobe", opts.FFprobeBinary)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load(sample): %v", err)
	}
	if !exists {
		t.Fatal("sample config not detected")
	}
	if cfg.Detection.SimilarityThreshold != 0.8 {
		t.Errorf("sample threshold = %v, want 0.8", cfg.Detection.SimilarityThreshold)
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
