package config

import "dupefinder/internal/dedupe"

const (
	defaultDataDir       = "~/.local/share/dupefinder"
	defaultLogDir        = "~/.local/share/dupefinder/logs"
	defaultReportDir     = "~/.local/share/dupefinder/reports"
	defaultAlgorithm     = "sequence"
	defaultFFprobeBinary = "ffprobe"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

func defaultSupportedExtensions() []string {
	return []string{
		".mp4", ".avi", ".mkv", ".mov", ".wmv",
		".flv", ".m4v", ".mpg", ".mpeg", ".3gp", ".webm",
	}
}

func defaultExcludedDirectories() []string {
	return []string{"debug", "00-borrar", "temp", "temporary", "backup", "backups"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ReportDir: defaultReportDir,
		},
		Detection: Detection{
			SimilarityThreshold:      dedupe.DefaultSimilarityThreshold,
			Algorithm:                defaultAlgorithm,
			DurationFilterEnabled:    true,
			DurationToleranceMinutes: dedupe.DefaultDurationToleranceMinutes,
			SupportedExtensions:      defaultSupportedExtensions(),
			ExcludedDirectories:      defaultExcludedDirectories(),
			ProbeDurations:           false,
			FFprobeBinary:            defaultFFprobeBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
