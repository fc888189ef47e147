package dedupe

import (
	"math"

	"dupefinder/internal/textutil"
)

// Defaults for MatchConfig fields.
const (
	DefaultSimilarityThreshold      = 0.8
	DefaultYearTolerance            = 1
	DefaultDurationToleranceMinutes = 5
)

// MatchConfig carries the parameters of one grouping run. The zero value is
// not useful; start from DefaultMatchConfig. The core does not re-validate
// values: a threshold of 0 groups everything in a year bucket and a
// threshold above 1 groups nothing.
type MatchConfig struct {
	// SimilarityThreshold is the minimum title similarity for a match.
	SimilarityThreshold float64
	// YearTolerance is the maximum year difference between known years.
	YearTolerance int
	// DurationFilterEnabled gates the duration compatibility check.
	DurationFilterEnabled bool
	// DurationToleranceMinutes is the maximum duration difference when the
	// filter is enabled and both durations are known.
	DurationToleranceMinutes int
	// Algorithm selects the title similarity metric.
	Algorithm textutil.Algorithm
	// ExcludedDirectories lists directory names (case-insensitive) whose
	// files are dropped upstream by the scanner. The grouper assumes its
	// input is already filtered.
	ExcludedDirectories []string
}

// DefaultMatchConfig returns the standard matching parameters.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		SimilarityThreshold:      DefaultSimilarityThreshold,
		YearTolerance:            DefaultYearTolerance,
		DurationFilterEnabled:    true,
		DurationToleranceMinutes: DefaultDurationToleranceMinutes,
		Algorithm:                textutil.AlgorithmSequence,
	}
}

// matches reports whether candidate belongs in a group anchored by anchor.
func (c MatchConfig) matches(anchor, candidate FileRecord) bool {
	similarity := textutil.TitleSimilarity(anchor.Title, candidate.Title, c.Algorithm)
	if similarity < c.SimilarityThreshold {
		return false
	}
	if !c.yearsCompatible(anchor.Year, candidate.Year) {
		return false
	}
	return c.durationsCompatible(anchor.DurationSeconds, candidate.DurationSeconds)
}

// yearsCompatible treats year 0 as a wildcard: an unknown year matches any
// year. Known years must differ by at most YearTolerance.
func (c MatchConfig) yearsCompatible(a, b int) bool {
	if a == 0 || b == 0 {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= c.YearTolerance
}

// durationsCompatible is true unless the filter is enabled and both
// durations are known; a missing duration never rejects a match.
func (c MatchConfig) durationsCompatible(a, b float64) bool {
	if !c.DurationFilterEnabled {
		return true
	}
	if a <= 0 || b <= 0 {
		return true
	}
	diffMinutes := math.Abs(a-b) / 60
	return diffMinutes <= float64(c.DurationToleranceMinutes)
}
