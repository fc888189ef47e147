package parse

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// UnknownQuality is reported when no quality tag is found in a filename.
const UnknownQuality = "Unknown"

// Years outside this window are treated as stray numbers, not release years.
const (
	minYear = 1900
	maxYear = 2030
)

// titlePatterns are tried in order against the filename stem; the first
// match wins. The final pattern matches any stem, so a non-empty stem
// always yields a title.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)\s*\(\d{4}\)`),       // Title (Year)
	regexp.MustCompile(`(?i)^(.+?)\s*\[\d{4}\]`),       // Title [Year]
	regexp.MustCompile(`(?i)^(.+?)\s*\d{4}`),           // Title Year
	regexp.MustCompile(`(?i)^(.+?)(?:\s*-\s*.+)?$`),    // Title - rest
}

// yearPatterns are tried in order; bracketed years take priority over bare
// four-digit numbers.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\((\d{4})\)`),
	regexp.MustCompile(`\[(\d{4})\]`),
	regexp.MustCompile(`\b(\d{4})\b`),
}

// qualityPatterns are non-exclusive: every match across every pattern is
// collected into the quality string.
var qualityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)1080p|720p|480p|360p|2160p|4K`),
	regexp.MustCompile(`(?i)HD|FHD|UHD`),
	regexp.MustCompile(`(?i)BluRay|BRRip|BDRip|DVDRip|HDRip|WEBRip`),
	regexp.MustCompile(`(?i)x264|x265|H\.264|H\.265`),
}

var separatorPattern = regexp.MustCompile(`[._-]`)

// Info holds the fields extracted from a video filename.
type Info struct {
	Title   string
	Year    int
	Quality string
}

// Parse extracts title, year, and quality tags from a filename. The year is
// 0 when absent or implausible; the quality is UnknownQuality when no tag
// matches.
func Parse(filename string) Info {
	return Info{
		Title:   Title(filename),
		Year:    Year(filename),
		Quality: Quality(filename),
	}
}

// Title extracts the movie title from a filename. Dots, underscores, and
// dashes in the matched title become spaces, and repeated whitespace is
// collapsed.
func Title(filename string) string {
	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	for _, pattern := range titlePatterns {
		if m := pattern.FindStringSubmatch(title); m != nil {
			title = strings.TrimSpace(m[1])
			break
		}
	}

	title = separatorPattern.ReplaceAllString(title, " ")
	return strings.Join(strings.Fields(title), " ")
}

// Year extracts a plausible release year from a filename, or 0 when none is
// found. Each pattern contributes only its first match: a stray number in a
// bracketed position shadows any later bare year, mirroring how release
// years are conventionally placed right after the title.
func Year(filename string) int {
	for _, pattern := range yearPatterns {
		m := pattern.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if year >= minYear && year <= maxYear {
			return year
		}
	}
	return 0
}

// Quality collects every quality tag present in the filename (resolution,
// tier, source, codec) joined with spaces, or UnknownQuality when none match.
func Quality(filename string) string {
	var tags []string
	for _, pattern := range qualityPatterns {
		tags = append(tags, pattern.FindAllString(filename, -1)...)
	}
	if len(tags) == 0 {
		return UnknownQuality
	}
	return strings.Join(tags, " ")
}
