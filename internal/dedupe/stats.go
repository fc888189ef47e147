package dedupe

import "fmt"

// Stats aggregates the outcome of one grouping run.
type Stats struct {
	// TotalFiles is the number of scanned records.
	TotalFiles int `json:"total_files"`
	// TotalDuplicates counts every member of every group, anchors included.
	TotalDuplicates int `json:"total_duplicates"`
	// GroupCount is the number of duplicate groups.
	GroupCount int `json:"group_count"`
	// DuplicateSpaceBytes is the space held by non-anchor members.
	DuplicateSpaceBytes int64 `json:"duplicate_space_bytes"`
}

// Summarize derives aggregate statistics from a scan's records and groups.
func Summarize(records []FileRecord, groups []Group) Stats {
	stats := Stats{
		TotalFiles: len(records),
		GroupCount: len(groups),
	}
	for _, group := range groups {
		stats.TotalDuplicates += len(group)
		stats.DuplicateSpaceBytes += group.DuplicateBytes()
	}
	return stats
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count using the largest unit that keeps the
// value under 1024, to one decimal place.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f PB", size)
}
