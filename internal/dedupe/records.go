package dedupe

// FileRecord describes one scanned video file. Records are created once per
// scan by the scanner and are immutable afterwards.
type FileRecord struct {
	// Path is the absolute filesystem path and unique record identifier.
	Path string `json:"path"`
	// Filename is the base name including extension.
	Filename string `json:"filename"`
	// Title is the parsed movie title; may be empty for unparseable names.
	Title string `json:"title"`
	// Year is the parsed release year, or 0 when unknown.
	Year int `json:"year"`
	// Quality holds the parsed quality tags, or "Unknown".
	Quality string `json:"quality"`
	// SizeBytes is the file size on disk.
	SizeBytes int64 `json:"size_bytes"`
	// Folder is the parent directory path.
	Folder string `json:"folder"`
	// DurationSeconds is the probed media duration; 0 means unavailable.
	DurationSeconds float64 `json:"duration_seconds"`
}

// Group is an ordered set of at least two records judged to represent the
// same movie. Every member satisfies the matching predicate against the
// first member (the anchor), not necessarily against each other.
type Group []FileRecord

// Anchor returns the group's first member, treated as the canonical copy.
func (g Group) Anchor() FileRecord {
	if len(g) == 0 {
		return FileRecord{}
	}
	return g[0]
}

// DuplicateBytes sums the sizes of every member except the anchor: the
// space reclaimable by keeping only the canonical copy.
func (g Group) DuplicateBytes() int64 {
	if len(g) == 0 {
		return 0
	}
	var total int64
	for _, rec := range g[1:] {
		total += rec.SizeBytes
	}
	return total
}
