// Package scanner discovers video files under a root directory and turns
// them into file records for duplicate detection.
//
// The walk skips excluded directories by name (case-insensitive), keeps
// only files with a supported video extension, and parses each filename
// into title, year, and quality. Duration probing via ffprobe is optional;
// probe failures degrade to duration 0 and never abort a scan.
package scanner
