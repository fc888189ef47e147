// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// The scanner uses it as an optional collaborator to probe media durations
// and video dimensions. A missing ffprobe binary or an unreadable file
// yields an error the caller degrades from (duration 0); nothing here is
// fatal to a scan.
package ffprobe
