// Package parse extracts movie metadata from video filenames.
//
// Parse applies ordered pattern rules to pull a title, release year, and
// quality tags out of a raw filename. Parsing is best-effort: malformed
// input falls back to the full stem as the title with year 0 and quality
// "Unknown", and no input ever produces an error.
package parse
