// Package logging builds slog loggers for console and JSON output.
//
// The console handler renders compact single-line records for interactive
// use; the JSON format is for log shipping. NewFromConfig wires the
// application config's format, level, and log directory into a logger that
// writes to stdout and, when a log directory is configured, to a log file.
package logging
