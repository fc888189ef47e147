// Package config loads, normalizes, and validates dupefinder configuration.
//
// Configuration is TOML with three sections: paths (directories), detection
// (matching parameters and scan filters), and logging. Load merges an
// optional config file over repository defaults, expands paths, and
// validates the result. Helpers bridge the validated config into the
// matching core (MatchConfig) and the scanner (ScannerOptions).
package config
