// Package scanstore persists scan results in SQLite.
//
// Each scan is stored with its file records, duplicate groups, and derived
// statistics so reports and group listings can run without rescanning the
// filesystem. A new scan does not touch earlier ones; callers usually read
// the latest. A lock file guards the database against concurrent writers.
package scanstore
