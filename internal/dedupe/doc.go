// Package dedupe implements the duplicate detection core: it clusters
// scanned video files into duplicate groups by fuzzy title similarity,
// year compatibility, and optional duration compatibility.
//
// Grouping is greedy single-link clustering: records are bucketed by parsed
// year, and within each bucket candidates are compared against the first
// unprocessed record (the anchor) only, never against other members. A
// record assigned to a group is never reassigned, even if it would score
// higher against a later anchor. Groups therefore form stars around their
// anchors rather than transitive cliques; see GroupDuplicates.
//
// The core is pure: it treats its inputs as read-only, performs no I/O,
// holds no global state, and never returns an error. Malformed records
// simply fail to match anything.
package dedupe
