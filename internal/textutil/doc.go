// Package textutil provides text processing utilities for title
// normalization, string similarity, and filename sanitization.
//
// The primary use cases are:
//   - Canonicalizing movie titles for comparison (lowercase, stopword and
//     punctuation stripping)
//   - Computing a [0,1] similarity score between two titles
//   - Sanitizing names for safe filesystem use
//
// Normalized titles are comparison keys only and are never shown to users.
package textutil
