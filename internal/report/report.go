package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dupefinder/internal/dedupe"
	"dupefinder/internal/textutil"
)

var titleCaser = cases.Title(language.Und)

// DefaultFileName derives a report filename from the scanned root, for
// example "duplicates_Movies.txt" for a scan of /mnt/media/Movies.
func DefaultFileName(root string) string {
	return fmt.Sprintf("duplicates_%s.txt", textutil.SanitizeFileName(filepath.Base(root)))
}

// Write renders a report for the given scan results and writes it to path,
// creating parent directories as needed.
func Write(path, root string, generatedAt time.Time, groups []dedupe.Group) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	if err := Render(file, root, generatedAt, groups); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return file.Close()
}

// Render writes the plain-text report to w. Groups appear in the order
// they were detected, anchor file first within each group.
func Render(w io.Writer, root string, generatedAt time.Time, groups []dedupe.Group) error {
	var b strings.Builder

	b.WriteString("DUPLICATE MOVIE REPORT\n")
	fmt.Fprintf(&b, "Date: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Scanned folder: %s\n", root)
	fmt.Fprintf(&b, "Duplicate groups: %d\n", len(groups))
	b.WriteString(strings.Repeat("=", 80) + "\n\n")

	for i, group := range groups {
		anchor := group.Anchor()

		fmt.Fprintf(&b, "GROUP %d\n", i+1)
		fmt.Fprintf(&b, "Title: %s\n", DisplayTitle(anchor.Title))
		fmt.Fprintf(&b, "Year: %s\n", yearLabel(anchor.Year))
		fmt.Fprintf(&b, "Files (%d):\n", len(group))

		for j, rec := range group {
			fmt.Fprintf(&b, "  %d. %s\n", j+1, rec.Filename)
			fmt.Fprintf(&b, "     Path: %s\n", rec.Path)
			fmt.Fprintf(&b, "     Quality: %s\n", rec.Quality)
			fmt.Fprintf(&b, "     Size: %s\n", dedupe.FormatSize(rec.SizeBytes))
		}

		b.WriteString("\n" + strings.Repeat("-", 50) + "\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DisplayTitle converts a parsed title to title case for presentation.
func DisplayTitle(title string) string {
	if title == "" {
		return "Unknown"
	}
	return titleCaser.String(title)
}

func yearLabel(year int) string {
	if year <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", year)
}
