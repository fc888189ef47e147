package parse

import (
	"strings"
	"testing"
)

func TestParseFullRelease(t *testing.T) {
	info := Parse("Inception (2010) 1080p BluRay x264.mkv")

	if info.Title != "Inception" {
		t.Errorf("Title = %q, want %q", info.Title, "Inception")
	}
	if info.Year != 2010 {
		t.Errorf("Year = %d, want 2010", info.Year)
	}
	for _, tag := range []string{"1080p", "BluRay", "x264"} {
		if !strings.Contains(info.Quality, tag) {
			t.Errorf("Quality = %q, missing %q", info.Quality, tag)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"paren year", "Inception (2010).mkv", "Inception"},
		{"bracket year", "Inception [2010].mkv", "Inception"},
		{"bare year", "Inception 2010.mkv", "Inception"},
		{"dash rest", "Inception - Directors Cut.mkv", "Inception"},
		{"dotted", "The.Dark.Knight.2008.720p.mkv", "The Dark Knight"},
		{"underscores", "Blade_Runner.avi", "Blade Runner"},
		{"no markers", "Casablanca.mp4", "Casablanca"},
		{"empty stem", ".mkv", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.filename); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     int
	}{
		{"parenthesized", "Inception (2010).mkv", 2010},
		{"bracketed", "Inception [2010].mkv", 2010},
		{"bare", "Inception 2010.mkv", 2010},
		{"lower bound", "Le Voyage (1900).mkv", 1900},
		{"upper bound", "Future (2030).mkv", 2030},
		{"too old", "Film (1850).mkv", 0},
		{"too new", "Film (2099).mkv", 0},
		{"absent", "Casablanca.mp4", 0},
		{"paren beats bare", "Movie 1080 (1999).mkv", 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Year(tt.filename); got != tt.want {
				t.Errorf("Year(%q) = %d, want %d", tt.filename, got, tt.want)
			}
		})
	}
}

func TestQuality(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"none", "Casablanca.mp4", UnknownQuality},
		{"resolution only", "Movie 720p.mkv", "720p"},
		{"source and codec", "Movie WEBRip x265.mkv", "WEBRip x265"},
		{"case preserved", "Movie BRRip.mkv", "BRRip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quality(tt.filename); got != tt.want {
				t.Errorf("Quality(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestParseMalformedInputNeverPanics(t *testing.T) {
	for _, filename := range []string{"", ".", "...", "(((", "    ", "\x00weird\x00.mkv"} {
		info := Parse(filename)
		if info.Year != 0 && (info.Year < minYear || info.Year > maxYear) {
			t.Errorf("Parse(%q).Year = %d, outside valid range", filename, info.Year)
		}
	}
}
