package textutil

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"lowercases", "The MATRIX", "matrix"},
		{"drops english article", "The Matrix", "matrix"},
		{"drops spanish article", "El Laberinto del Fauno", "laberinto del fauno"},
		{"drops interior article", "Return of a Hero", "return of hero"},
		{"strips punctuation", "Amelie: From Montmartre!", "amelie from montmartre"},
		{"keeps digits", "Blade Runner 2049", "blade runner 2049"},
		{"collapses whitespace", "  The   Matrix  ", "matrix"},
		{"empty input", "", ""},
		{"only stopwords", "The A An", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.title); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitleOnlyRemovesExactStopwordTokens(t *testing.T) {
	// "theater" contains "the" as a prefix but is not a stopword token.
	if got := NormalizeTitle("Theater of Dreams"); got != "theater of dreams" {
		t.Errorf("NormalizeTitle() = %q, want %q", got, "theater of dreams")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "movies", "movies"},
		{"slashes become dashes", "a/b\\c", "a-b-c"},
		{"unsafe removed", "what?<>|", "what"},
		{"empty falls back", "  ", "scan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
