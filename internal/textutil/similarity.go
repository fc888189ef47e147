package textutil

import (
	"github.com/hbollon/go-edlib"
)

// Algorithm selects the string similarity metric used for title comparison.
type Algorithm string

const (
	// AlgorithmSequence is the default matching-block ratio metric.
	AlgorithmSequence Algorithm = "sequence"
	// AlgorithmJaroWinkler favors strings sharing a common prefix.
	AlgorithmJaroWinkler Algorithm = "jaro-winkler"
	// AlgorithmLevenshtein derives similarity from edit distance.
	AlgorithmLevenshtein Algorithm = "levenshtein"
	// AlgorithmSorensenDice compares strings by bigram overlap.
	AlgorithmSorensenDice Algorithm = "sorensen-dice"
)

// Valid reports whether the algorithm names a supported metric.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmSequence, AlgorithmJaroWinkler, AlgorithmLevenshtein, AlgorithmSorensenDice:
		return true
	}
	return false
}

// TitleSimilarity normalizes both titles and scores them with the given
// algorithm. The score is symmetric and falls in [0,1]; identical titles
// (including two titles that normalize to the empty string) score 1.0.
func TitleSimilarity(a, b string, alg Algorithm) float64 {
	return Similarity(NormalizeTitle(a), NormalizeTitle(b), alg)
}

// Similarity scores two already-normalized strings in [0,1].
func Similarity(a, b string, alg Algorithm) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	switch alg {
	case AlgorithmJaroWinkler:
		return edlibSimilarity(a, b, edlib.JaroWinkler)
	case AlgorithmLevenshtein:
		return edlibSimilarity(a, b, edlib.Levenshtein)
	case AlgorithmSorensenDice:
		return edlibSimilarity(a, b, edlib.SorensenDice)
	default:
		return SequenceRatio(a, b)
	}
}

func edlibSimilarity(a, b string, alg edlib.Algorithm) float64 {
	sim, err := edlib.StringsSimilarity(a, b, alg)
	if err != nil {
		return 0.0
	}
	return float64(sim)
}

// SequenceRatio computes the matching-block similarity ratio between two
// strings: 2*M/(len(a)+len(b)) where M is the length of the longest common
// subsequence. Equivalent in contract to difflib's SequenceMatcher ratio.
func SequenceRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	lcs := longestCommonSubsequence(a, b)
	return 2.0 * float64(lcs) / float64(len(a)+len(b))
}

// longestCommonSubsequence returns the LCS length of two strings using the
// two-row dynamic programming formulation.
func longestCommonSubsequence(a, b string) int {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return 0
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
