package similarity

import (
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2   string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"Saturday", "Sunday", 3},
		{"ram", "rama", 1},
		{"shakti", "sakti", 1},
		{"krishna", "krsna", 2},
		{"flaw", "lawn", 2},
	}

	for _, tt := range tests {
		result := LevenshteinDistance(tt.s1, tt.s2)
		if result != tt.expected {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d",
				tt.s1, tt.s2, result, tt.expected)
		}

		// Test symmetry
		reverse := LevenshteinDistance(tt.s2, tt.s1)
		if reverse != result {
			t.Errorf("LevenshteinDistance is not symmetric: (%q, %q) = %d, (%q, %q) = %d",
				tt.s1, tt.s2, result, tt.s2, tt.s1, reverse)
		}
	}
}

func TestLevenshteinIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "ram", "shakti", "krishna"} {
		if d := LevenshteinDistance(s, s); d != 0 {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want 0", s, s, d)
		}
	}
}

func TestLevenshteinTriangleInequality(t *testing.T) {
	words := []string{"", "ram", "rama", "shakti", "sakti", "krishna", "kisna"}

	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				ac := LevenshteinDistance(a, c)
				ab := LevenshteinDistance(a, b)
				bc := LevenshteinDistance(b, c)
				if ac > ab+bc {
					t.Errorf("triangle inequality violated: d(%q,%q)=%d > d(%q,%q)+d(%q,%q)=%d",
						a, c, ac, a, b, b, c, ab+bc)
				}
			}
		}
	}
}

func BenchmarkLevenshteinDistance(b *testing.B) {
	s1 := "krishna"
	s2 := "krisna"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		LevenshteinDistance(s1, s2)
	}
}
