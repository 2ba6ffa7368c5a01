// Package similarity provides approximate string matching primitives:
// Levenshtein distance, a BK-tree index, and a k-gram overlap index.
package similarity

// LevenshteinDistance calculates the edit distance between two strings.
// This is an optimized implementation using only two rows of the matrix.
func LevenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	r1 := []rune(s1)
	r2 := []rune(s2)

	len1 := len(r1)
	len2 := len(r2)

	if len1 == 0 {
		return len2
	}
	if len2 == 0 {
		return len1
	}

	// Ensure s1 is the shorter string for space optimization
	if len1 > len2 {
		r1, r2 = r2, r1
		len1, len2 = len2, len1
	}

	// Use two rows instead of full matrix
	prev := make([]int, len1+1)
	curr := make([]int, len1+1)

	// Initialize first row
	for i := 0; i <= len1; i++ {
		prev[i] = i
	}

	// Fill the matrix
	for j := 1; j <= len2; j++ {
		curr[0] = j

		for i := 1; i <= len1; i++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}

			curr[i] = minOf3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len1]
}

// minOf3 returns the minimum of three integers.
func minOf3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
