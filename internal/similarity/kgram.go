package similarity

import (
	"sort"
)

// KGramIndex is an inverted index from k-length substrings of normalized
// reference forms to the entries containing them. It serves as a cheap
// fallback candidate generator when a BK-tree query comes back empty.
// Built once, read-only afterwards.
type KGramIndex struct {
	k        int
	postings map[string][]int32
	entries  int
}

// Overlap pairs an entry with the number of grams it shares with a query.
type Overlap struct {
	Entry int32
	Count int
}

// NewKGramIndex creates an empty index with gram size k (minimum 1).
func NewKGramIndex(k int) *KGramIndex {
	if k < 1 {
		k = 1
	}
	return &KGramIndex{
		k:        k,
		postings: make(map[string][]int32),
	}
}

// Add indexes every distinct k-gram of the normalized form under the
// entry ID. Forms shorter than k are indexed as their own single gram.
func (idx *KGramIndex) Add(id int32, word string) {
	if word == "" {
		return
	}

	seen := make(map[string]bool)
	for _, gram := range grams(word, idx.k) {
		if seen[gram] {
			continue
		}
		seen[gram] = true
		idx.postings[gram] = append(idx.postings[gram], id)
	}
	idx.entries++
}

// Candidates returns entries sharing at least one gram with the target,
// ordered by descending overlap count, ties broken by insertion order.
// At most limit entries are returned; limit <= 0 means no cap.
func (idx *KGramIndex) Candidates(target string, limit int) []Overlap {
	if target == "" || idx.entries == 0 {
		return nil
	}

	counts := make(map[int32]int)
	seen := make(map[string]bool)
	for _, gram := range grams(target, idx.k) {
		if seen[gram] {
			continue
		}
		seen[gram] = true
		for _, id := range idx.postings[gram] {
			counts[id]++
		}
	}

	results := make([]Overlap, 0, len(counts))
	for id, count := range counts {
		results = append(results, Overlap{Entry: id, Count: count})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Entry < results[j].Entry
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// GramSize returns the configured gram length.
func (idx *KGramIndex) GramSize() int {
	return idx.k
}

// grams returns the contiguous k-length substrings of word. Normalized
// forms are ASCII, so byte slicing is safe here.
func grams(word string, k int) []string {
	if len(word) <= k {
		return []string{word}
	}
	out := make([]string, 0, len(word)-k+1)
	for i := 0; i+k <= len(word); i++ {
		out = append(out, word[i:i+k])
	}
	return out
}
