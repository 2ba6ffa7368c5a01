package similarity

import (
	"testing"
)

func buildKGramIndex(k int, words []string) *KGramIndex {
	idx := NewKGramIndex(k)
	for i, w := range words {
		idx.Add(int32(i), w)
	}
	return idx
}

func TestKGramCandidates(t *testing.T) {
	idx := buildKGramIndex(2, []string{"ram", "rama", "shakti", "krishna"})

	results := idx.Candidates("rama", 0)
	if len(results) == 0 {
		t.Fatal("Candidates(rama) returned nothing")
	}

	// "rama" shares all grams with entry 1 and most with entry 0.
	if results[0].Entry != 1 {
		t.Errorf("top candidate = entry %d, want 1 (rama)", results[0].Entry)
	}
	if results[0].Count != 3 {
		t.Errorf("top overlap = %d, want 3 (ra, am, ma)", results[0].Count)
	}
}

func TestKGramCandidatesExcludesZeroOverlap(t *testing.T) {
	idx := buildKGramIndex(2, []string{"ram", "shakti"})

	for _, r := range idx.Candidates("ram", 0) {
		if r.Entry == 1 {
			t.Errorf("entry 1 (shakti) returned with overlap %d, want excluded", r.Count)
		}
	}
}

func TestKGramCandidatesNoOverlap(t *testing.T) {
	idx := buildKGramIndex(2, []string{"ram", "shakti", "krishna"})

	if results := idx.Candidates("xyz", 0); len(results) != 0 {
		t.Errorf("Candidates(xyz) = %v, want empty", results)
	}
}

func TestKGramCandidatesLimit(t *testing.T) {
	idx := buildKGramIndex(2, []string{"rama", "ramana", "ramaya", "raman", "ram"})

	results := idx.Candidates("rama", 3)
	if len(results) != 3 {
		t.Errorf("Candidates with limit 3 returned %d entries", len(results))
	}
}

func TestKGramTieBreakInsertionOrder(t *testing.T) {
	// Both entries share the single gram "ra"; the earlier entry wins.
	idx := buildKGramIndex(2, []string{"rana", "rani"})

	results := idx.Candidates("rata", 0)
	if len(results) != 2 {
		t.Fatalf("Candidates returned %d entries, want 2", len(results))
	}
	if results[0].Entry != 0 || results[1].Entry != 1 {
		t.Errorf("tie order = [%d %d], want [0 1]", results[0].Entry, results[1].Entry)
	}
}

func TestKGramShortForms(t *testing.T) {
	// Forms shorter than k index as their own single gram.
	idx := buildKGramIndex(3, []string{"om", "ram"})

	results := idx.Candidates("om", 0)
	if len(results) != 1 || results[0].Entry != 0 {
		t.Fatalf("Candidates(om) = %v, want entry 0 only", results)
	}
}

func TestKGramDedupesRepeatedGrams(t *testing.T) {
	// "anana" contains "an" and "na" twice each, but overlap counts
	// distinct grams only.
	idx := buildKGramIndex(2, []string{"anana"})

	results := idx.Candidates("an", 0)
	if len(results) != 1 {
		t.Fatalf("Candidates(an) returned %d entries, want 1", len(results))
	}
	if results[0].Count != 1 {
		t.Errorf("overlap = %d, want 1", results[0].Count)
	}
}

func BenchmarkKGramCandidates(b *testing.B) {
	idx := buildKGramIndex(2, generateWords(10000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Candidates("hello", 20)
	}
}
