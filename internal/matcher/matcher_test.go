package matcher

import (
	"sync"
	"testing"
)

var vocab = []string{"Ram", "Shakti", "Krishna"}

func mustMatcher(t *testing.T, vocabulary []string) *Matcher {
	t.Helper()
	m, err := New(vocabulary, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func TestNewEmptyVocabulary(t *testing.T) {
	if _, err := New(nil, DefaultOptions()); err != ErrEmptyVocabulary {
		t.Errorf("New(nil) error = %v, want ErrEmptyVocabulary", err)
	}

	// A vocabulary whose every word normalizes away is empty too.
	if _, err := New([]string{"!!!", "   "}, DefaultOptions()); err != ErrEmptyVocabulary {
		t.Errorf("New(unnormalizable) error = %v, want ErrEmptyVocabulary", err)
	}
}

func TestMatchBestScenarios(t *testing.T) {
	m := mustMatcher(t, vocab)

	tests := []struct {
		name     string
		query    string
		status   Status
		matched  string
		distance int
	}{
		{"vowel repetition", "Raaam", StatusMatched, "Ram", 0},
		{"consonant and vowel repetition", "shakttii", StatusMatched, "Shakti", 0},
		{"exact", "Krishna", StatusMatched, "Krishna", 0},
		{"single typo", "Krishma", StatusMatched, "Krishna", 1},
		{"empty input", "", StatusEmptyInput, "", 0},
		{"punctuation only", "!@#", StatusEmptyInput, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := m.MatchBest(tt.query)
			if r.Status != tt.status {
				t.Fatalf("MatchBest(%q).Status = %v, want %v", tt.query, r.Status, tt.status)
			}
			if r.Original != tt.matched {
				t.Errorf("MatchBest(%q).Original = %q, want %q", tt.query, r.Original, tt.matched)
			}
			if tt.status == StatusMatched && r.Distance != tt.distance {
				t.Errorf("MatchBest(%q).Distance = %d, want %d", tt.query, r.Distance, tt.distance)
			}
		})
	}
}

func TestMatchBestBruteForceFallback(t *testing.T) {
	m := mustMatcher(t, vocab)

	// No k-gram overlap with the vocabulary, so only the exhaustive
	// scan can answer, and it must still produce a match.
	r := m.MatchBest("xyz123!@#")
	if r.Status != StatusMatched {
		t.Fatalf("Status = %v, want StatusMatched", r.Status)
	}
	if r.Stage != StageScan {
		t.Errorf("Stage = %v, want StageScan", r.Stage)
	}
	if r.Original == "" {
		t.Error("Original is empty, want a vocabulary word")
	}
}

func TestMatchBestKGramFallback(t *testing.T) {
	// Radius 0 keeps the BK-tree from matching anything but exact
	// forms, forcing the k-gram tier for near misses.
	m, err := New(vocab, Options{Radius: 0, GramSize: 2, GramLimit: 20})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	r := m.MatchBest("shaktig")
	if r.Status != StatusMatched {
		t.Fatalf("Status = %v, want StatusMatched", r.Status)
	}
	if r.Stage != StageKGram {
		t.Errorf("Stage = %v, want StageKGram", r.Stage)
	}
	if r.Original != "Shakti" {
		t.Errorf("Original = %q, want %q", r.Original, "Shakti")
	}
	if r.Distance != 1 {
		t.Errorf("Distance = %d, want 1", r.Distance)
	}
}

// A non-empty vocabulary and non-empty normalized query always match.
func TestMatchBestNeverFails(t *testing.T) {
	m := mustMatcher(t, vocab)

	queries := []string{
		"Raaam", "shakttii", "Krishna", "q", "zzzzzzzzzz",
		"0", "9999", "wphq", "xo", "bcdfg",
	}
	for _, q := range queries {
		if r := m.MatchBest(q); r.Status != StatusMatched {
			t.Errorf("MatchBest(%q).Status = %v, want StatusMatched", q, r.Status)
		}
	}
}

func TestMatchBestDeterministicTieBreak(t *testing.T) {
	// "Gita" and "Mita" are both distance 1 from "bita"; the
	// lexicographically smaller original wins regardless of input order.
	forward := mustMatcher(t, []string{"Gita", "Mita"})
	reverse := mustMatcher(t, []string{"Mita", "Gita"})

	for _, m := range []*Matcher{forward, reverse} {
		r := m.MatchBest("bita")
		if r.Original != "Gita" {
			t.Errorf("MatchBest(bita).Original = %q, want %q", r.Original, "Gita")
		}
		if r.Distance != 1 {
			t.Errorf("MatchBest(bita).Distance = %d, want 1", r.Distance)
		}
	}
}

func TestMatchBestConcurrent(t *testing.T) {
	m := mustMatcher(t, vocab)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if r := m.MatchBest("Raaam"); r.Original != "Ram" {
					t.Errorf("concurrent MatchBest = %q, want Ram", r.Original)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusMatched, "MATCHED"},
		{StatusEmptyInput, "NO_MATCH_EMPTY_INPUT"},
		{StatusEmptyVocab, "NO_MATCH_EMPTY_VOCAB"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func BenchmarkMatchBest(b *testing.B) {
	words := make([]string, 0, 1000)
	base := []string{"ram", "shakti", "krishna", "sita", "gita", "lakshmi", "vishnu", "hanuman"}
	for i := 0; i < 1000; i++ {
		words = append(words, base[i%len(base)]+string(rune('a'+i%26)))
	}
	m, err := New(words, DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MatchBest("shakttii")
	}
}
