// Package lexicon holds the immutable reference vocabulary used for matching.
package lexicon

import (
	"samrup/internal/normalizer"
)

// Entry is one reference word with its canonical normalized form.
// ID is the entry's position in insertion order and is stable for the
// lifetime of the lexicon.
type Entry struct {
	ID         int32  `json:"id"`
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

// Lexicon is the reference vocabulary. It is built once and read-only
// afterwards, so it can be shared between concurrent queries.
type Lexicon struct {
	entries  []Entry
	rejected int
}

// New normalizes every vocabulary word and keeps the ones that survive.
// Words that normalize to "" are counted as rejected. Duplicate
// normalized forms are all kept; multiple originals may share one form.
func New(vocabulary []string) *Lexicon {
	lex := &Lexicon{
		entries: make([]Entry, 0, len(vocabulary)),
	}

	for _, word := range vocabulary {
		normalized := normalizer.Normalize(word)
		if normalized == "" {
			lex.rejected++
			continue
		}
		lex.entries = append(lex.entries, Entry{
			ID:         int32(len(lex.entries)),
			Original:   word,
			Normalized: normalized,
		})
	}

	return lex
}

// Len returns the number of usable entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Rejected returns how many vocabulary words normalized to "".
func (l *Lexicon) Rejected() int {
	return l.rejected
}

// Entry returns the entry with the given ID.
func (l *Lexicon) Entry(id int32) Entry {
	return l.entries[id]
}

// Entries returns all entries in insertion order. Callers must not
// modify the returned slice.
func (l *Lexicon) Entries() []Entry {
	return l.entries
}

// Collisions groups originals that share a normalized form, keyed by
// that form. Only forms with more than one original are returned.
func (l *Lexicon) Collisions() map[string][]string {
	byForm := make(map[string][]string)
	for _, e := range l.entries {
		byForm[e.Normalized] = append(byForm[e.Normalized], e.Original)
	}

	collisions := make(map[string][]string)
	for form, originals := range byForm {
		if len(originals) > 1 {
			collisions[form] = originals
		}
	}
	return collisions
}
