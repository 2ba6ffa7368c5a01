// Package matcher maps noisy romanized tokens to their best reference
// vocabulary entry, combining a BK-tree, a k-gram fallback index, and a
// brute-force last resort.
package matcher

import (
	"errors"

	"samrup/internal/lexicon"
	"samrup/internal/normalizer"
	"samrup/internal/similarity"
)

// ErrEmptyVocabulary is returned by New when no vocabulary word
// survives normalization.
var ErrEmptyVocabulary = errors.New("matcher: empty reference vocabulary")

// Status classifies a match result.
type Status int

const (
	// StatusMatched means a best reference entry was selected.
	StatusMatched Status = iota
	// StatusEmptyInput means the query normalized to an empty string.
	StatusEmptyInput
	// StatusEmptyVocab means the matcher holds no reference entries.
	StatusEmptyVocab
)

// String returns the status name as used in reports and TSV output.
func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "MATCHED"
	case StatusEmptyInput:
		return "NO_MATCH_EMPTY_INPUT"
	case StatusEmptyVocab:
		return "NO_MATCH_EMPTY_VOCAB"
	}
	return "UNKNOWN"
}

// Stage records which pipeline tier produced a match.
type Stage int

const (
	// StageNone means no tier ran (invalid input or empty vocabulary).
	StageNone Stage = iota
	// StageTree means the BK-tree radius query found the match.
	StageTree
	// StageKGram means the k-gram overlap fallback found it.
	StageKGram
	// StageScan means the brute-force scan over all entries found it.
	StageScan
)

// String returns the stage name as used in reports.
func (s Stage) String() string {
	switch s {
	case StageTree:
		return "tree"
	case StageKGram:
		return "kgram"
	case StageScan:
		return "scan"
	}
	return "none"
}

// Result is the outcome of matching one query.
type Result struct {
	Status     Status `json:"status"`
	Original   string `json:"matched,omitempty"`
	Normalized string `json:"normalized,omitempty"`
	Distance   int    `json:"distance"`
	Stage      Stage  `json:"-"`
}

// Options configures a Matcher.
type Options struct {
	// Radius is the BK-tree query radius.
	Radius int
	// GramSize is the k-gram length for the fallback index.
	GramSize int
	// GramLimit caps how many fallback candidates are rescored.
	GramLimit int
}

// DefaultOptions returns the built-in matching parameters.
func DefaultOptions() Options {
	return Options{
		Radius:    2,
		GramSize:  2,
		GramLimit: 20,
	}
}

// Matcher holds the immutable reference structures. After New returns
// it is read-only, so concurrent MatchBest calls need no locking.
type Matcher struct {
	opts   Options
	lex    *lexicon.Lexicon
	tree   *similarity.BKTree
	kgrams *similarity.KGramIndex
}

// New builds a Matcher from a raw vocabulary: every word is normalized,
// then inserted in input order into the BK-tree and the k-gram index.
// Fails with ErrEmptyVocabulary when nothing survives normalization.
func New(vocabulary []string, opts Options) (*Matcher, error) {
	if opts.Radius < 0 {
		opts.Radius = 0
	}
	if opts.GramSize < 1 {
		opts.GramSize = DefaultOptions().GramSize
	}
	if opts.GramLimit < 1 {
		opts.GramLimit = DefaultOptions().GramLimit
	}

	lex := lexicon.New(vocabulary)
	if lex.Len() == 0 {
		return nil, ErrEmptyVocabulary
	}

	tree := similarity.NewBKTree()
	kgrams := similarity.NewKGramIndex(opts.GramSize)
	for _, e := range lex.Entries() {
		tree.Insert(e.ID, e.Normalized)
		kgrams.Add(e.ID, e.Normalized)
	}

	return &Matcher{
		opts:   opts,
		lex:    lex,
		tree:   tree,
		kgrams: kgrams,
	}, nil
}

// Lexicon returns the underlying reference vocabulary.
func (m *Matcher) Lexicon() *lexicon.Lexicon {
	return m.lex
}

// Options returns the matching parameters in effect.
func (m *Matcher) Options() Options {
	return m.opts
}

// MatchBest returns the reference entry closest to the query. The query
// is normalized, looked up in the BK-tree within the configured radius,
// rescored from the k-gram index when the tree finds nothing, and as a
// last resort scored against every entry. For a non-empty vocabulary and
// a query with any alphanumeric content the status is always
// StatusMatched. Ties are broken lexicographically on the original form.
func (m *Matcher) MatchBest(query string) Result {
	if m.lex.Len() == 0 {
		return Result{Status: StatusEmptyVocab}
	}

	target := normalizer.Normalize(query)
	if target == "" {
		return Result{Status: StatusEmptyInput}
	}

	if candidates := m.tree.Query(target, m.opts.Radius); len(candidates) > 0 {
		best := m.selectTreeCandidate(candidates)
		return m.matched(best.Entry, best.Distance, StageTree)
	}

	if overlaps := m.kgrams.Candidates(target, m.opts.GramLimit); len(overlaps) > 0 {
		id, dist := m.selectByDistance(target, overlaps)
		return m.matched(id, dist, StageKGram)
	}

	id, dist := m.scanAll(target)
	return m.matched(id, dist, StageScan)
}

// Candidates returns every reference entry within radius edits of the
// normalized query, unsorted. A query that normalizes to "" yields nil.
func (m *Matcher) Candidates(query string, radius int) []similarity.Candidate {
	target := normalizer.Normalize(query)
	if target == "" {
		return nil
	}
	return m.tree.Query(target, radius)
}

// selectTreeCandidate picks the minimum-distance BK-tree candidate,
// breaking ties on the original form.
func (m *Matcher) selectTreeCandidate(candidates []similarity.Candidate) similarity.Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Distance < best.Distance ||
			(c.Distance == best.Distance &&
				m.lex.Entry(c.Entry).Original < m.lex.Entry(best.Entry).Original) {
			best = c
		}
	}
	return best
}

// selectByDistance rescores k-gram overlap candidates with exact edit
// distance and picks the minimum, ties broken on the original form.
func (m *Matcher) selectByDistance(target string, overlaps []similarity.Overlap) (int32, int) {
	bestID := overlaps[0].Entry
	bestDist := similarity.LevenshteinDistance(target, m.lex.Entry(bestID).Normalized)

	for _, o := range overlaps[1:] {
		dist := similarity.LevenshteinDistance(target, m.lex.Entry(o.Entry).Normalized)
		if dist < bestDist ||
			(dist == bestDist && m.lex.Entry(o.Entry).Original < m.lex.Entry(bestID).Original) {
			bestID = o.Entry
			bestDist = dist
		}
	}
	return bestID, bestDist
}

// scanAll computes the distance to every entry. O(vocabulary), reached
// only when the query shares no gram with any reference.
func (m *Matcher) scanAll(target string) (int32, int) {
	entries := m.lex.Entries()
	bestID := entries[0].ID
	bestDist := similarity.LevenshteinDistance(target, entries[0].Normalized)

	for _, e := range entries[1:] {
		dist := similarity.LevenshteinDistance(target, e.Normalized)
		if dist < bestDist ||
			(dist == bestDist && e.Original < m.lex.Entry(bestID).Original) {
			bestID = e.ID
			bestDist = dist
		}
	}
	return bestID, bestDist
}

func (m *Matcher) matched(id int32, dist int, stage Stage) Result {
	e := m.lex.Entry(id)
	return Result{
		Status:     StatusMatched,
		Original:   e.Original,
		Normalized: e.Normalized,
		Distance:   dist,
		Stage:      stage,
	}
}
