// Package evaluate runs batches of queries through a shared Matcher and
// reports the outcomes. Queries are independent, so the batch is
// parallel across a worker pool.
package evaluate

import (
	"context"
	"sync"

	"samrup/internal/matcher"
)

// Config configures batch evaluation.
type Config struct {
	Workers int // Number of parallel workers (<=1 = sequential)
}

// Outcome pairs one query with its match result.
type Outcome struct {
	Query  string
	Result matcher.Result
}

// Progress is called as each query completes.
type Progress func(query string, outcome *Outcome)

// Run matches every query against m. Outcomes are returned in query
// order regardless of worker scheduling. The context cancels remaining
// work; completed outcomes are still returned and skipped queries are
// omitted, so every returned outcome carries a real result.
func Run(ctx context.Context, m *matcher.Matcher, queries []string, config Config, callback Progress) []Outcome {
	outcomes := make([]Outcome, len(queries))

	if config.Workers <= 1 {
		for i, q := range queries {
			select {
			case <-ctx.Done():
				return outcomes[:i]
			default:
			}
			outcomes[i] = Outcome{Query: q, Result: m.MatchBest(q)}
			if callback != nil {
				callback(q, &outcomes[i])
			}
		}
		return outcomes
	}

	type job struct {
		index int
		query string
	}

	jobs := make(chan job, len(queries))
	done := make(chan int, len(queries))

	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					continue
				default:
				}
				outcomes[j.index] = Outcome{Query: j.query, Result: m.MatchBest(j.query)}
				done <- j.index
			}
		}()
	}

	go func() {
		for i, q := range queries {
			jobs <- job{i, q}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	filled := make([]bool, len(queries))
	completedCount := 0
	for idx := range done {
		filled[idx] = true
		completedCount++
		if callback != nil {
			callback(outcomes[idx].Query, &outcomes[idx])
		}
	}
	if completedCount == len(queries) {
		return outcomes
	}

	// Cancelled jobs never filled their slot; a zero Outcome must not
	// leak out looking like a match.
	completed := make([]Outcome, 0, completedCount)
	for i, ok := range filled {
		if ok {
			completed = append(completed, outcomes[i])
		}
	}
	return completed
}

// Stats aggregates a batch of outcomes by status and pipeline stage.
type Stats struct {
	Total      int
	Matched    int
	EmptyInput int
	EmptyVocab int
	ByStage    map[string]int
}

// Aggregate computes batch statistics from outcomes.
func Aggregate(outcomes []Outcome) *Stats {
	stats := &Stats{
		Total:   len(outcomes),
		ByStage: make(map[string]int),
	}

	for _, o := range outcomes {
		switch o.Result.Status {
		case matcher.StatusMatched:
			stats.Matched++
			stats.ByStage[o.Result.Stage.String()]++
		case matcher.StatusEmptyInput:
			stats.EmptyInput++
		case matcher.StatusEmptyVocab:
			stats.EmptyVocab++
		}
	}

	return stats
}
