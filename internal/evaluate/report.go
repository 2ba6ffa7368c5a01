package evaluate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"samrup/internal/matcher"
)

// WriteTSV writes one row per outcome: query, matched word, edit
// distance, status. Non-matched rows leave the word and distance empty.
func WriteTSV(path string, outcomes []Outcome) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create TSV: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, o := range outcomes {
		if o.Result.Status == matcher.StatusMatched {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				o.Query, o.Result.Original, o.Result.Distance, o.Result.Status)
		} else {
			fmt.Fprintf(w, "%s\t\t\t%s\n", o.Query, o.Result.Status)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write TSV: %w", err)
	}
	return nil
}

// Accuracy scores a batch against a gold query -> expected-word mapping.
type Accuracy struct {
	Scored  int
	Correct int
	Skipped int // queries without a gold row
}

// Rate returns correct/scored, or 0 when nothing was scored.
func (a Accuracy) Rate() float64 {
	if a.Scored == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Scored)
}

// Score compares matched words with the gold mapping.
func Score(outcomes []Outcome, gold map[string]string) Accuracy {
	var acc Accuracy
	for _, o := range outcomes {
		expected, ok := gold[o.Query]
		if !ok {
			acc.Skipped++
			continue
		}
		acc.Scored++
		if o.Result.Status == matcher.StatusMatched && o.Result.Original == expected {
			acc.Correct++
		}
	}
	return acc
}
