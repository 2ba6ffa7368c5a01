// samrup CLI - batch evaluation of noisy romanized tokens against a
// reference vocabulary.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"samrup/internal/config"
	"samrup/internal/evaluate"
	"samrup/internal/ingest"
	"samrup/internal/matcher"
	"samrup/internal/metrics"
	"samrup/internal/ui"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

func main() {
	// Flags
	reference := pflag.StringP("reference", "r", "", "Reference vocabulary file (one word per line)")
	queries := pflag.StringP("queries", "i", "", "Query file (one word per line)")
	gold := pflag.StringP("gold", "g", "", "Gold TSV (query<TAB>expected) for accuracy scoring")
	outputDir := pflag.StringP("output-dir", "o", config.DefaultOutputDir(), "Output directory")
	radius := pflag.IntP("radius", "n", config.DefaultRadius(), "BK-tree query radius")
	gramSize := pflag.IntP("gram-size", "k", config.DefaultGramSize(), "K-gram length for the fallback index")
	gramLimit := pflag.IntP("limit", "l", config.DefaultGramLimit(), "Fallback candidates to rescore")
	quiet := pflag.BoolP("quiet", "q", config.DefaultQuiet(), "Suppress progress output")
	verbose := pflag.BoolP("verbose", "v", config.DefaultVerbose(), "Verbose logging")
	writeMetrics := pflag.Bool("metrics", config.DefaultMetrics(), "Write metrics to output directory")
	benchmark := pflag.Bool("benchmark", false, "Run in benchmark mode (JSON output only)")

	// Parallel processing flags
	parallel := pflag.BoolP("parallel", "p", config.DefaultParallel(), "Enable parallel matching")
	workers := pflag.IntP("workers", "w", config.DefaultWorkers(), "Number of parallel workers (0 = auto)")

	pflag.Parse()

	if *reference == "" || *queries == "" {
		fmt.Fprintln(os.Stderr, "Usage: samrup --reference <file> --queries <file> [options]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	// Auto-detect workers
	if *workers <= 0 {
		*workers = runtime.NumCPU()
		if *workers > config.MaxWorkers {
			*workers = config.MaxWorkers
		}
	}
	if !*parallel {
		*workers = 1
	}

	// Initialize UI
	term := ui.New(*quiet || *benchmark, *verbose)

	if !*benchmark {
		term.Banner()
	}

	// Initialize metrics collector
	collector := metrics.NewCollector()
	collector.SetConfigMap(map[string]interface{}{
		"reference":  *reference,
		"queries":    *queries,
		"radius":     *radius,
		"gram_size":  *gramSize,
		"gram_limit": *gramLimit,
		"parallel":   *parallel,
		"workers":    *workers,
	})

	if !*benchmark {
		term.Config(*reference, *radius, *gramSize, *gramLimit, *workers)
	}

	// Phase 1: Load reference and query files
	collector.StartStage("load")
	if !*benchmark {
		term.Phase(1, 3, "Loading reference vocabulary and queries")
	}

	refResult, err := ingest.LoadWords(*reference)
	if err != nil {
		term.Error(err.Error())
		os.Exit(1)
	}
	queryResult, err := ingest.LoadWords(*queries)
	if err != nil {
		term.Error(err.Error())
		os.Exit(1)
	}

	var goldMap map[string]string
	if *gold != "" {
		goldMap, err = ingest.LoadGold(*gold)
		if err != nil {
			term.Error(err.Error())
			os.Exit(1)
		}
	}

	collector.EndStage("load")
	collector.SetStageCounter("load", "reference_words", int64(len(refResult.Words)))
	collector.SetStageCounter("load", "queries", int64(len(queryResult.Words)))

	if !*benchmark {
		term.Info(fmt.Sprintf("%d reference words, %d queries", len(refResult.Words), len(queryResult.Words)))
	}

	// Phase 2: Build matcher
	collector.StartStage("build")
	if !*benchmark {
		term.Phase(2, 3, "Building matcher indexes")
	}

	buildSpinner := term.Spinner("Normalizing and indexing reference vocabulary...")
	m, err := matcher.New(refResult.Words, matcher.Options{
		Radius:    *radius,
		GramSize:  *gramSize,
		GramLimit: *gramLimit,
	})
	buildSpinner.Stop()
	if err != nil {
		term.Error(err.Error())
		os.Exit(1)
	}

	collector.EndStage("build")
	collector.SetStageCounter("build", "entries", int64(m.Lexicon().Len()))
	collector.SetStageCounter("build", "rejected", int64(m.Lexicon().Rejected()))

	if rejected := m.Lexicon().Rejected(); rejected > 0 && !*benchmark {
		term.Warning(fmt.Sprintf("%d reference words rejected (empty after normalization)", rejected))
	}

	// Phase 3: Match queries
	collector.StartStage("match")
	if !*benchmark {
		term.Phase(3, 3, "Matching queries")
	}

	var progress *pterm.ProgressbarPrinter
	if !*benchmark && !*quiet {
		progress = term.Progress("Matching", len(queryResult.Words))
	}

	var mu sync.Mutex
	outcomes := evaluate.Run(context.Background(), m, queryResult.Words,
		evaluate.Config{Workers: *workers},
		func(query string, o *evaluate.Outcome) {
			if progress == nil {
				return
			}
			mu.Lock()
			progress.Increment()
			mu.Unlock()
		})

	stats := evaluate.Aggregate(outcomes)
	collector.EndStage("match")
	collector.SetStageCounter("match", "matched", int64(stats.Matched))
	collector.SetStageCounter("match", "empty_input", int64(stats.EmptyInput))
	for stage, count := range stats.ByStage {
		collector.SetStageCounter("match", "via_"+stage, int64(count))
	}

	if !*benchmark {
		term.MatchStats(stats.Matched, stats.EmptyInput, stats.EmptyVocab, stats.ByStage)
	}

	// Write predictions
	predictedPath := filepath.Join(*outputDir, "predicted.tsv")
	if err := evaluate.WriteTSV(predictedPath, outcomes); err != nil {
		term.Warning(fmt.Sprintf("Failed to write predictions: %v", err))
	} else if !*benchmark {
		term.Info(fmt.Sprintf("Predictions written: %s", predictedPath))
	}

	// Score against gold
	if goldMap != nil {
		acc := evaluate.Score(outcomes, goldMap)
		collector.SetStageCounter("match", "gold_correct", int64(acc.Correct))
		collector.SetStageCounter("match", "gold_scored", int64(acc.Scored))
		if !*benchmark {
			term.Accuracy(acc.Correct, acc.Scored, acc.Skipped, acc.Rate())
		}
	}

	// Finalize metrics
	runMetrics := collector.Finalize(int64(stats.Total), int64(stats.Matched))

	if *writeMetrics || *benchmark {
		reporter := metrics.NewReporter(*outputDir)

		previousRun, _ := reporter.GetLastRun()

		if err := reporter.Write(runMetrics); err != nil {
			if !*benchmark {
				term.Warning(fmt.Sprintf("Failed to write metrics: %v", err))
			}
		} else if !*benchmark {
			term.Debug(fmt.Sprintf("Metrics written: %s", runMetrics.RunID))
		}

		if previousRun != nil && !*benchmark {
			comparison := metrics.CompareRuns(runMetrics, previousRun)
			if comparison != nil {
				term.Info(metrics.FormatComparison(comparison))
			}
		}
	}

	// Final report
	if *benchmark {
		fmt.Printf(`{"run_id":"%s","duration_ms":%d,"throughput":%.2f,"queries":%d,"matched":%d,"parallel":%t,"workers":%d}`,
			runMetrics.RunID,
			runMetrics.Totals.DurationMs,
			runMetrics.Totals.Throughput,
			runMetrics.Totals.QueriesProcessed,
			runMetrics.Totals.QueriesMatched,
			*parallel,
			*workers,
		)
		fmt.Println()
	} else {
		term.FinalReport(stats.Total, stats.Matched,
			collector.GetStageDuration("load")+collector.GetStageDuration("build")+collector.GetStageDuration("match"))
		term.Done()
	}
}
