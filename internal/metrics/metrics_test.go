package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	if c.GetRunID() == "" {
		t.Error("Expected non-empty run ID")
	}

	c.SetConfig("radius", 2)
	c.SetConfig("parallel", true)

	c.StartStage("load")
	time.Sleep(10 * time.Millisecond)
	c.IncrementCounter("files", 2)
	c.SetGauge("words_per_sec", 1024.5)
	c.EndStage("load")

	c.StartStage("match")
	c.SetCounter("queries", 500)
	c.SetCounter("matched", 480)
	c.EndStage("match")

	metrics := c.Finalize(500, 480)

	if metrics.RunID == "" {
		t.Error("Expected non-empty run ID in metrics")
	}

	if metrics.Totals.QueriesProcessed != 500 {
		t.Errorf("Expected 500 queries, got %d", metrics.Totals.QueriesProcessed)
	}

	if metrics.Totals.QueriesMatched != 480 {
		t.Errorf("Expected 480 matched, got %d", metrics.Totals.QueriesMatched)
	}

	if _, ok := metrics.Stages["load"]; !ok {
		t.Error("Expected load stage in metrics")
	}

	if _, ok := metrics.Stages["match"]; !ok {
		t.Error("Expected match stage in metrics")
	}

	loadStage := metrics.Stages["load"]
	if loadStage.Counters["files"] != 2 {
		t.Errorf("Expected files counter = 2, got %d", loadStage.Counters["files"])
	}

	matchStage := metrics.Stages["match"]
	if matchStage.Counters["matched"] != 480 {
		t.Errorf("Expected matched = 480, got %d", matchStage.Counters["matched"])
	}
}

func TestReporter(t *testing.T) {
	tmpDir := t.TempDir()

	reporter := NewReporter(tmpDir)

	c := NewCollector()
	c.SetConfig("radius", 2)
	c.StartStage("match")
	c.SetCounter("queries", 100)
	c.EndStage("match")
	metrics := c.Finalize(100, 95)

	if err := reporter.Write(metrics); err != nil {
		t.Fatalf("Failed to write metrics: %v", err)
	}

	latestPath := filepath.Join(tmpDir, "metrics", "latest.json")
	if _, err := os.Stat(latestPath); os.IsNotExist(err) {
		t.Error("Expected latest.json to exist")
	}

	historyPath := filepath.Join(tmpDir, "metrics", "history.jsonl")
	if _, err := os.Stat(historyPath); os.IsNotExist(err) {
		t.Error("Expected history.jsonl to exist")
	}

	last, err := reporter.GetLastRun()
	if err != nil {
		t.Fatalf("GetLastRun() error: %v", err)
	}
	if last == nil || last.RunID != metrics.RunID {
		t.Error("GetLastRun() did not return the written run")
	}
}

func TestCompareRuns(t *testing.T) {
	c1 := NewCollector()
	c1.StartStage("match")
	c1.EndStage("match")
	previous := c1.Finalize(100, 100)
	previous.Totals.DurationMs = 200
	previous.Totals.Throughput = 500

	c2 := NewCollector()
	current := c2.Finalize(150, 150)
	current.Totals.DurationMs = 100
	current.Totals.Throughput = 1500

	comparison := CompareRuns(current, previous)
	if comparison == nil {
		t.Fatal("CompareRuns returned nil")
	}
	if comparison.SpeedupFactor != 2 {
		t.Errorf("SpeedupFactor = %f, want 2", comparison.SpeedupFactor)
	}
	if comparison.QueriesDiff != 50 {
		t.Errorf("QueriesDiff = %d, want 50", comparison.QueriesDiff)
	}

	if CompareRuns(current, nil) != nil {
		t.Error("CompareRuns with nil previous should return nil")
	}

	if FormatComparison(nil) == "" {
		t.Error("FormatComparison(nil) should return a message")
	}
}
