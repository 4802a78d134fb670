package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"TrendScout/internal/collector"
	"TrendScout/internal/recorder"
)

func TestRunCycle_LogsAndRecords(t *testing.T) {
	dir := t.TempDir()
	logSink, err := recorder.NewLogSink(filepath.Join(dir, "log.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer logSink.Close()
	errSink := recorder.NewErrorSink(filepath.Join(dir, "errors.txt"))

	col := collector.NewCollector(&collector.MockFetcher{Price: 100}, 60, nil)
	s := NewScheduler(context.Background(), col, recorder.NewNoopRecorder(), logSink, errSink, []string{"GME", "AMC"})

	s.RunCycle()

	data, err := os.ReadFile(filepath.Join(dir, "log.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus one row per ticker.
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d:\n%s", len(lines), string(data))
	}
	got := strings.Join(lines[1:], "\n")
	if !strings.Contains(got, "GME") || !strings.Contains(got, "AMC") {
		t.Errorf("expected rows for both tickers:\n%s", got)
	}
}

func TestRunCycle_CancelledContextSkipsWork(t *testing.T) {
	dir := t.TempDir()
	logSink, err := recorder.NewLogSink(filepath.Join(dir, "log.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer logSink.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	col := collector.NewCollector(&collector.MockFetcher{Price: 100}, 60, nil)
	s := NewScheduler(ctx, col, recorder.NewNoopRecorder(), logSink, recorder.NewErrorSink(filepath.Join(dir, "errors.txt")), []string{"GME"})

	s.RunCycle()

	data, err := os.ReadFile(filepath.Join(dir, "log.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Errorf("expected only the header after cancelled cycle, got %d lines", len(lines))
	}
}
