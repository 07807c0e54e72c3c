package collector

import (
	"errors"
	"testing"

	"TrendSentinel/internal/model"
)

// captureRecorder remembers what was archived and optionally fails.
type captureRecorder struct {
	symbols []string
	count   int
	err     error
}

func (c *captureRecorder) RecordBars(symbol string, bars []model.Bar) error {
	if c.err != nil {
		return c.err
	}
	c.symbols = append(c.symbols, symbol)
	c.count += len(bars)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func TestCollect_ArchivesFetchedBars(t *testing.T) {
	rec := &captureRecorder{}
	col := NewCollector(&MockFetcher{Price: 100}, rec)

	window, err := col.Collect("AAPL", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(window) != 30 {
		t.Errorf("expected 30 bars, got %d", len(window))
	}
	if len(rec.symbols) != 1 || rec.symbols[0] != "AAPL" || rec.count != 30 {
		t.Errorf("bars not archived: %+v", rec)
	}
}

func TestCollect_EmptyWindowSkipsArchive(t *testing.T) {
	rec := &captureRecorder{}
	col := NewCollector(&MockFetcher{Bars: map[string][]model.Bar{}}, rec)

	window, err := col.Collect("NOPE", 30)
	if err != nil {
		t.Fatalf("empty fetch is not an error: %v", err)
	}
	if len(window) != 0 {
		t.Errorf("expected empty window, got %d bars", len(window))
	}
	if len(rec.symbols) != 0 {
		t.Error("nothing should be archived for an empty window")
	}
}

func TestCollect_ArchiveFailureIsNotFatal(t *testing.T) {
	rec := &captureRecorder{err: errors.New("disk full")}
	col := NewCollector(&MockFetcher{Price: 100}, rec)

	window, err := col.Collect("AAPL", 10)
	if err != nil {
		t.Fatalf("archive failure must not fail the collect: %v", err)
	}
	if len(window) != 10 {
		t.Errorf("expected 10 bars, got %d", len(window))
	}
}

func TestGenerateMockBars_Chronological(t *testing.T) {
	bars := GenerateMockBars(100, 20)
	for i := 1; i < len(bars); i++ {
		if !bars[i-1].Date.Before(bars[i].Date) {
			t.Fatalf("bars out of order at %d", i)
		}
	}
}
