package store

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/qbudget/qbudget/internal/engine"
	"github.com/qbudget/qbudget/internal/input"
	"github.com/qbudget/qbudget/internal/policy"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestRecordAndRecent(t *testing.T) {
	h := openTestHistory(t)

	res, err := engine.Run(input.Sample(), policy.Default())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := h.Record(res, "sales.csv"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}

	r := runs[0]
	if r.InputPath != "sales.csv" {
		t.Errorf("InputPath = %q, want sales.csv", r.InputPath)
	}
	if r.PeriodCount != 4 {
		t.Errorf("PeriodCount = %d, want 4", r.PeriodCount)
	}
	if math.Abs(r.TotalRevenue-1_000_000) > 1e-6 {
		t.Errorf("TotalRevenue = %v, want 1000000", r.TotalRevenue)
	}
	if r.Policy != policy.Default() {
		t.Errorf("round-tripped policy = %+v, want defaults", r.Policy)
	}
	if r.RunAt.IsZero() {
		t.Error("RunAt was not recorded")
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	h := openTestHistory(t)

	res, err := engine.Run(input.Sample(), policy.Default())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, path := range []string{"first.csv", "second.csv", "third.csv"} {
		if err := h.Record(res, path); err != nil {
			t.Fatalf("Record(%s): %v", path, err)
		}
	}

	runs, err := h.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].InputPath != "third.csv" || runs[1].InputPath != "second.csv" {
		t.Errorf("unexpected order: %q, %q", runs[0].InputPath, runs[1].InputPath)
	}
}

func TestCount(t *testing.T) {
	h := openTestHistory(t)

	n, err := h.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("empty db count = %d, want 0", n)
	}

	res, err := engine.Run(input.Sample(), policy.Default())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := h.Record(res, ""); err != nil {
		t.Fatalf("Record: %v", err)
	}

	n, err = h.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}
