package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	results := []watcher.Result{
		{
			RunID:         "run-1",
			Path:          "/in/a.txt",
			OutputPath:    "/out/a_summary.json",
			ProcessedPath: "/done/a.txt",
			Outcome:       watcher.OutcomeProcessed,
			SummaryPoints: 3,
			Actions:       1,
			StartedAt:     base,
			FinishedAt:    base.Add(time.Second),
		},
		{
			RunID:      "run-2",
			Path:       "/in/b.txt",
			OutputPath: "/out/b_summary.json",
			Outcome:    watcher.OutcomeFailed,
			Err:        errors.New("transcript is not valid UTF-8"),
			StartedAt:  base.Add(2 * time.Second),
			FinishedAt: base.Add(3 * time.Second),
		},
	}
	for _, r := range results {
		if err := store.Record(ctx, r); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	newest := entries[0]
	if newest.ID != "run-2" || newest.File != "b.txt" || newest.Outcome != "failed" {
		t.Errorf("newest = %+v", newest)
	}
	if newest.Error != "transcript is not valid UTF-8" {
		t.Errorf("Error = %q", newest.Error)
	}
	if !entries[1].FinishedAt.Equal(base.Add(time.Second)) {
		t.Errorf("FinishedAt = %v", entries[1].FinishedAt)
	}
	if entries[1].SummaryPoints != 3 || entries[1].Actions != 1 {
		t.Errorf("counts = %d/%d", entries[1].SummaryPoints, entries[1].Actions)
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for i, id := range []string{"a", "b", "c"} {
		r := watcher.Result{
			RunID:      id,
			Path:       id + ".txt",
			Outcome:    watcher.OutcomeProcessed,
			StartedAt:  now,
			FinishedAt: now.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Record(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].ID != "c" || entries[1].ID != "b" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRecordDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	r := watcher.Result{RunID: "same", Path: "x.txt", Outcome: watcher.OutcomeProcessed, StartedAt: time.Now(), FinishedAt: time.Now()}
	if err := store.Record(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(context.Background(), r); err == nil {
		t.Error("duplicate run id should fail")
	}
}

func TestReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	r := watcher.Result{RunID: "keep", Path: "k.txt", Outcome: watcher.OutcomeProcessed, StartedAt: time.Now(), FinishedAt: time.Now()}
	if err := store.Record(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	_ = store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	entries, err := store.Recent(context.Background(), 5)
	if err != nil || len(entries) != 1 {
		t.Errorf("entries = %v, err = %v", entries, err)
	}
}
