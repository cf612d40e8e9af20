package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/history"
	"github.com/nguyentantai21042004/transcript-flow/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Watch = filepath.Join(root, "input")
	cfg.Paths.Processed = filepath.Join(root, "processed")
	cfg.Paths.Output = filepath.Join(root, "output")
	cfg.Paths.History = filepath.Join(root, "data", "history.db")
	cfg.Summary.MaxSentences = 2
	cfg.Watch.SettleDelay = 0
	cfg.Logging.Level = "error"
	return cfg
}

func TestLoadConfigMissingDefaultFallsBack(t *testing.T) {
	cmd := newRootCommand()
	cfg, err := loadConfig(cmd, filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Paths.Watch != "input" || cfg.Summary.MaxSentences != 5 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigMissingExplicitFails(t *testing.T) {
	cmd := newRootCommand()
	missing := filepath.Join(t.TempDir(), "custom.yaml")
	if err := cmd.PersistentFlags().Set("config", missing); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(cmd, missing); err == nil {
		t.Error("loadConfig() should fail for an explicitly named missing file")
	}
}

func TestBuildProcessorRejectsEmptyKeywords(t *testing.T) {
	cfg := testConfig(t)
	cfg.Actions.Keywords = []string{}
	if _, err := buildProcessor(cfg, nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("buildProcessor() error = %v, want ErrInvalid", err)
	}
}

func TestRunProcess(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}

	input := filepath.Join(cfg.Paths.Watch, "meeting1.txt")
	text := "09:01:05 Alice: We should review the budget. 09:01:10 Bob: I will follow up with finance by Friday. This is just background context. More background."
	if err := os.WriteFile(input, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runProcess(context.Background(), cfg, []string{input}); err != nil {
		t.Fatalf("runProcess() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "meeting1_summary.json"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	var record models.OutputRecord
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatal(err)
	}
	if len(record.SummaryPoints) != 2 || time.Since(record.GeneratedAt) > time.Hour {
		t.Errorf("record = %+v", record)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Processed, "meeting1.txt")); err != nil {
		t.Errorf("input not relocated: %v", err)
	}

	store, err := history.Open(cfg.Paths.History)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	entries, err := store.Recent(context.Background(), 5)
	if err != nil || len(entries) != 1 || entries[0].Outcome != "processed" {
		t.Errorf("history = %+v, err = %v", entries, err)
	}

	out := renderHistory(entries)
	if !strings.Contains(out, "meeting1.txt") || !strings.Contains(out, "processed") {
		t.Errorf("renderHistory() missing row:\n%s", out)
	}
}

func TestRunProcessReportsFailures(t *testing.T) {
	cfg := testConfig(t)
	cfg.Paths.History = ""
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(cfg.Paths.Watch, "bad.txt")
	if err := os.WriteFile(bad, []byte{0xff, 0xfe}, 0644); err != nil {
		t.Fatal(err)
	}

	if err := runProcess(context.Background(), cfg, []string{bad}); err == nil {
		t.Error("runProcess() should report the failed transcript")
	}
	if _, err := os.Stat(bad); err != nil {
		t.Errorf("failed transcript should stay in place: %v", err)
	}
}

func TestAcquireLockIsExclusive(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}

	first, err := acquireLock(cfg)
	if err != nil {
		t.Fatalf("first acquireLock() error = %v", err)
	}
	defer first.Unlock()

	if _, err := acquireLock(cfg); err == nil {
		t.Error("second acquireLock() should fail while the first is held")
	}
}

func TestAcquireLockStaysOutOfPipelineDirs(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}

	lock, err := acquireLock(cfg)
	if err != nil {
		t.Fatalf("acquireLock() error = %v", err)
	}
	defer lock.Unlock()

	for _, dir := range []string{cfg.Paths.Watch, cfg.Paths.Processed, cfg.Paths.Output} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("%s contains %d entries after acquireLock, want none", dir, len(entries))
		}
	}

	want := filepath.Join(filepath.Dir(cfg.Paths.Watch), ".input.transcript-flow.lock")
	if lock.Path() != want {
		t.Errorf("lock path = %s, want %s", lock.Path(), want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("lock file missing: %v", err)
	}
}
