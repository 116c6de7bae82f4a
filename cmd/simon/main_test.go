package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecuteClosesLogOnFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, "simon.log")

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	// the store cannot be created below a regular file
	err := execute([]string{
		"scores",
		"--db", filepath.Join(blocker, "history.db"),
		"--log-file", logPath,
	})
	if err == nil {
		t.Fatal("expected scores to fail")
	}
	if logFile != nil {
		t.Error("log file should be closed after a failed command")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "command failed") {
		t.Errorf("log should record the failure, got:\n%s", data)
	}
}

func TestGameSeed(t *testing.T) {
	tests := []struct {
		base   int64
		played int
		want   int64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{42, 0, 42},
		{42, 1, 43},
		{42, 3, 45},
	}
	for _, tt := range tests {
		if got := gameSeed(tt.base, tt.played); got != tt.want {
			t.Errorf("gameSeed(%d, %d) = %d, want %d", tt.base, tt.played, got, tt.want)
		}
	}
}
