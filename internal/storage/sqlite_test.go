package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveGame(GameRecord{Score: 4, Reason: "timeout"}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 || games[0].Score != 4 {
		t.Errorf("games after reopen = %+v, want one game with score 4", games)
	}
}

func TestStoreSaveGame(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.SaveGame(GameRecord{
		Score:    7,
		Reason:   "mismatch",
		Duration: 42500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if rec.ID == 0 {
		t.Error("SaveGame() should set ID")
	}
	if len(rec.RecordID) != 36 {
		t.Errorf("RecordID = %q, want a UUID", rec.RecordID)
	}

	got, err := store.GameByRecordID(rec.RecordID)
	if err != nil {
		t.Fatalf("GameByRecordID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved game not found")
	}
	if got.Score != 7 || got.Reason != "mismatch" || got.Duration != 42500*time.Millisecond {
		t.Errorf("loaded game = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be stamped by the database")
	}

	missing, err := store.GameByRecordID("no-such-id")
	if err != nil {
		t.Fatalf("GameByRecordID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown record, got %+v", missing)
	}
}

func TestStoreTopGames(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 9, 1, 9, 5} {
		if _, err := store.SaveGame(GameRecord{Score: score, Reason: "timeout"}); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("Expected 3 games with limit, got %d", len(games))
	}

	want := []int{9, 9, 5}
	for i, g := range games {
		if g.Score != want[i] {
			t.Errorf("games[%d].Score = %d, want %d", i, g.Score, want[i])
		}
	}
	if games[0].ID > games[1].ID {
		t.Error("ties should list the earlier game first")
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.SaveGame(GameRecord{
			Score:     i,
			Reason:    "mismatch",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := store.RecentGames(2)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(games))
	}
	if games[0].Score != 4 || games[1].Score != 3 {
		t.Errorf("recent order = %d, %d; want 4, 3", games[0].Score, games[1].Score)
	}
	if !games[0].CreatedAt.Equal(base.Add(4 * time.Hour)) {
		t.Errorf("CreatedAt = %v, want %v", games[0].CreatedAt, base.Add(4*time.Hour))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveGame(GameRecord{Score: 2, Reason: "timeout"})
	store.SaveGame(GameRecord{Score: 6, Reason: "mismatch"})
	store.SaveGame(GameRecord{Score: 4, Reason: "mismatch"})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.BestScore != 6 {
		t.Errorf("BestScore = %d, want 6", stats.BestScore)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, want 4", stats.AvgScore)
	}
	if stats.Timeouts != 1 || stats.Mismatches != 2 {
		t.Errorf("reasons = %d timeouts, %d mismatches; want 1, 2", stats.Timeouts, stats.Mismatches)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearGames(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(GameRecord{Score: 1, Reason: "timeout"})
	store.SaveGame(GameRecord{Score: 2, Reason: "timeout"})

	if err := store.ClearGames(); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	games, _ := store.RecentGames(10)
	if len(games) != 0 {
		t.Errorf("Expected 0 games after clear, got %d", len(games))
	}
}
