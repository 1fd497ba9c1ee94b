package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("rocket", 42)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("rocket")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected persisted high score 42, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("rocket", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("rocket_despawn", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("rocket", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "rocket" {
			t.Errorf("scores[%d] game = %q", i, scores[i].GameID)
		}
	}

	other, err := store.TopScores("rocket_despawn", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 despawn score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit limit", 3, 3},
		{"limit above count", 50, 5},
		{"zero uses default", 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores("test", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tc.want {
				t.Errorf("Expected %d scores, got %d", tc.want, len(scores))
			}
			if scores[0].Score != 500 {
				t.Errorf("Expected top score 500, got %d", scores[0].Score)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rocket")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("rocket", 100)
	store.SaveScore("rocket", 300)
	store.SaveScore("rocket", 200)

	high, err = store.HighScore("rocket")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("rocket", 100)
	store.SaveScore("rocket", 200)
	store.SaveScore("rocket_despawn", 300)
	store.RecordResult(Run{GameID: "rocket"})
	store.RecordResult(Run{GameID: "rocket_despawn"})

	if err := store.ClearScores("rocket"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("rocket", 10); len(scores) != 0 {
		t.Errorf("Expected 0 rocket scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("rocket", 10); len(runs) != 0 {
		t.Errorf("Expected 0 rocket runs after clear, got %d", len(runs))
	}

	if scores, _ := store.TopScores("rocket_despawn", 10); len(scores) != 1 {
		t.Error("Other game scores should not be affected by clearing rocket")
	}
	if runs, _ := store.RecentRuns("rocket_despawn", 10); len(runs) != 1 {
		t.Error("Other game runs should not be affected by clearing rocket")
	}
}

func TestStoreRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := Run{
		GameID:     "rocket",
		Player:     "alice",
		Score:      123,
		Ticks:      2400,
		Elapsed:    12.34,
		Difficulty: 0.29,
		Obstacles:  17,
		Seed:       -987654321,
	}
	id, err := store.RecordResult(in)
	if err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive run ID, got %d", id)
	}

	runs, err := store.RecentRuns("rocket", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != id || got.Player != "alice" || got.Score != 123 || got.Ticks != 2400 ||
		got.Elapsed != 12.34 || got.Difficulty != 0.29 || got.Obstacles != 17 || got.Seed != -987654321 {
		t.Errorf("Run did not round-trip: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected creation time to be set")
	}
}

func TestStoreRecentRunsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	store.RecordResult(Run{GameID: "rocket", Score: 1})
	store.RecordResult(Run{GameID: "rocket_despawn", Score: 2})
	store.RecordResult(Run{GameID: "rocket", Score: 3})

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 runs across games, got %d", len(all))
	}
	// Same-second inserts fall back to newest ID first
	if all[0].Score != 3 || all[2].Score != 1 {
		t.Errorf("Runs not newest first: %+v", all)
	}

	rocket, err := store.RecentRuns("rocket", 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(rocket) != 1 || rocket[0].Score != 3 {
		t.Errorf("Expected only the newest rocket run, got %+v", rocket)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("rocket")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("rocket", 100)
	store.SaveScore("rocket", 300)

	stats, err := store.GetGameStats("rocket")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played time")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}

func TestStoreSchemaVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for i := range 2 {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i+1, err)
		}
		version, err := store.SchemaVersion()
		store.Close()
		if err != nil {
			t.Fatalf("SchemaVersion() failed: %v", err)
		}
		if version != len(migrations) {
			t.Errorf("open #%d: version = %d, expected %d", i+1, version, len(migrations))
		}
	}
}

func TestStoreRecordResult(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		wantScores int
	}{
		{"scoring run", 250, 1},
		{"zero score keeps only the run", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)

			id, err := store.RecordResult(Run{GameID: "rocket", Player: "bob", Score: tc.score, Seed: 7})
			if err != nil {
				t.Fatalf("RecordResult() failed: %v", err)
			}

			runs, err := store.RecentRuns("rocket", 10)
			if err != nil {
				t.Fatalf("RecentRuns() failed: %v", err)
			}
			if len(runs) != 1 || runs[0].ID != id || runs[0].Player != "bob" {
				t.Errorf("runs = %+v, expected one run with ID %d", runs, id)
			}

			scores, err := store.TopScores("rocket", 10)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tc.wantScores {
				t.Errorf("got %d scores, expected %d", len(scores), tc.wantScores)
			}
		})
	}
}
