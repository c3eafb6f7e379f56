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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("invaders", 100, OutcomeLoss, 1200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("invaders", 50, OutcomeLoss, 400); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("invaders", 550, OutcomeWin, 5400); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 550 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Outcome != OutcomeWin {
		t.Errorf("Expected top score outcome %q, got %q", OutcomeWin, scores[0].Outcome)
	}
	if scores[0].Ticks != 5400 {
		t.Errorf("Expected top score ticks 5400, got %d", scores[0].Ticks)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("invaders", (i+1)*100, OutcomeLoss, int64(i*60))
	}

	scores, err := store.TopScores("invaders", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("invaders", 100, OutcomeLoss, 100)
	store.SaveScore("invaders", 300, OutcomeLoss, 900)
	store.SaveScore("invaders", 200, OutcomeLoss, 500)

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 100, OutcomeLoss, 100)
	store.SaveScore("invaders", 200, OutcomeLoss, 200)
	store.SaveScore("other", 300, OutcomeWin, 300)

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("invaders", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other games should be untouched
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Clearing one game should not affect another")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("invaders", i*10, OutcomeLoss, int64(i))
	}

	scores, err := store.AllScores("invaders")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	// Empty game returns zeroed stats, not an error
	stats, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected zeroed stats for empty game, got %+v", stats)
	}

	store.SaveScore("invaders", 100, OutcomeLoss, 600)
	store.SaveScore("invaders", 550, OutcomeWin, 5400)
	store.SaveScore("invaders", 250, OutcomeLoss, 2000)

	stats, err = store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Expected 1 win, got %d", stats.Wins)
	}
	if stats.HighScore != 550 {
		t.Errorf("Expected high score 550, got %d", stats.HighScore)
	}
	if stats.TotalScore != 900 {
		t.Errorf("Expected total score 900, got %d", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
