package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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

	for _, e := range []ScoreEntry{
		{Player: "local", RunID: "a", Score: 100, Length: 13},
		{Player: "local", RunID: "b", Score: 50, Length: 8},
		{Player: "alice", RunID: "c", Score: 200, Length: 23},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "alice" || scores[0].RunID != "c" || scores[0].Length != 23 {
		t.Errorf("Top entry fields not stored: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{Player: "local", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveScore(ScoreEntry{Player: "local", Score: 100})
	store.SaveScore(ScoreEntry{Player: "bob", Score: 300})
	store.SaveScore(ScoreEntry{Player: "local", Score: 200})

	tests := []struct {
		player string
		want   int
	}{
		{"", 300},
		{"local", 200},
		{"bob", 300},
		{"nobody", 0},
	}
	for _, tc := range tests {
		high, err := store.HighScore(tc.player)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tc.player, err)
		}
		if high != tc.want {
			t.Errorf("HighScore(%q) = %d, expected %d", tc.player, high, tc.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Player: "local", Score: 100})
	store.SaveScore(ScoreEntry{Player: "local", Score: 200})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreStates(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.ReadState("alice"); !errors.Is(err, ErrNoState) {
		t.Errorf("ReadState() on empty store = %v, expected ErrNoState", err)
	}

	if err := store.WriteState("alice", []byte("first")); err != nil {
		t.Fatalf("WriteState() failed: %v", err)
	}
	if err := store.WriteState("alice", []byte("second")); err != nil {
		t.Fatalf("WriteState() overwrite failed: %v", err)
	}
	if err := store.WriteState("bob", []byte("other")); err != nil {
		t.Fatalf("WriteState() failed: %v", err)
	}

	data, err := store.ReadState("alice")
	if err != nil {
		t.Fatalf("ReadState() failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("ReadState() = %q, expected the latest write", data)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
