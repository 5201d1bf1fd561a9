package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/grid"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func testConfig() snake.Config {
	return snake.Config{Width: 12, Height: 10, Seed: 7}
}

func TestAppInfoDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	dir, err := AppInfo{Name: "snake", Author: "onasauri"}.Dir()
	if err != nil {
		t.Fatalf("Dir() failed: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join("onasauri", "snake")) {
		t.Errorf("Dir() = %q, expected it to end in onasauri/snake", dir)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "app")
	fs := NewFileStore(dir)

	if _, err := fs.ReadState("state"); !errors.Is(err, ErrNoState) {
		t.Errorf("ReadState() before any write = %v, expected ErrNoState", err)
	}

	if err := fs.WriteState("state", []byte("v1")); err != nil {
		t.Fatalf("WriteState() failed: %v", err)
	}
	if err := fs.WriteState("state", []byte("v2")); err != nil {
		t.Fatalf("WriteState() failed: %v", err)
	}

	data, err := fs.ReadState("state")
	if err != nil {
		t.Fatalf("ReadState() failed: %v", err)
	}
	if string(data) != "v2" {
		t.Errorf("ReadState() = %q, expected v2", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "state.yaml" {
		t.Errorf("expected only state.yaml in %s, found %v", dir, entries)
	}
}

func TestLoadGameMissing(t *testing.T) {
	var buf bytes.Buffer
	g := LoadGame(NewFileStore(t.TempDir()), "state", testConfig(), testLogger(&buf))

	if !g.SnakeAlive() || g.Score() != 0 || g.Highscore() != 0 {
		t.Errorf("expected a fresh game, got alive=%v score=%d high=%d", g.SnakeAlive(), g.Score(), g.Highscore())
	}
	if w, h := g.LevelSize(); w != 12 || h != 10 {
		t.Errorf("LevelSize() = %dx%d", w, h)
	}
}

func TestSaveAndLoadGame(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFileStore(t.TempDir())

	g, err := snake.NewWithConfig(testConfig(), 40)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	g.Update(grid.Down)
	g.Update(grid.None)

	if err := SaveGame(fs, "state", g); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	loaded := LoadGame(fs, "state", testConfig(), testLogger(&buf))
	if loaded.Head() != g.Head() || loaded.Tail() != g.Tail() || loaded.Heading() != g.Heading() {
		t.Error("restored snake differs from the saved one")
	}
	if loaded.Highscore() != 40 || loaded.Score() != g.Score() {
		t.Errorf("restored scores %d/%d, expected %d/40", loaded.Score(), loaded.Highscore(), g.Score())
	}
	if !loaded.Tiles().Clone().Equal(g.Tiles().Clone()) {
		t.Error("restored board differs")
	}
}

func TestLoadGameCorrupt(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFileStore(t.TempDir())
	if err := fs.WriteState("state", []byte("width: [oops")); err != nil {
		t.Fatalf("WriteState() failed: %v", err)
	}

	g := LoadGame(fs, "state", testConfig(), testLogger(&buf))
	if !g.SnakeAlive() || g.Highscore() != 0 {
		t.Error("corrupt state should give a fresh game")
	}
	if !strings.Contains(buf.String(), "corrupt") {
		t.Errorf("expected a warning in the log, got %q", buf.String())
	}
}

type failingStore struct{}

func (failingStore) ReadState(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingStore) WriteState(string, []byte) error  { return errors.New("disk on fire") }

func TestLoadGameUnreadable(t *testing.T) {
	var buf bytes.Buffer
	g := LoadGame(failingStore{}, "state", testConfig(), testLogger(&buf))
	if g == nil || !g.SnakeAlive() {
		t.Fatal("unreadable state should give a fresh game")
	}
	if !strings.Contains(buf.String(), "disk on fire") {
		t.Errorf("expected the read error in the log, got %q", buf.String())
	}

	if err := SaveGame(failingStore{}, "state", g); err == nil {
		t.Error("SaveGame() should surface write errors")
	}
}

func TestLoadGameSizeChanged(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFileStore(t.TempDir())

	old, err := snake.NewWithConfig(snake.Config{Width: 20, Height: 20, Seed: 3}, 90)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	if err := SaveGame(fs, "state", old); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	g := LoadGame(fs, "state", testConfig(), testLogger(&buf))
	if w, h := g.LevelSize(); w != 12 || h != 10 {
		t.Errorf("LevelSize() = %dx%d, expected the configured 12x10", w, h)
	}
	if g.Highscore() != 90 {
		t.Errorf("Highscore() = %d, expected the saved 90", g.Highscore())
	}
}

func TestSQLiteStateStore(t *testing.T) {
	var buf bytes.Buffer
	store := openTestStore(t)

	g, err := snake.NewWithConfig(testConfig(), 10)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	g.Update(grid.Down)

	if err := SaveGame(store, "alice", g); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	loaded := LoadGame(store, "alice", testConfig(), testLogger(&buf))
	if loaded.Head() != g.Head() || loaded.Highscore() != 10 {
		t.Error("state did not round trip through SQLite")
	}

	other := LoadGame(store, "bob", testConfig(), testLogger(&buf))
	if other.Highscore() != 0 || other.Head() != (grid.Index{Row: 3, Col: 5}) {
		t.Error("unknown key should give a fresh game")
	}
}
