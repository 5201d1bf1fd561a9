package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrNoState is returned when no state has been saved under a key.
var ErrNoState = errors.New("storage: no saved state")

// StateStore is a medium for serialized game states.
type StateStore interface {
	ReadState(key string) ([]byte, error)
	WriteState(key string, data []byte) error
}

// AppInfo identifies the application owning the state directory.
type AppInfo struct {
	Name   string
	Author string
}

// Dir returns <user config dir>/<author>/<name>.
func (a AppInfo) Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot locate config directory: %w", err)
	}
	return filepath.Join(base, a.Author, a.Name), nil
}

// FileStore keeps each state in <dir>/<key>.yaml.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// OpenAppStore returns the FileStore for app.
func OpenAppStore(app AppInfo) (*FileStore, error) {
	dir, err := app.Dir()
	if err != nil {
		return nil, err
	}
	return NewFileStore(dir), nil
}

// Path returns the file used for key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.dir, key+".yaml")
}

// ReadState reads the file for key. A missing file yields ErrNoState.
func (f *FileStore) ReadState(key string) ([]byte, error) {
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", f.Path(key), err)
	}
	return data, nil
}

// WriteState replaces the file for key. The data is written to a temporary
// file first so an interrupted write leaves the previous state intact.
func (f *FileStore) WriteState(key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", f.dir, err)
	}
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.Path(key)); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.Path(key), err)
	}
	return nil
}

var _ StateStore = (*FileStore)(nil)

// LoadGame restores the game saved under key.
//
// It never fails: a missing state starts a fresh game with no high score,
// an unreadable or corrupt one is logged and replaced by a fresh game, and a
// saved game of a different size than cfg is replaced by a fresh game that
// keeps the saved high score. cfg must be valid.
func LoadGame(src StateStore, key string, cfg snake.Config, logger *log.Logger) *snake.GameState {
	fresh := func(highscore int) *snake.GameState {
		g, err := snake.NewWithConfig(cfg, highscore)
		if err != nil {
			panic(fmt.Sprintf("storage: invalid engine config: %v", err))
		}
		return g
	}

	data, err := src.ReadState(key)
	if errors.Is(err, ErrNoState) {
		return fresh(0)
	}
	if err != nil {
		logger.Warn("could not read saved game, starting fresh", "key", key, "error", err)
		return fresh(0)
	}

	g, err := snake.Unmarshal(data, cfg)
	if err != nil {
		logger.Warn("saved game is corrupt, starting fresh", "key", key, "error", err)
		return fresh(0)
	}

	if w, h := g.LevelSize(); w != cfg.Width || h != cfg.Height {
		logger.Info("level size changed, starting fresh",
			"saved", fmt.Sprintf("%dx%d", w, h),
			"configured", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		)
		return fresh(g.Highscore())
	}

	logger.Debug("restored saved game", "key", key, "score", g.Score(), "alive", g.SnakeAlive())
	return g
}

// SaveGame writes the full game snapshot under key.
func SaveGame(dst StateStore, key string, g *snake.GameState) error {
	data, err := snake.Marshal(g)
	if err != nil {
		return err
	}
	return dst.WriteState(key, data)
}
