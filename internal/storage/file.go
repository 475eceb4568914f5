package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// FileStore keeps the highscore as a decimal integer in a text file.
type FileStore struct {
	path string
}

var _ tetris.HighscoreStore = (*FileStore)(nil)

// NewFileStore returns a store backed by path. A leading ~ is expanded.
func NewFileStore(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the highscore is kept in.
func (f *FileStore) Path() string {
	return f.path
}

// LoadHighscore reads the stored highscore. A missing file means 0.
func (f *FileStore) LoadHighscore() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read highscore: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt highscore file %s: %w", f.path, err)
	}
	return score, nil
}

// SaveHighscore overwrites the file with score.
func (f *FileStore) SaveHighscore(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	return nil
}
