package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	hs, err := store.LoadHighscore()
	if err != nil {
		t.Fatalf("LoadHighscore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for missing file, got %d", hs)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.txt")
	store, _ := NewFileStore(path)

	if err := store.SaveHighscore(1200); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("highscore file not written: %v", err)
	}
	if strings.TrimSpace(string(data)) != "1200" {
		t.Errorf("Unexpected file contents %q", data)
	}

	hs, err := store.LoadHighscore()
	if err != nil {
		t.Fatalf("LoadHighscore() failed: %v", err)
	}
	if hs != 1200 {
		t.Errorf("Expected 1200, got %d", hs)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, _ := NewFileStore(path)

	if _, err := store.LoadHighscore(); err == nil {
		t.Error("Expected an error for a corrupt file")
	}
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	store, _ := NewFileStore(path)

	hs, err := store.LoadHighscore()
	if err != nil || hs != 0 {
		t.Errorf("LoadHighscore() = %d, %v; want 0, nil", hs, err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.tetris/highscore.txt")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".tetris", "highscore.txt"); got != want {
		t.Errorf("expandHome() = %q, want %q", got, want)
	}

	if got, _ := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed to %q", got)
	}
}
