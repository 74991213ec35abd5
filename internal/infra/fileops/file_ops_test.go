package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".github", "workflows", "build.yml")
	if err := WriteFile(path, "name: build\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "name: build\n" {
		t.Fatalf("unexpected content %q", data)
	}
	if !FileExists(path) || !DirExists(filepath.Dir(path)) {
		t.Fatalf("expected file and parent directory to exist")
	}
}

func TestWriteFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFile(dir, "x"); err == nil {
		t.Fatalf("expected error when writing over a directory")
	}
}

func TestRemoveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	removed, err := RemoveFile(path)
	if err != nil || removed {
		t.Fatalf("missing file: removed=%v err=%v", removed, err)
	}

	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	removed, err = RemoveFile(path)
	if err != nil || !removed {
		t.Fatalf("existing file: removed=%v err=%v", removed, err)
	}
	if FileExists(path) {
		t.Fatalf("expected file to be removed")
	}

	if _, err := RemoveFile(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory")
	}
}
