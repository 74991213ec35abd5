// Where: cli/internal/infra/fileops/file_ops.go
// What: Filesystem helpers for writing generated artifacts.
// Why: Keep directory creation and stale-file cleanup consistent across commands.
package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile writes content, creating parent directories. An existing
// directory at path is an error rather than being replaced.
func WriteFile(path, content string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("cannot write %s: is a directory", path)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// RemoveFile deletes a regular file. A missing file is not an error.
// It reports whether a file was removed.
func RemoveFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("cannot remove %s: is a directory", path)
	}
	if err := os.Remove(path); err != nil {
		return false, err
	}
	return true, nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
