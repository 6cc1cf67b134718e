package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrIsDir is returned by ResolveFile when the path names a directory.
var ErrIsDir = errors.New("path is a directory")

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// ResolveFile expands '~', makes path absolute and checks that it names an
// existing regular file.
func ResolveFile(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	p, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("not found: %s", abs)
		}
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s: %w", abs, ErrIsDir)
	}
	return abs, nil
}
