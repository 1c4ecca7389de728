package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes data to a file, creating directories as needed.
// An existing file at path is replaced.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, perm)
}

// EnsureExtension appends ext to path unless path already ends with it
func EnsureExtension(path, ext string) string {
	if ext == "" || strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}

// IsRegularFile reports whether path, after following symlinks, is a regular file
func IsRegularFile(path string) (os.FileInfo, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	return info, info.Mode().IsRegular()
}
