// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"strings"
)

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadText loads the whole file as text. Every line, including the last one,
// gets a trailing newline appended: a file without a final newline still
// yields one, and a file with a final newline gains a closing blank line.
// Character counting downstream compensates for the extra byte.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var b strings.Builder
	b.Grow(len(data) + 1)
	for _, line := range strings.Split(string(data), "\n") {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// WriteText replaces the contents of path with content, creating the file
// if needed.
func WriteText(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Size returns the byte size of the file at path.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Size(), nil
}
