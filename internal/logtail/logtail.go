package logtail

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// tailWindow bounds how much of the file one Tail call reads. The poll
// log grows a line at a time, so the last lines always fit in one window.
const tailWindow = 256 * 1024

// Tail returns at most max lines from the end of the file at path. A
// missing file is an empty log, not an error.
func Tail(path string, max int) ([]string, error) {
	if max <= 0 {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	var offset int64
	truncated := false
	if info.Size() > tailWindow {
		offset = info.Size() - tailWindow
		truncated = true
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek log: %w", err)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	if truncated && len(lines) > 0 {
		// The window usually starts mid-line; drop the fragment.
		lines = lines[1:]
	}
	if len(lines) > max {
		lines = lines[len(lines)-max:]
	}
	return lines, nil
}

// IsFailure reports whether a diagnostic line records a failed operation.
func IsFailure(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "failed") || strings.Contains(lower, "error")
}
