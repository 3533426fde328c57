// Package logtail reads the tail of the atalaya diagnostic log.
//
// # Overview
//
// While the alternate screen is active the TUI cannot write diagnostics
// to the terminal, so the status poller logs to a file instead. This
// package reads that file back for the in-app log overlay.
//
// # Reading
//
// Tail returns the last N lines of the file. It reads a bounded window
// from the end of the file rather than scanning from the start, so the
// cost of one call stays flat as the log grows. A missing file reads as
// an empty log: the overlay renders a placeholder, not an error.
//
// Example usage:
//
//	lines, err := logtail.Tail("~/.config/atalaya/atalaya.log", 200)
//	if err != nil {
//		// file exists but could not be read
//	}
//
// # Classification
//
// IsFailure flags lines that record failed operations so the overlay can
// highlight them. It matches on message text rather than a level prefix
// because the standard log package writes none.
//
// # Design Rationale
//
// This package is intentionally simple and focused:
//   - No streaming or file watching (the overlay re-reads on the UI tick)
//   - No log rotation handling (reads current file only)
//   - No styling (the UI owns themes and colors)
//
// The separation keeps each layer on its core responsibility: logtail
// reads and classifies, the UI renders, the poller writes.
package logtail
