package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell helpers for fixed-width columns. Widths are terminal display
// cells, not runes or bytes: scan data carries accented Spanish strings
// ("Análisis en proceso...") whose byte and rune counts disagree with
// their printed width.

// truncate shortens a string to the given display width, appending an
// ellipsis when it does not fit.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 1 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "…")
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(s, width)
}

// padLeft right-aligns a string within the given display width.
func padLeft(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillLeft(s, width)
}

// cell truncates and pads a value into exactly width display cells.
func cell(value string, width int) string {
	return padRight(truncate(value, width), width)
}
