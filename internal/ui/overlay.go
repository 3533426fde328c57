package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// overlayOrigin returns the top-left cell of a box centered on the
// terminal.
func overlayOrigin(boxW, boxH, termW, termH int) (x, y int) {
	x = (termW - boxW) / 2
	if x < 0 {
		x = 0
	}
	y = (termH - boxH) / 2
	if y < 0 {
		y = 0
	}
	return x, y
}

// boundsOf returns the screen rectangle the box occupies when overlaid.
func (m Model) boundsOf(box string) (x, y, w, h int) {
	w = lipgloss.Width(box)
	h = lipgloss.Height(box)
	x, y = overlayOrigin(w, h, m.width, m.height)
	return x, y, w, h
}

// insideBox reports whether a screen cell falls inside the overlaid box.
func (m Model) insideBox(box string, cellX, cellY int) bool {
	x, y, w, h := m.boundsOf(box)
	return cellX >= x && cellX < x+w && cellY >= y && cellY < y+h
}

// overlay centers a box on a backdrop filling the terminal. The same
// bounds math drives rendering and backdrop click detection, so a click
// lands exactly where the box is drawn.
func (m Model) overlay(box string) string {
	x, y, _, h := m.boundsOf(box)
	backdrop := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Background))

	blank := backdrop.Render(strings.Repeat(" ", m.width))
	boxLines := strings.Split(box, "\n")

	lines := make([]string, 0, m.height)
	for row := 0; row < m.height; row++ {
		if row < y || row >= y+h {
			lines = append(lines, blank)
			continue
		}
		line := boxLines[row-y]
		if x > 0 {
			line = backdrop.Render(strings.Repeat(" ", x)) + line
		}
		if pad := m.width - x - lipgloss.Width(boxLines[row-y]); pad > 0 {
			line += backdrop.Render(strings.Repeat(" ", pad))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
