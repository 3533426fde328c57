package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atalayahq/atalaya/internal/scanner"
)

// scanFilter selects which scan endpoint and score threshold the result
// grid is fed from. The zero value means the full universe with no
// minimum score.
type scanFilter struct {
	darwinex bool
	minScore int
}

// presetScores are the thresholds the quick-cycle key steps through
// before wrapping to the Darwinex universe.
var presetScores = []int{0, 50, 75, 90}

// next returns the following preset in the cycle. Custom thresholds set
// through the manual input fall back to the start of the cycle.
func (f scanFilter) next() scanFilter {
	if f.darwinex {
		return scanFilter{}
	}
	for i, score := range presetScores {
		if f.minScore == score {
			if i == len(presetScores)-1 {
				return scanFilter{darwinex: true}
			}
			return scanFilter{minScore: presetScores[i+1]}
		}
	}
	return scanFilter{}
}

// label renders the filter for the status header.
func (f scanFilter) label() string {
	if f.darwinex {
		return "Darwinex"
	}
	if f.minScore == 0 {
		return "Todos"
	}
	return strconv.Itoa(f.minScore) + "+"
}

// encode serializes the filter for the preferences file.
func (f scanFilter) encode() string {
	if f.darwinex {
		return "darwinex"
	}
	return strconv.Itoa(f.minScore)
}

// parseFilter restores a filter from its preference encoding. Unknown
// or out-of-range values yield the zero filter.
func parseFilter(s string) scanFilter {
	if s == "darwinex" {
		return scanFilter{darwinex: true}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return scanFilter{}
	}
	return scanFilter{minScore: n}
}

// request translates the filter into scan request parameters.
func (f scanFilter) request() scanner.ScanFilter {
	return scanner.ScanFilter{Darwinex: f.darwinex, MinScore: f.minScore}
}

// Custom threshold prompt

// openFilterPrompt shows the threshold input prefilled with the current
// numeric value.
func (m *Model) openFilterPrompt() {
	m.showFilterInput = true
	m.filterErr = ""
	if m.filter.darwinex {
		m.filterInput.SetValue("")
	} else {
		m.filterInput.SetValue(strconv.Itoa(m.filter.minScore))
	}
	m.filterInput.CursorEnd()
	m.filterInput.Focus()
}

func (m *Model) closeFilterPrompt() {
	m.showFilterInput = false
	m.filterErr = ""
	m.filterInput.Blur()
}

// handleFilterInputKey processes keys while the threshold prompt is
// open. Enter validates and applies; esc cancels without touching the
// active filter.
func (m Model) handleFilterInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeFilterPrompt()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.filterInput.Value())
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 100 {
			m.filterErr = "Introduce un número entre 0 y 100"
			return m, nil
		}
		m.closeFilterPrompt()
		cmd := m.handleFilterChange(scanFilter{minScore: n})
		return m, cmd
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// renderFilterBox renders the centered threshold input box.
func (m Model) renderFilterBox() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Score mínimo"))
	b.WriteString("\n\n")
	b.WriteString(m.filterInput.View())
	b.WriteString("\n")
	if m.filterErr != "" {
		b.WriteString(styles.DangerText.Render(m.filterErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter: aplicar • esc: cancelar"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(filterModalWidth).
		Render(b.String())
}
