package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atalayahq/atalaya/internal/logtail"
)

// logTailLines is how many diagnostic lines the overlay keeps on hand.
const logTailLines = 200

// stampLen is the width of the standard log package's date-time prefix.
const stampLen = len("2006/01/02 15:04:05 ")

// logLinesMsg carries one read of the diagnostic log tail.
type logLinesMsg struct {
	lines []string
	err   error
}

// openLogs shows the log overlay and schedules the first read. The
// overlay re-reads on every UI tick while open, so it tails live.
func (m *Model) openLogs() tea.Cmd {
	m.showLogs = true
	m.logLines = nil
	m.logErr = nil
	return readLogCmd(m.logPath)
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Tail(path, logTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

// handleLogsKey processes keys while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs):
		m.showLogs = false
		return m, nil
	}
	return m, nil
}

// renderLogsBox renders the bordered diagnostic log view.
func (m Model) renderLogsBox() string {
	styles := m.theme.Styles()

	width := logsWidth
	if width > m.width-4 {
		width = m.width - 4
	}
	inner := width - 4 // horizontal padding

	visible := m.height - 8
	if visible < 3 {
		visible = 3
	}
	lines := m.logLines
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Registro de diagnóstico"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	switch {
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render(truncate("No se pudo leer el registro ("+m.logErr.Error()+")", inner)))
	case len(lines) == 0:
		b.WriteString(styles.MutedText.Render("Sin entradas de registro."))
	default:
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.renderLogLine(truncate(line, inner), styles))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("esc: cerrar"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width).
		Render(b.String())
}

// renderLogLine styles one diagnostic line: failures in full, otherwise
// the timestamp prefix dimmed.
func (m Model) renderLogLine(line string, styles Styles) string {
	if logtail.IsFailure(line) {
		return styles.DangerText.Render(line)
	}
	if len(line) > stampLen && line[4] == '/' && line[7] == '/' {
		return styles.FaintText.Render(line[:stampLen]) + styles.Text.Render(line[stampLen:])
	}
	return styles.Text.Render(line)
}
