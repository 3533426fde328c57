package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atalayahq/atalaya/internal/display"
)

// modalPhase tracks the detail modal's lifecycle.
type modalPhase int

const (
	modalLoading modalPhase = iota
	modalPopulated
	modalFailed
)

// modalState holds the detail modal. There is one instance; opening
// another symbol replaces the content in place. A failed load keeps the
// modal open until the user closes it.
type modalState struct {
	open   bool
	phase  modalPhase
	symbol string
	detail display.DetailView
	err    error
}

// handleModalKey processes keys while the detail modal is open.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.handleModalDismissed()
		return m, nil
	}
	return m, nil
}

// renderModalBox renders the bordered detail box for the current phase.
func (m Model) renderModalBox() string {
	styles := m.theme.Styles()

	width := modalWidth
	if width > m.width-4 {
		width = m.width - 4
	}
	inner := width - 4 // horizontal padding

	var b strings.Builder
	switch m.modal.phase {
	case modalLoading:
		b.WriteString(styles.Text.Bold(true).Render(m.modal.symbol))
		b.WriteString("\n\n")
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render("Cargando análisis..."))

	case modalFailed:
		b.WriteString(styles.Text.Bold(true).Render(m.modal.symbol))
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(
			"No se pudo cargar el análisis (" + classifyConnectionError(m.modal.err) + ")"))

	case modalPopulated:
		m.writeDetail(&b, inner)
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

// writeDetail renders the populated analysis layout into b. width is the
// usable content width in cells.
func (m Model) writeDetail(b *strings.Builder, width int) {
	styles := m.theme.Styles()
	d := m.modal.detail

	const labelW = 18
	label := func(s string) string {
		return styles.MutedText.Render(cell(s, labelW))
	}

	// Title row: symbol and sector left, score right
	left := styles.Text.Bold(true).Render(d.Symbol) + "  " +
		styles.MutedText.Render(truncate(d.Sector, 24))
	score := styles.ScoreStyle(d.Score).Render("Score " + display.FormatFloat(d.Score))
	gap := width - lipgloss.Width(left) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + score)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	// Fundamentals banner
	if d.PassedFinancials {
		b.WriteString(styles.SuccessText.Render("✓ Fundamentales sólidos"))
	} else {
		b.WriteString(styles.DangerText.Render("✗ Fundamentales débiles"))
	}
	if d.PotentialBuy {
		b.WriteString("   ")
		b.WriteString(styles.AccentText.Bold(true).Render("● COMPRA POTENCIAL"))
	}
	b.WriteString("\n\n")

	// Technical indicators
	b.WriteString(label("Tendencia"))
	b.WriteString(trendStyleFor(d.Trend, styles).Render(d.Trend))
	b.WriteString("\n")
	b.WriteString(label("Volumen Relativo"))
	b.WriteString(styles.Text.Render(display.FormatFloat(d.RelativeVolume) + "x"))
	b.WriteString("\n")
	if d.Squeeze {
		b.WriteString(label("Squeeze"))
		b.WriteString(styles.WarningText.Render("Sí"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Institutional outlook with supplementary chips
	b.WriteString(styles.AccentText.Bold(true).Render("Posicionamiento Institucional"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(d.Outlook))
	b.WriteString("\n")
	var chips []string
	if d.MFI > 0 {
		chips = append(chips, "MFI "+display.FormatFloat(d.MFI))
	}
	if d.OBVTrend != "" {
		chips = append(chips, "OBV "+d.OBVTrend)
	}
	if len(chips) > 0 {
		b.WriteString(styles.MutedText.Render(strings.Join(chips, " • ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Financial table
	b.WriteString(label("P/E"))
	b.WriteString(styles.Text.Render(d.PE))
	b.WriteString("\n")
	b.WriteString(label("Deuda/Capital"))
	b.WriteString(styles.Text.Render(d.DebtEquity))
	b.WriteString("\n")
	b.WriteString(label("ROE"))
	b.WriteString(styles.Text.Render(d.ROE))
	b.WriteString("\n")
	b.WriteString(label("Cap. Mercado"))
	b.WriteString(styles.Text.Render(d.MarketCap))
	b.WriteString("\n")
	b.WriteString(label("Estabilidad"))
	b.WriteString(styles.Text.Render(d.Stability))
}
