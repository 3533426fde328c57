package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/atalayahq/atalaya/internal/display"
)

// Grid column widths in display cells.
const (
	colSymbol = 8
	colScore  = 6
	colTrend  = 30
	colRVol   = 8
)

// visibleGridRows is how many result rows fit in the content area.
func (m Model) visibleGridRows() int {
	rows := m.height - chromeRows - 3 // box borders and the column header
	if rows < 0 {
		rows = 0
	}
	return rows
}

// ensureVisible keeps the selected row inside the scroll window.
func (m *Model) ensureVisible() {
	visible := m.visibleGridRows()
	if visible <= 0 {
		m.gridOffset = 0
		return
	}
	if m.selectedRow < m.gridOffset {
		m.gridOffset = m.selectedRow
	}
	if m.selectedRow >= m.gridOffset+visible {
		m.gridOffset = m.selectedRow - visible + 1
	}
	if m.gridOffset < 0 {
		m.gridOffset = 0
	}
}

// rowAt maps a screen row to an index into the result set.
func (m Model) rowAt(y int) (int, bool) {
	if y < gridTopRows || y >= gridTopRows+m.visibleGridRows() {
		return 0, false
	}
	idx := y - gridTopRows + m.gridOffset
	if idx < 0 || idx >= len(m.results) {
		return 0, false
	}
	return idx, true
}

// renderGrid renders the result area: a titled box with the column
// header and one row per scan entry, or a centered placeholder.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	contentHeight := m.height - chromeRows

	if m.scanLoading && len(m.results) == 0 {
		loading := m.spin.View() + " " + styles.MutedText.Render("Escaneando el mercado...")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, loading)
	}

	if len(m.results) == 0 {
		empty := styles.MutedText.Render("Sin resultados para el filtro " + m.filter.label())
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
	}

	return m.renderTitledBox(m.gridTitle(), m.renderRows(m.width-2), m.width, contentHeight)
}

func (m Model) gridTitle() string {
	count := strconv.Itoa(len(m.results))
	if f := m.filter.label(); f != "Todos" {
		return "Resultados (" + count + ") " + f
	}
	return "Resultados (" + count + ")"
}

// renderRows renders the column header and the visible result window.
func (m Model) renderRows(width int) string {
	compact := m.width < LayoutCompactWidth
	sectorWidth := width - colSymbol - colScore - colTrend - colRVol - 8
	showSector := !compact && sectorWidth >= 10

	lines := []string{m.renderColumnHeader(showSector, sectorWidth)}

	end := m.gridOffset + m.visibleGridRows()
	if end > len(m.results) {
		end = len(m.results)
	}
	for i := m.gridOffset; i < end; i++ {
		lines = append(lines, m.renderRow(i, width, showSector, sectorWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderColumnHeader(showSector bool, sectorWidth int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)
	h := styles.MutedText.Bold(true)

	seg := bg.Render(cell("SÍMBOLO", colSymbol), h) +
		bg.Render(padLeft("SCORE", colScore), h) +
		bg.Spaces(2) +
		bg.Render(cell("TENDENCIA", colTrend), h) +
		bg.Render(padLeft("VOL.REL", colRVol), h)
	if showSector {
		seg += bg.Spaces(2) + bg.Render(cell("SECTOR", sectorWidth), h)
	}
	return seg
}

// renderRow renders one scan entry. When selected is true every part
// takes the selection colors so contrast is kept on any theme.
func (m Model) renderRow(i, width int, showSector bool, sectorWidth int) string {
	card := display.Card(m.results[i])
	selected := i == m.selectedRow

	bgColor := m.theme.SurfaceAlt
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)

	var symStyle, scoreStyle, trendStyle, volStyle, sectorStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		symStyle = selText.Bold(true)
		scoreStyle = selText
		trendStyle = selText
		volStyle = selText
		sectorStyle = selText
	} else {
		styles := m.theme.Styles()
		symStyle = styles.Text.Bold(true)
		scoreStyle = styles.ScoreStyle(card.Score)
		trendStyle = trendStyleFor(card.Trend, styles)
		volStyle = styles.Text
		if card.RelativeVolume >= 1.5 {
			volStyle = styles.WarningText
		}
		sectorStyle = styles.MutedText
	}

	seg := bg.Render(cell(card.Symbol, colSymbol), symStyle) +
		bg.Render(padLeft(display.FormatFloat(card.Score), colScore), scoreStyle) +
		bg.Spaces(2) +
		bg.Render(cell(card.Trend, colTrend), trendStyle) +
		bg.Render(padLeft(display.FormatFloat(card.RelativeVolume)+"x", colRVol), volStyle)
	if showSector {
		seg += bg.Spaces(2) + bg.Render(cell(card.Sector, sectorWidth), sectorStyle)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(bgColor)).
		Width(width).
		Render(seg)
}

// trendStyleFor colors a trend label: bullish green, bearish red.
func trendStyleFor(trend string, styles Styles) lipgloss.Style {
	lower := strings.ToLower(trend)
	switch {
	case strings.Contains(lower, "uptrend"), strings.Contains(lower, "alcista"):
		return styles.SuccessText
	case strings.Contains(lower, "downtrend"), strings.Contains(lower, "bajista"):
		return styles.DangerText
	default:
		return styles.Text
	}
}

// renderTitledBox draws content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleLen := runewidth.StringWidth(title)
	leftPad := (innerWidth - titleLen - 2) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := innerWidth - titleLen - 2 - leftPad
	if rightPad < 0 {
		rightPad = 0
	}

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColor))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
