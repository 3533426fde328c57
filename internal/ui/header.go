package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atalayahq/atalaya/internal/scanner"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasStatus {
		return m.renderConnectingHeader(styles, bg)
	}
	return styles.Header.Width(m.width).Render(m.buildStatusContent(styles, bg))
}

// renderConnectingHeader shows the connecting or offline state before
// the first successful poll.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		parts := []string{
			bg.Render("atalaya", styles.Logo),
			bg.Render("SCANNER "+classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true)),
			bg.Render("Reintentando...", styles.WarningText.Bold(true)),
		}
		if !m.snapshot.LastUpdated.IsZero() {
			parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.MutedText))
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("atalaya", styles.Logo) + sep +
			bg.Render("Conectando con el escáner...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)
	status := m.snapshot.Status

	var parts []string
	parts = append(parts, bg.Render("atalaya", styles.Logo))

	// Database status, verbatim from the backend
	if status.DBStatus != "" {
		parts = append(parts,
			bg.Render("BD:", styles.MutedText)+bg.Space()+
				bg.Render(status.DBStatus, styles.Text))
	}

	// Worker state: scanning marker while running, last run when idle
	worker := status.Worker
	if worker.IsRunning {
		running := bg.Render(m.spin.View(), styles.InfoText) + bg.Space() +
			bg.Render("Escaneando", styles.InfoText)
		if worker.Progress > 0 {
			running += bg.Space() + bg.Render(fmt.Sprintf("%.0f%%", worker.Progress), styles.AccentText)
		}
		parts = append(parts, running)
	} else {
		idle := bg.Render("En reposo", styles.MutedText)
		if worker.LastRun != "" {
			idle += bg.Space() + bg.Render(worker.LastRun, styles.FaintText)
		}
		parts = append(parts, idle)
	}

	if worker.TickersFound > 0 && !compact {
		parts = append(parts,
			bg.Render("Tickers:", styles.MutedText)+bg.Space()+
				bg.Render(strconv.Itoa(worker.TickersFound), styles.Text))
	}

	// Result and opportunity counts for the current grid
	oppStyle := styles.MutedText
	if m.opportunities > 0 {
		oppStyle = styles.SuccessText
	}
	resultsLabel, oppLabel := "Resultados:", "Oportunidades:"
	if compact {
		resultsLabel, oppLabel = "R:", "O:"
	}
	parts = append(parts,
		bg.Render(resultsLabel, styles.MutedText)+bg.Space()+
			bg.Render(strconv.Itoa(len(m.results)), styles.Text)+
			sep+bg.Render("•", styles.FaintText)+sep+
			bg.Render(oppLabel, styles.MutedText)+bg.Space()+
			bg.Render(strconv.Itoa(m.opportunities), oppStyle))

	if m.scanLoading {
		parts = append(parts,
			bg.Render(m.spin.View(), styles.InfoText)+bg.Space()+
				bg.Render("Actualizando...", styles.InfoText))
	}

	if status.Version != "" && m.width >= LayoutWideWidth {
		parts = append(parts, bg.Render("v"+status.Version, styles.FaintText))
	}

	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Connection trouble: previous values stay on screen, only the
	// indicator is added
	if m.snapshot.IsOffline() {
		parts = append(parts,
			bg.Render("OFFLINE", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(classifyConnectionError(m.snapshot.LastError), styles.DangerText))
	} else if m.snapshot.LastError != nil {
		maxErr := 60
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.snapshot.LastError.Error(), maxErr), styles.WarningText))
	}

	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.AccentText))
	}

	return bg.Join(parts, "  ")
}

// formatTimestamp formats the last poll time with a staleness hint.
func (m Model) formatTimestamp() string {
	if m.snapshot.LastUpdated.IsZero() {
		return ""
	}

	since := time.Since(m.snapshot.LastUpdated)
	timeStr := m.snapshot.LastUpdated.Format("15:04:05")

	if since >= time.Minute && since < time.Hour {
		timeStr += fmt.Sprintf(" (hace %dm)", int(since.Minutes()))
	} else if since >= time.Hour {
		timeStr += fmt.Sprintf(" (hace %dh)", int(since.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short code for a failed backend
// request, derived from the scanner error taxonomy.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *scanner.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("HTTP %d", statusErr.Code)
	}
	var decodeErr *scanner.DecodeError
	if errors.As(err, &decodeErr) {
		return "BAD RESPONSE"
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmdHint struct{ key, desc string }
	commands := []cmdHint{
		{"f", m.filter.label()},
		{"F", "umbral"},
		{"enter", "detalle"},
		{"r", "reescanear"},
		{"u", "actualizar BD"},
		{"j/k", "navegar"},
		{"?", "ayuda"},
		{"q", "salir"},
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
