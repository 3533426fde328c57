package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navegación",
			items: []helpItem{
				{"j/k", "Subir/bajar"},
				{"g/G", "Ir al inicio/final"},
				{"enter", "Abrir detalle"},
				{"clic", "Abrir detalle de la fila"},
				{"esc", "Cerrar ventana"},
			},
		},
		{
			title: "Filtros",
			items: []helpItem{
				{"f", "Ciclar filtro (Todos → 50+ → 75+ → 90+ → Darwinex)"},
				{"F", "Score mínimo manual"},
			},
		},
		{
			title: "Acciones",
			items: []helpItem{
				{"r", "Reescanear con el filtro actual"},
				{"u", "Actualizar la base de datos"},
				{"l", "Ver registro de diagnóstico"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cambiar tema"},
				{"?", "Mostrar/ocultar ayuda"},
				{"q", "Salir"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Atajos de teclado"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(8)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(56).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
