package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Kanagawa"); got != "Slate" {
		t.Fatalf("NextTheme(Kanagawa) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Kanagawa"); got.Name != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q, want Kanagawa", got.Name)
	}
	if got := GetTheme("Unknown"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got.Name)
	}
}

func TestThemesAreComplete(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Background == "" || th.Surface == "" || th.SurfaceAlt == "" ||
			th.SelectionBg == "" || th.SelectionText == "" || th.Border == "" ||
			th.Text == "" || th.Muted == "" || th.Faint == "" || th.Accent == "" ||
			th.Success == "" || th.Warning == "" || th.Danger == "" || th.Info == "" {
			t.Fatalf("theme %s has unset colors: %+v", name, th)
		}
	}
}

func TestScoreStyleBands(t *testing.T) {
	th := GetTheme("Nightfox")
	styles := th.Styles()

	cases := []struct {
		name  string
		score float64
		want  string
	}{
		{"exceptional", 95, th.Success},
		{"exceptional_bound", 90, th.Success},
		{"opportunity", 80, th.Warning},
		{"opportunity_bound", 75, th.Warning},
		{"interesting", 60, th.Text},
		{"interesting_bound", 50, th.Text},
		{"noise", 49.9, th.Muted},
		{"zero", 0, th.Muted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := styles.ScoreStyle(tc.score).GetForeground()
			if got != lipgloss.Color(tc.want) {
				t.Fatalf("ScoreStyle(%v) foreground = %v, want %v", tc.score, got, tc.want)
			}
		})
	}
}

func TestWithBackgroundFillsEveryStyle(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles().WithBackground(th.Surface)

	for name, st := range map[string]lipgloss.Style{
		"Text":        styles.Text,
		"MutedText":   styles.MutedText,
		"FaintText":   styles.FaintText,
		"AccentText":  styles.AccentText,
		"SuccessText": styles.SuccessText,
		"WarningText": styles.WarningText,
		"DangerText":  styles.DangerText,
		"InfoText":    styles.InfoText,
	} {
		if got := st.GetBackground(); got != lipgloss.Color(th.Surface) {
			t.Fatalf("%s background = %v, want %v", name, got, th.Surface)
		}
	}
}
