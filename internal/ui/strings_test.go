package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "AAPL", 8, "AAPL"},
		{"exact", "NVDA", 4, "NVDA"},
		{"cut", "Technology", 6, "Techn…"},
		{"accented_fits", "Análisis", 8, "Análisis"},
		{"accented_cut", "Análisis en proceso...", 10, "Análisis …"},
		{"zero_limit", "AAPL", 0, ""},
		{"one_cell", "AAPL", 1, "A"},
		{"trims_space", "  MSFT  ", 8, "MSFT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestCellPadsToDisplayWidth(t *testing.T) {
	if got := cell("AAPL", 8); got != "AAPL    " {
		t.Fatalf("cell = %q, want %q", got, "AAPL    ")
	}
	if got := cell("Posicionamiento Institucional", 12); got != "Posicionami…" {
		t.Fatalf("cell = %q, want %q", got, "Posicionami…")
	}
	// "Análisis" is 9 bytes but 8 display cells; padding must go by cells.
	if got := padRight("Análisis", 10); got != "Análisis  " {
		t.Fatalf("padRight = %q, want %q", got, "Análisis  ")
	}
	if got := padLeft("85", 6); got != "    85" {
		t.Fatalf("padLeft = %q, want %q", got, "    85")
	}
}
