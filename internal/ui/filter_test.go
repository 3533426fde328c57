package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScanFilterCycle(t *testing.T) {
	cases := []struct {
		name string
		in   scanFilter
		want scanFilter
	}{
		{"todos_to_50", scanFilter{}, scanFilter{minScore: 50}},
		{"50_to_75", scanFilter{minScore: 50}, scanFilter{minScore: 75}},
		{"75_to_90", scanFilter{minScore: 75}, scanFilter{minScore: 90}},
		{"90_to_darwinex", scanFilter{minScore: 90}, scanFilter{darwinex: true}},
		{"darwinex_wraps", scanFilter{darwinex: true}, scanFilter{}},
		{"custom_resets", scanFilter{minScore: 42}, scanFilter{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.next(); got != tc.want {
				t.Fatalf("next() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestScanFilterLabel(t *testing.T) {
	if got := (scanFilter{}).label(); got != "Todos" {
		t.Fatalf("label() = %q, want Todos", got)
	}
	if got := (scanFilter{minScore: 75}).label(); got != "75+" {
		t.Fatalf("label() = %q, want 75+", got)
	}
	if got := (scanFilter{darwinex: true}).label(); got != "Darwinex" {
		t.Fatalf("label() = %q, want Darwinex", got)
	}
}

func TestParseFilterRoundTrip(t *testing.T) {
	for _, f := range []scanFilter{{}, {minScore: 50}, {minScore: 100}, {darwinex: true}} {
		if got := parseFilter(f.encode()); got != f {
			t.Fatalf("parseFilter(%q) = %+v, want %+v", f.encode(), got, f)
		}
	}
	if got := parseFilter("nonsense"); got != (scanFilter{}) {
		t.Fatalf("parseFilter(nonsense) = %+v, want zero filter", got)
	}
	if got := parseFilter("120"); got != (scanFilter{}) {
		t.Fatalf("parseFilter(120) = %+v, want zero filter", got)
	}
	if got := parseFilter(""); got != (scanFilter{}) {
		t.Fatalf("parseFilter(empty) = %+v, want zero filter", got)
	}
}

func TestScanFilterRequest(t *testing.T) {
	req := scanFilter{darwinex: true, minScore: 80}.request()
	if !req.Darwinex {
		t.Fatalf("request().Darwinex = false, want true")
	}
	req = scanFilter{minScore: 75}.request()
	if req.Darwinex || req.MinScore != 75 {
		t.Fatalf("request() = %+v, want MinScore 75", req)
	}
}

func TestFilterPromptValidation(t *testing.T) {
	m := New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	m.openFilterPrompt()
	if !m.showFilterInput {
		t.Fatalf("prompt did not open")
	}

	m.filterInput.SetValue("150")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.showFilterInput {
		t.Fatalf("prompt closed on an out-of-range value")
	}
	if m.filterErr == "" {
		t.Fatalf("expected a validation error for 150")
	}

	m.filterInput.SetValue("85")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.showFilterInput {
		t.Fatalf("prompt still open after a valid value")
	}
	if m.filter != (scanFilter{minScore: 85}) {
		t.Fatalf("filter = %+v, want minScore 85", m.filter)
	}
}

func TestFilterPromptEscapeKeepsFilter(t *testing.T) {
	m := New(Options{
		Filter:    "75",
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	m.openFilterPrompt()
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)

	if m.showFilterInput {
		t.Fatalf("esc did not cancel the prompt")
	}
	if m.filter != (scanFilter{minScore: 75}) {
		t.Fatalf("esc changed the filter to %+v", m.filter)
	}
}

func TestFilterKeyCyclesAndPersists(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{PrefsPath: prefsPath})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = updated.(Model)
	if m.filter != (scanFilter{minScore: 50}) {
		t.Fatalf("filter after f = %+v, want minScore 50", m.filter)
	}

	// A fresh model restoring from the same prefs file picks the filter up.
	restored := New(Options{Filter: m.filter.encode(), PrefsPath: prefsPath})
	if restored.filter != (scanFilter{minScore: 50}) {
		t.Fatalf("restored filter = %+v, want minScore 50", restored.filter)
	}
}
