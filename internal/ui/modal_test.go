package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atalayahq/atalaya/internal/scanner"
)

func TestEnterOpensModalForSelectedRow(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(scanLoadedMsg{seq: 1, results: summaries("AAPL", "MSFT")})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.modal.open {
		t.Fatalf("enter did not open the modal")
	}
	if m.modal.symbol != "AAPL" {
		t.Fatalf("modal symbol = %q, want AAPL", m.modal.symbol)
	}
}

func TestNewerModalSymbolWinsOverLateArrival(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(scanLoadedMsg{seq: 1, results: summaries("TSLA", "AAPL")})
	m = updated.(Model)

	// Open TSLA, then switch to AAPL before the first analysis lands.
	_ = m.handleCardSelect(0)
	_ = m.handleCardSelect(1)
	if m.modal.symbol != "AAPL" {
		t.Fatalf("modal symbol = %q, want AAPL", m.modal.symbol)
	}

	updated, _ = m.Update(analysisLoadedMsg{
		symbol:   "AAPL",
		analysis: &scanner.StockAnalysis{Symbol: "AAPL", Score: 88},
	})
	m = updated.(Model)
	if m.modal.phase != modalPopulated || m.modal.detail.Symbol != "AAPL" {
		t.Fatalf("modal = %+v, want populated AAPL", m.modal)
	}

	// The TSLA response arrives late and must not replace the content.
	updated, _ = m.Update(analysisLoadedMsg{
		symbol:   "TSLA",
		analysis: &scanner.StockAnalysis{Symbol: "TSLA", Score: 91},
	})
	m = updated.(Model)
	if m.modal.detail.Symbol != "AAPL" {
		t.Fatalf("late arrival replaced the modal with %q", m.modal.detail.Symbol)
	}
}

func TestBackdropClickClosesModal(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(scanLoadedMsg{seq: 1, results: summaries("AAPL")})
	m = updated.(Model)
	_ = m.handleCardSelect(0)

	x, y, w, h := m.boundsOf(m.renderModalBox())

	click := func(cx, cy int) {
		msg := tea.MouseMsg{X: cx, Y: cy, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
		updated, _ = m.Update(msg)
		m = updated.(Model)
	}

	click(x+w/2, y+h/2)
	if !m.modal.open {
		t.Fatalf("click inside the box closed the modal")
	}

	click(x, y)
	if !m.modal.open {
		t.Fatalf("click on the border closed the modal")
	}

	click(x-1, y)
	if m.modal.open {
		t.Fatalf("click on the backdrop did not close the modal")
	}
}

func TestModalFailureStaysOpenUntilDismissed(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(scanLoadedMsg{seq: 1, results: summaries("AAPL")})
	m = updated.(Model)
	_ = m.handleCardSelect(0)

	updated, _ = m.Update(analysisLoadedMsg{symbol: "AAPL", err: errors.New("dial tcp: connection refused")})
	m = updated.(Model)

	if !m.modal.open || m.modal.phase != modalFailed {
		t.Fatalf("modal = %+v, want open and failed", m.modal)
	}
	if view := m.View(); !strings.Contains(view, "No se pudo cargar") {
		t.Fatalf("failed modal does not show the error message:\n%s", view)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	if m.modal.open {
		t.Fatalf("esc did not close the failed modal")
	}
}

func TestModalLoadingShowsSymbol(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(scanLoadedMsg{seq: 1, results: summaries("AAPL")})
	m = updated.(Model)
	_ = m.handleCardSelect(0)

	view := m.View()
	if !strings.Contains(view, "AAPL") {
		t.Fatalf("loading modal does not show the symbol:\n%s", view)
	}
	if !strings.Contains(view, "Cargando") {
		t.Fatalf("loading modal does not show the loading hint:\n%s", view)
	}
}
