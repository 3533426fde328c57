package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atalayahq/atalaya/internal/scanner"
	"github.com/atalayahq/atalaya/internal/state"
)

func TestHeaderRetainsWorkerAfterPollFailure(t *testing.T) {
	store := &state.Store{}
	store.Update(&scanner.SystemStatus{
		DBStatus: "5234 símbolos",
		Worker:   scanner.WorkerStatus{LastRun: "Nunca"},
	}, nil)
	store.Update(nil, errors.New("dial tcp: connection refused"))

	m := New(Options{Store: store, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 32})
	m = updated.(Model)
	updated, _ = m.Update(snapshotMsg(store.Snapshot()))
	m = updated.(Model)

	header := m.renderHeader()
	if !strings.Contains(header, "Nunca") {
		t.Fatalf("header lost the last run after a poll failure:\n%s", header)
	}
	if !strings.Contains(header, "5234 símbolos") {
		t.Fatalf("header lost the database status after a poll failure:\n%s", header)
	}
}

func TestHeaderShowsOfflineAfterRepeatedFailures(t *testing.T) {
	store := &state.Store{}
	store.Update(&scanner.SystemStatus{
		DBStatus: "5234 símbolos",
		Worker:   scanner.WorkerStatus{LastRun: "Nunca"},
	}, nil)
	store.Update(nil, errors.New("dial tcp: connection refused"))
	store.Update(nil, errors.New("dial tcp: connection refused"))

	m := New(Options{Store: store, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 32})
	m = updated.(Model)
	updated, _ = m.Update(snapshotMsg(store.Snapshot()))
	m = updated.(Model)

	header := m.renderHeader()
	if !strings.Contains(header, "OFFLINE") {
		t.Fatalf("header does not flag the offline state:\n%s", header)
	}
	if !strings.Contains(header, "Nunca") {
		t.Fatalf("offline header dropped the retained worker state:\n%s", header)
	}
}

func TestHeaderWorkerStates(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(snapshotMsg(state.Snapshot{
		Status: scanner.SystemStatus{
			Worker: scanner.WorkerStatus{LastRun: "hace 3 minutos"},
		},
		HasStatus:   true,
		LastUpdated: time.Now(),
	}))
	m = updated.(Model)

	header := m.renderHeader()
	if !strings.Contains(header, "En reposo") {
		t.Fatalf("idle header missing the idle marker:\n%s", header)
	}
	if !strings.Contains(header, "hace 3 minutos") {
		t.Fatalf("idle header does not show last_run verbatim:\n%s", header)
	}

	updated, _ = m.Update(snapshotMsg(state.Snapshot{
		Status: scanner.SystemStatus{
			Worker: scanner.WorkerStatus{IsRunning: true, Progress: 40},
		},
		HasStatus:   true,
		LastUpdated: time.Now(),
	}))
	m = updated.(Model)

	header = m.renderHeader()
	if !strings.Contains(header, "Escaneando") {
		t.Fatalf("running header missing the scanning marker:\n%s", header)
	}
	if !strings.Contains(header, "40%") {
		t.Fatalf("running header missing the progress figure:\n%s", header)
	}
}

func TestClassifyConnectionError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"refused", errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"), "OFFLINE"},
		{"dns", errors.New("dial tcp: lookup scanner.example: no such host"), "HOST NOT FOUND"},
		{"deadline", errors.New("context deadline exceeded (Client.Timeout exceeded while awaiting headers)"), "TIMEOUT"},
		{"status", &scanner.StatusError{URL: "http://localhost:8000/api/scan", Code: 502}, "HTTP 502"},
		{"decode", &scanner.DecodeError{URL: "http://localhost:8000/api/scan", Err: errors.New("unexpected EOF")}, "BAD RESPONSE"},
		{"wrapped_refused", &scanner.RequestError{URL: "http://localhost:8000/api/status", Err: errors.New("connection refused")}, "OFFLINE"},
		{"unknown", errors.New("boom"), "ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyConnectionError(tc.err); got != tc.want {
				t.Fatalf("classifyConnectionError() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHeaderShowsTransientNotice(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(snapshotMsg(state.Snapshot{HasStatus: true, LastUpdated: time.Now()}))
	m = updated.(Model)

	m.setNotice("BD: actualización iniciada")
	if header := m.renderHeader(); !strings.Contains(header, "actualización iniciada") {
		t.Fatalf("header does not show the notice:\n%s", header)
	}

	m.noticeUntil = time.Now().Add(-time.Second)
	updated, _ = m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	if m.notice != "" {
		t.Fatalf("expired notice still set: %q", m.notice)
	}
}

func TestUpdateAckSetsNotice(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(updateAckMsg{message: "Actualización de BD iniciada"})
	m = updated.(Model)
	if m.notice != "Actualización de BD iniciada" {
		t.Fatalf("notice = %q, want the backend message", m.notice)
	}

	updated, _ = m.Update(updateAckMsg{err: errors.New("dial tcp: connection refused")})
	m = updated.(Model)
	if !strings.Contains(m.notice, "Actualización fallida") || !strings.Contains(m.notice, "OFFLINE") {
		t.Fatalf("failure notice = %q", m.notice)
	}
}
