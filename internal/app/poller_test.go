package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atalayahq/atalaya/internal/scanner"
	"github.com/atalayahq/atalaya/internal/state"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestRefresh_SuccessThenFailureKeepsPreviousStatus(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(scanner.SystemStatus{
			DBStatus: "1250 activos indexados",
			Worker:   scanner.WorkerStatus{IsRunning: false, LastRun: "2026-08-20 09:15"},
		})
	}))
	t.Cleanup(server.Close)

	client, err := scanner.NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	store := &state.Store{}
	refresh(context.Background(), store, client)

	snap := store.Snapshot()
	if !snap.HasStatus || snap.Status.DBStatus != "1250 activos indexados" {
		t.Fatalf("snapshot after success = %#v, want populated status", snap.Status)
	}

	fail.Store(true)
	refresh(context.Background(), store, client)

	snap = store.Snapshot()
	if snap.Status.DBStatus != "1250 activos indexados" {
		t.Fatalf("DBStatus = %q, want previous value retained", snap.Status.DBStatus)
	}
	if snap.Status.Worker.LastRun != "2026-08-20 09:15" {
		t.Fatalf("LastRun = %q, want previous value retained", snap.Status.Worker.LastRun)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded poll failure")
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

func TestStartPoller_PollsUntilCancelled(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(scanner.SystemStatus{DBStatus: "5 activos indexados"})
	}))
	t.Cleanup(server.Close)

	client, err := scanner.NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	StartPoller(ctx, store, client, 10*time.Millisecond)

	// Immediate refresh plus at least two ticks.
	waitFor(t, func() bool { return calls.Load() >= 3 })
	if !store.Snapshot().HasStatus {
		t.Fatalf("store not populated after polling")
	}

	cancel()
	time.Sleep(150 * time.Millisecond)
	settled := calls.Load()
	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != settled {
		t.Fatalf("backend calls after cancel grew from %d to %d, want poller stopped", settled, got)
	}
}
