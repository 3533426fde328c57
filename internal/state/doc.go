// Package state provides thread-safe state management for the status poller.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing the
// backend's worker/database status between the background poller and the
// UI. It acts as the coordination point where polling updates meet UI
// rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ FetchStatus()  │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  render header  │
//	└────────────────┘            └─────────────────┘
//
// The Store mediates between these two independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (value copies)
//
// Scan results and the detail modal do not go through this store: they
// are owned by the UI model and updated through its own message flow. The
// store covers exactly the state the poller produces.
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest backend status
//   - Uses sync.RWMutex for concurrent access
//   - Single writer (poller), multiple readers (UI refresh loop)
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains status, timestamps, and error info
//   - Returned by value
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace entire snapshot
//	store.Update(status, nil)
//	→ snapshot.Status = status
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//	→ snapshot.LastUpdated = now
//
//	// Error case: Keep old data, record error
//	store.Update(nil, err)
//	→ snapshot.Status = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//	→ snapshot.LastUpdated = now
//
// This ensures the UI always has the most recent successful data to
// display while also being informed of polling failures. A worker-state
// line rendered before an outage stays on screen through the outage.
//
// # Offline Detection
//
// Snapshot.IsOffline() reports true after two consecutive poll failures.
// One missed poll is common (backend restarting, laptop waking up) and
// not worth alarming the user about; two in a row means the backend is
// genuinely unreachable and the header switches to its offline style.
//
// # Usage Example
//
//	// Poller goroutine:
//	store := &state.Store{}
//	for {
//		status, err := client.FetchStatus(ctx)
//		store.Update(status, err)
//		time.Sleep(interval)
//	}
//
//	// UI tick:
//	snap := store.Snapshot()
//	renderHeader(snap)
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// For tests:
//   - No initialization required
//   - Thread-safe from first use
//   - Snapshot() returns zero Snapshot if never updated
//   - Updates are atomic and immediately visible
//
// # Design Rationale
//
// This package intentionally avoids:
//   - Channels (mutex is simpler for single writer/multiple readers)
//   - Incremental updates (full snapshot replacement is easier)
//   - Versioning/history (only latest state matters)
//   - Pub/sub (UI polls snapshots on its own schedule)
//
// The design prioritizes simplicity and correctness over maximum
// performance, which is appropriate at this scale (one backend, one
// status object, ten-second poll cadence).
package state
