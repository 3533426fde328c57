// Package app provides the orchestration layer for the atalaya application.
//
// # Overview
//
// This package wires together configuration, preferences, polling, state
// management, and the UI to create the complete atalaya TUI experience. It
// serves as the composition root where all dependencies are initialized
// and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/atalaya/config.toml
//  2. Redirect the standard logger to the diagnostic log file
//  3. Load user preferences (theme, persisted scan filter)
//  4. Initialize HTTP client for the scanner backend API
//  5. Create shared state.Store for UI and poller coordination
//  6. Launch background poller goroutine for continuous status updates
//  7. Start the TUI and block until user exits or context cancels
//
// # Components
//
//   - app.go: Main Run function
//   - poller.go: Background goroutine that fetches worker status periodically
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read atalaya config
//	       ├─────> prefs.Load()        Read UI preferences
//	       ├─────> scanner.NewClient() Create HTTP client
//	       ├─────> state.Store{}       Shared state container
//	       ├─────> StartPoller()       Launch background updates
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> FetchStatus()                      │
//	│  └─> store.Update()  (atomic)           │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller owns the status cadence: an immediate first refresh when the
// goroutine starts, then one refresh every interval (default: 10 seconds).
// On each refresh:
//
//   - Fetches worker/database status from the backend
//   - Updates the shared state.Store atomically
//   - Logs errors but continues polling on failure
//
// Scan results and per-symbol analysis are NOT polled. They are fetched by
// the UI on demand (startup, filter changes, card selection) through its
// own command flow. The poller covers only the status region.
//
// The UI reads snapshots from the store at its own refresh rate (one
// second). This separation allows the UI to remain responsive even during
// slow API calls, and poll failures never disturb what is already on
// screen: the store retains the last-known-good status.
//
// # Lifecycle
//
// The poller goroutine is owned by the context passed to Run. Cancelling
// that context (SIGINT/SIGTERM from main, or programmatically in tests)
// stops the poller; there is no implicit process-lifetime timer.
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Scanner client initialization failure (bad api_bind)
//
// Recoverable errors (logged, polling continues):
//   - Periodic status fetch failures
//   - Network timeouts during polling
//
// An unreachable backend at startup is NOT fatal: the UI starts in its
// connecting state and recovers as soon as the backend answers.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to config.toml (default: ~/.config/atalaya/config.toml)
//   - PrefsPath: Path to prefs.toml (default: ~/.config/atalaya/prefs.toml)
//   - APIBind: Backend address override (default: from config)
//   - PollEvery: Polling interval in seconds (default: from config, 10s)
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{
//		ConfigPath: "", // Use default
//		PollEvery:  10, // 10 second polling
//	}
//
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("atalaya failed: %v", err)
//	}
//
// # Dependencies
//
//   - config: Loads and parses the atalaya configuration file
//   - prefs: Persists UI preferences across runs
//   - scanner: HTTP client for the scanner backend API
//   - state: Thread-safe state container for polled status
//   - ui: Terminal user interface (TUI) implementation
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and
// focused. Business logic lives in domain packages (scanner, display,
// state, ui). The app package simply connects these pieces with sensible
// defaults for the single-operator monitoring use case.
package app
