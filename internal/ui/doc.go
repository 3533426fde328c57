// Package ui renders the atalaya dashboard with Bubble Tea.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program: one root Model whose Update
// consumes typed messages and whose View renders the whole screen from
// current state. All I/O runs in commands; Update and View never block.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: root Model, Init/Update/View, messages, commands, Run
//   - grid.go: scan result grid, scroll window, screen-row math
//   - header.go: status region, connection classification, command bar
//   - modal.go: per-symbol detail modal state machine and rendering
//   - filter.go: filter presets and the custom threshold prompt
//   - logs.go: diagnostic log overlay
//   - help.go: key binding help overlay
//   - overlay.go: centered overlay compositing and click-rect math
//   - keys.go, layout.go, strings.go, style_helpers.go, theme.go: bindings,
//     constants, width-aware text helpers, themed styles
//
// # Screen Regions
//
// Three fixed regions: a one-line status header, a one-line command bar,
// and the grid filling the rest. Overlays (detail modal, threshold
// prompt, log view, help) draw centered over a dimmed backdrop; the same
// bounds math drives rendering and backdrop click detection.
//
// # Data Flow
//
//	keyboard/mouse ──> Update ──> commands (HTTP fetch, store read, log tail)
//	                      ^                        │
//	                      └──── typed messages ────┘
//
// Scan responses carry the request sequence they answer and modal
// responses carry their symbol; arrivals that no longer match current
// state are dropped, so the newest request always wins.
//
// # Update Cycle
//
// A one-second tick re-reads the poll store, refreshes time-dependent
// chrome, re-arms the spinner while anything is loading, and re-reads
// the diagnostic log while its overlay is open. The backend status poll
// itself runs in internal/app at its own cadence.
package ui
