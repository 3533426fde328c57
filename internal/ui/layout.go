package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is
	// used: the sector column disappears and header parts shorten.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width to show the trend column at
	// full length and the backend version in the header.
	LayoutWideWidth = 120
)

// Fixed chrome dimensions.
const (
	// chromeRows is the number of lines above the content area: the
	// status header and the command bar.
	chromeRows = 2

	// gridTopRows is the first screen row holding a result row: status
	// header, command bar, grid top border, and the column header.
	gridTopRows = 4
)

// Timing constants.
const (
	// DefaultUIInterval is the cadence at which the UI re-reads the poll
	// store and refreshes time-dependent chrome.
	DefaultUIInterval = time.Second

	// noticeTTL is how long a transient header notice stays visible.
	noticeTTL = 4 * time.Second
)

// Modal dimensions.
const (
	// modalWidth is the preferred detail modal width; it clamps to the
	// terminal when narrower.
	modalWidth = 58

	// filterModalWidth is the width of the custom threshold input modal.
	filterModalWidth = 44

	// logsWidth is the preferred diagnostic log overlay width; it clamps
	// to the terminal when narrower.
	logsWidth = 96
)
