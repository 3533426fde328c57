// Package display projects sparse backend records into fully-populated
// view values that are always safe to render.
//
// # Overview
//
// The backend omits any detail block, and any field within a block, when
// its pipeline could not compute it. Absence is normal, not an error.
// This package absorbs that sparseness in one place so the rendering
// code never branches on missing data: every accessor is total, absent
// optional fields resolve to documented fallbacks, and no projection
// ever fails, whatever subset of fields the backend sent.
//
// # Projections
//
// Two projections cover the two rendering surfaces:
//
//   - Card: one grid row per scan entry (symbol, score, trend, relative
//     volume, sector)
//   - Detail: the full modal record (technicals, institutional
//     positioning, financial screen values)
//
// Both take the wire structs by value and return plain structs with no
// pointers, so callers hold data the render path can use directly.
//
// # Formatting Rules
//
// Numeric formatting is pinned by tests: FormatFloat renders up to two
// decimals with trailing zeros trimmed, ROE arrives as a fraction and
// renders as a percentage (present zero and absent both render "0%"),
// and market cap renders in billions with a "B" suffix.
// CountOpportunities applies the shared inclusive threshold used by the
// header counts.
package display
