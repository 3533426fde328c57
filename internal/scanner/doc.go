// Package scanner provides an HTTP client for the stock-scanner backend API.
//
// # Overview
//
// This package defines the API client for communicating with the scanner
// backend. It handles HTTP communication, JSON deserialization, and
// type-safe representation of scan results, per-symbol analysis records,
// and worker status.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the backend API schema
//   - errors.go: Typed errors distinguishing transport, HTTP, and decode failures
//
// # Client Usage
//
// Create a client using the API bind address from configuration:
//
//	client, err := scanner.NewClient("127.0.0.1:8000")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	// Fetch worker/database status
//	status, err := client.FetchStatus(ctx)
//	if err != nil {
//		log.Printf("status fetch failed: %v", err)
//	}
//
//	// Fetch a ranked result set
//	scan, err := client.FetchScan(ctx, scanner.ScanFilter{MinScore: 75})
//	if err != nil {
//		log.Printf("scan fetch failed: %v", err)
//	}
//
// # API Endpoints
//
// The client supports the backend's five endpoints:
//
//   - GET /api/status: Database state and scan worker status
//   - GET /api/scan?limit=50&min_score={n}: Ranked stock summaries above a threshold
//   - GET /api/scan-darwinex?limit=50&min_score=0: The alternate darwinex track
//   - GET /api/analyze/{symbol}: Full analysis record for one symbol
//   - POST /api/update-db: Trigger a background database rebuild
//
// Scan requests always carry the fixed page size of 50. Selecting the
// darwinex track discards any numeric threshold: that endpoint is always
// queried with min_score=0. Results arrive in backend order (score
// descending) and are never re-sorted client-side.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json header
//   - Include User-Agent: atalaya/0.1 header
//   - Have a 5-second timeout (configurable via http.Client)
//   - Return typed errors describing what failed
//
// # Error Handling
//
// The client distinguishes between several error types:
//
//   - *RequestError: The request never produced a response (connection
//     refused, DNS failure, timeout)
//   - *StatusError: The backend answered with a 4xx/5xx status code
//   - *DecodeError: The response body was not valid JSON of the expected shape
//
// Callers can classify failures with errors.As. There are no retries at
// this layer; every failure propagates to the caller and the caller
// decides what, if anything, to do about it.
//
// Example error messages:
//   - "execute request /api/status: dial tcp: connection refused"
//   - "api /api/scan returned status 500"
//   - "decode response from /api/analyze/AAPL: unexpected end of JSON input"
//
// # Type System
//
// Optional numeric fields decode into pointers (*float64, *bool) so that
// an absent field is distinguishable from a present zero. The display
// layer depends on that distinction: a stock whose ROE is exactly 0 reads
// differently from one that reported no ROE at all. Optional string
// fields decode into plain strings, with "" meaning absent.
//
// SystemStatus:
//   - Database state line (verbatim backend text)
//   - Worker state: running flag, last-run string, tickers found, progress
//
// StockSummary / StockAnalysis:
//   - Symbol and composite score
//   - Optional Details with technicals, institutional, and financials blocks
//   - Analysis adds the fundamentals pass flag and the potential-buy flag
//
// The worker's last_run value is an opaque backend-formatted string
// ("Nunca" before the first scan completes). It is carried through
// verbatim and never parsed or reformatted.
//
// # URL Construction
//
// The client accepts several API bind formats:
//
//   - "127.0.0.1:8000" → http://127.0.0.1:8000
//   - "http://localhost:8000" → http://localhost:8000
//   - "192.168.1.10:8000" → http://192.168.1.10:8000
//
// The scheme defaults to "http://" if not specified. Symbols passed to
// FetchAnalysis are trimmed and uppercased before the request, matching
// the backend's own normalization.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying
// http.Client handles connection pooling and concurrent requests
// internally.
//
// # Network Assumptions
//
// This client assumes:
//   - The backend is on localhost or a trusted local network
//   - No authentication required (single-operator deployment)
//   - HTTP is sufficient (no TLS for local communication)
//   - Default timeout of 5 seconds is appropriate
//
// # Design Rationale
//
// The package is intentionally minimal:
//   - No caching (each fetch reflects the backend's current state)
//   - No retries (re-triggering is a user action, not a client policy)
//   - One mutation only (POST /api/update-db, a fire-and-forget trigger)
//   - No streaming (snapshot-based polling is sufficient)
//
// This keeps the client simple and predictable while meeting all current needs.
package scanner
