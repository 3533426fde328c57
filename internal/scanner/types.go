package scanner

// SystemStatus mirrors the payload returned by /api/status.
type SystemStatus struct {
	Version  string       `json:"version"`
	DBStatus string       `json:"db_status"`
	Worker   WorkerStatus `json:"worker"`
}

// WorkerStatus reports the backend scan worker's state. LastRun is an
// opaque backend-formatted string ("Nunca" before the first scan) and is
// displayed verbatim, never reparsed.
type WorkerStatus struct {
	IsRunning    bool    `json:"is_running"`
	LastRun      string  `json:"last_run"`
	TickersFound int     `json:"tickers_found"`
	Progress     float64 `json:"progress"`
}

// ScanResponse mirrors the payload returned by /api/scan and
// /api/scan-darwinex. Results keep the backend's ordering.
type ScanResponse struct {
	Count   int            `json:"count"`
	Results []StockSummary `json:"results"`
}

// StockSummary is one ranked entry in a scan result set.
type StockSummary struct {
	Symbol  string        `json:"symbol"`
	Score   float64       `json:"score"`
	Details *StockDetails `json:"details"`
}

// StockDetails carries the optional analysis blocks for a stock. Any
// block, and any field within a block, may be absent; absence is normal,
// not an error.
type StockDetails struct {
	Technicals    *Technicals    `json:"technicals"`
	Institutional *Institutional `json:"institutional"`
	Financials    *Financials    `json:"financials"`
}

// Technicals describes price and volume indicators.
type Technicals struct {
	RelativeVolume *float64 `json:"relative_volume"`
	Trend          string   `json:"trend"`
	Squeeze        *bool    `json:"squeeze"`
}

// Institutional describes accumulation signals.
type Institutional struct {
	Outlook  string   `json:"outlook"`
	Detected *bool    `json:"detected"`
	Score    *float64 `json:"score"`
	MFI      *float64 `json:"mfi"`
	OBVTrend string   `json:"obv_trend"`
}

// Financials describes fundamental screening values. ROE arrives as a
// fraction (0.31 for 31%), market cap in raw currency units.
type Financials struct {
	Sector     string   `json:"sector"`
	Score      *float64 `json:"score"`
	PE         *float64 `json:"pe"`
	DebtEquity *float64 `json:"debt_equity"`
	ROE        *float64 `json:"roe"`
	MarketCap  *float64 `json:"market_cap"`
	Stability  string   `json:"stability"`
}

// StockAnalysis is the full single-symbol record returned by
// /api/analyze/{symbol}.
type StockAnalysis struct {
	Symbol           string        `json:"symbol"`
	Score            float64       `json:"score"`
	PassedFinancials bool          `json:"passed_financials"`
	PotentialBuy     bool          `json:"potential_buy"`
	Details          *StockDetails `json:"details"`
}

// UpdateResponse mirrors the acknowledgement body of POST /api/update-db.
type UpdateResponse struct {
	Message string `json:"message"`
}
