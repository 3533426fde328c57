package display

import (
	"strconv"

	"github.com/atalayahq/atalaya/internal/scanner"
)

// Fallbacks for absent optional fields. The Spanish strings are the
// backend's own display vocabulary and are shown verbatim.
const (
	FallbackSector      = "Market"
	FallbackCardTrend   = "Posicionamiento Institucional"
	FallbackDetailTrend = "Neutral"
	FallbackOutlook     = "Análisis en proceso..."
	FallbackStability   = "Media"
	FallbackMissing     = "N/A"

	fallbackRelativeVolume = 1.0
)

// OpportunityThreshold is the inclusive score bound at which a scan entry
// counts as an opportunity.
const OpportunityThreshold = 75

// CardView is the grid-ready projection of one scan entry. Every field
// holds a renderable value.
type CardView struct {
	Symbol         string
	Score          float64
	Trend          string
	RelativeVolume float64
	Sector         string
}

// DetailView is the modal-ready projection of one full analysis record.
// Ratio-like fields are already formatted ("24.5", "0%", "2.4B", "N/A").
type DetailView struct {
	Symbol         string
	Score          float64
	Sector         string
	FinancialScore float64

	Trend          string
	RelativeVolume float64
	Squeeze        bool

	Outlook  string
	MFI      float64
	OBVTrend string

	PE         string
	DebtEquity string
	ROE        string
	MarketCap  string
	Stability  string

	PassedFinancials bool
	PotentialBuy     bool
}

// Card projects a scan summary for the result grid. It tolerates Details
// being entirely absent.
func Card(s scanner.StockSummary) CardView {
	view := CardView{
		Symbol:         s.Symbol,
		Score:          s.Score,
		Trend:          FallbackCardTrend,
		RelativeVolume: fallbackRelativeVolume,
		Sector:         FallbackSector,
	}
	details := s.Details
	if details == nil {
		return view
	}
	if tech := details.Technicals; tech != nil {
		if tech.Trend != "" {
			view.Trend = tech.Trend
		}
		if tech.RelativeVolume != nil {
			view.RelativeVolume = *tech.RelativeVolume
		}
	}
	if fin := details.Financials; fin != nil && fin.Sector != "" {
		view.Sector = fin.Sector
	}
	return view
}

// Detail projects a full analysis record for the detail modal. It
// tolerates Details being entirely absent.
func Detail(a scanner.StockAnalysis) DetailView {
	view := DetailView{
		Symbol:           a.Symbol,
		Score:            a.Score,
		Sector:           FallbackSector,
		Trend:            FallbackDetailTrend,
		RelativeVolume:   fallbackRelativeVolume,
		Outlook:          FallbackOutlook,
		PE:               FallbackMissing,
		DebtEquity:       FallbackMissing,
		ROE:              formatPercent(nil),
		MarketCap:        FallbackMissing,
		Stability:        FallbackStability,
		PassedFinancials: a.PassedFinancials,
		PotentialBuy:     a.PotentialBuy,
	}
	details := a.Details
	if details == nil {
		return view
	}
	if tech := details.Technicals; tech != nil {
		if tech.Trend != "" {
			view.Trend = tech.Trend
		}
		if tech.RelativeVolume != nil {
			view.RelativeVolume = *tech.RelativeVolume
		}
		if tech.Squeeze != nil {
			view.Squeeze = *tech.Squeeze
		}
	}
	if inst := details.Institutional; inst != nil {
		if inst.Outlook != "" {
			view.Outlook = inst.Outlook
		}
		if inst.MFI != nil {
			view.MFI = *inst.MFI
		}
		view.OBVTrend = inst.OBVTrend
	}
	if fin := details.Financials; fin != nil {
		if fin.Sector != "" {
			view.Sector = fin.Sector
		}
		if fin.Score != nil {
			view.FinancialScore = *fin.Score
		}
		if fin.PE != nil {
			view.PE = FormatFloat(*fin.PE)
		}
		if fin.DebtEquity != nil {
			view.DebtEquity = FormatFloat(*fin.DebtEquity)
		}
		view.ROE = formatPercent(fin.ROE)
		if fin.MarketCap != nil {
			view.MarketCap = FormatFloat(*fin.MarketCap/1e9) + "B"
		}
		if fin.Stability != "" {
			view.Stability = fin.Stability
		}
	}
	return view
}

// CountOpportunities reports how many entries in a freshly fetched result
// set meet the opportunity threshold. The bound is inclusive.
func CountOpportunities(results []scanner.StockSummary) int {
	count := 0
	for _, r := range results {
		if r.Score >= OpportunityThreshold {
			count++
		}
	}
	return count
}

// FormatFloat renders a value with up to two decimals, trimming
// trailing zeros: 24.50 → "24.5", 85 → "85".
func FormatFloat(v float64) string {
	return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
}

// formatPercent renders an ROE-style fraction as a percentage. An absent
// value resolves to the zero fallback before scaling, so both nil and a
// present zero render "0%".
func formatPercent(v *float64) string {
	value := 0.0
	if v != nil {
		value = *v
	}
	return FormatFloat(value*100) + "%"
}

func trimZeros(s string) string {
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
